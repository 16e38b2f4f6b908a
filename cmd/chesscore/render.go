package main

import (
	"strings"

	"github.com/fatih/color"

	"github.com/rookmate/chesscore/board"
	"github.com/rookmate/chesscore/position"
)

var pieceGlyph = map[board.PieceKind]string{
	board.Pawn:   "P",
	board.Knight: "N",
	board.Bishop: "B",
	board.Rook:   "R",
	board.Queen:  "Q",
	board.King:   "K",
}

// cellStyle indexes by (square is dark, piece is black) to give every cell
// a single combined color.Color, since nesting two Sprint calls would let
// the inner call's reset code clobber the outer background.
var cellStyle = map[[2]bool]*color.Color{
	{false, false}: color.New(color.BgHiWhite, color.FgHiWhite, color.Bold),
	{false, true}:  color.New(color.BgHiWhite, color.FgBlack, color.Bold),
	{true, false}:  color.New(color.BgBlue, color.FgHiWhite, color.Bold),
	{true, true}:   color.New(color.BgBlue, color.FgBlack, color.Bold),
}

var banner = color.New(color.FgHiCyan, color.Bold)

// renderBoard draws pos rank-8-down-to-rank-1, colorized when colorized is
// true, followed by a side-to-move banner.
func renderBoard(pos *board.Position, colorized bool) string {
	color.NoColor = !colorized

	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		b.WriteString(" ")
		b.WriteString(color.New(color.Bold).Sprintf("%d ", rank+1))
		for file := 0; file < 8; file++ {
			sq := position.NewSquare(position.Square(file), position.Square(rank))
			b.WriteString(renderCell(pos, sq, file, rank))
		}
		b.WriteString("\n")
	}
	b.WriteString("   ")
	for file := 0; file < 8; file++ {
		b.WriteString(color.New(color.Bold).Sprintf(" %c ", 'a'+file))
	}
	b.WriteString("\n")
	b.WriteString(banner.Sprintf("%s to move", pos.ActiveSide()))
	return b.String()
}

func renderCell(pos *board.Position, sq position.Square, file, rank int) string {
	glyph := " "
	isBlack := false
	if pc, ok := pos.PieceAt(sq); ok {
		glyph = pieceGlyph[pc.Kind]
		isBlack = pc.Side == board.Black
	}

	isDarkSquare := (file+rank)%2 == 0
	return cellStyle[[2]bool{isDarkSquare, isBlack}].Sprintf(" %s ", glyph)
}

// colorLogger prints a log line in the banner color, used for search
// diagnostics when color output is enabled.
func colorLogger(line string) {
	banner.Println(line)
}
