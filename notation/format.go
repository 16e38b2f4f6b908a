package notation

import (
	"strings"

	"github.com/rookmate/chesscore/board"
)

// FormatSAN renders mv, a legal move in pos, as a SAN string. It adds the
// minimal file/rank disambiguation needed to distinguish mv from any other
// legal move of the same piece kind to the same destination, and appends
// '+' or '#' based on whether applying mv gives check or checkmate.
func FormatSAN(pos *board.Position, mv board.Move) string {
	if mv.Castle != board.CastleNone {
		return appendSuffix(pos, mv, mv.Castle.String())
	}

	pc, _ := pos.PieceAt(mv.From)
	_, isCapture := pos.PieceAt(mv.To)

	var b strings.Builder
	if pc.Kind == board.Pawn {
		if isCapture {
			b.WriteString(mv.From.FileLetter())
			b.WriteByte('x')
		}
		b.WriteString(mv.To.Notation())
		if mv.Promotion != board.KindNone {
			b.WriteByte('=')
			b.WriteString(mv.Promotion.SymbolAlgebra())
		}
	} else {
		b.WriteString(pc.Kind.SymbolAlgebra())
		b.WriteString(disambiguation(pos, mv, pc))
		if isCapture {
			b.WriteByte('x')
		}
		b.WriteString(mv.To.Notation())
	}

	return appendSuffix(pos, mv, b.String())
}

// disambiguation returns the minimal file/rank/both prefix needed to pick
// mv.From out from every other legal same-kind move landing on mv.To.
func disambiguation(pos *board.Position, mv board.Move, pc board.Piece) string {
	var others []board.Move
	for _, other := range pos.LegalMoves() {
		if other.To != mv.To || other.From == mv.From || other.Castle != board.CastleNone {
			continue
		}
		if otherPc, ok := pos.PieceAt(other.From); ok && otherPc.Kind == pc.Kind {
			others = append(others, other)
		}
	}
	if len(others) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, other := range others {
		if other.From.File() == mv.From.File() {
			sameFile = true
		}
		if other.From.Rank() == mv.From.Rank() {
			sameRank = true
		}
	}

	switch {
	case !sameFile:
		return mv.From.FileLetter()
	case !sameRank:
		return mv.From.RankDigit()
	default:
		return mv.From.Notation()
	}
}

func appendSuffix(pos *board.Position, mv board.Move, san string) string {
	next, err := pos.Apply(mv)
	if err != nil {
		return san
	}
	switch {
	case next.IsCheckmate():
		return san + "#"
	case next.IsCheck():
		return san + "+"
	default:
		return san
	}
}
