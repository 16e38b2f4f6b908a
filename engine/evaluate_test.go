package engine

import (
	"strings"
	"testing"

	"github.com/rookmate/chesscore/board"
)

// mirrorFEN swaps colours and flips ranks: each rank is reordered
// top-to-bottom, and each piece letter's case is flipped. Active colour and
// castling rights are flipped the same way.
func mirrorFEN(t *testing.T, fen string) string {
	t.Helper()
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		t.Fatalf("malformed test FEN %q", fen)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		t.Fatalf("malformed test FEN placement %q", fields[0])
	}
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	placement := strings.Map(swapCase, strings.Join(ranks, "/"))

	turn := "w"
	if fields[1] == "w" {
		turn = "b"
	}

	castling := fields[2]
	if castling != "-" {
		castling = strings.Map(swapCase, castling)
	}

	return strings.Join([]string{placement, turn, castling, "-", fields[4], fields[5]}, " ")
}

func swapCase(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return r - 32
	case r >= 'A' && r <= 'Z':
		return r + 32
	default:
		return r
	}
}

func TestEvaluateMirrorSymmetry(t *testing.T) {
	t.Parallel()
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		"8/8/8/4k3/4P3/4K3/8/8 w - - 0 1",
	}

	for _, fen := range fens {
		pos, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		mirrored, err := board.ParseFEN(mirrorFEN(t, fen))
		if err != nil {
			t.Fatalf("ParseFEN(mirrorFEN(%q)): %v", fen, err)
		}

		got := evaluate(mirrored)
		want := -evaluate(pos)
		if got != want {
			t.Fatalf("evaluate(mirror(%q)) = %d, want %d (=-evaluate(original))", fen, got, want)
		}
	}
}
