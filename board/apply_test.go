package board

import (
	"errors"
	"testing"

	"github.com/rookmate/chesscore/position"
)

func TestStartingPositionHasTwentyLegalMoves(t *testing.T) {
	t.Parallel()
	p := Start()
	moves := p.LegalMoves()
	if len(moves) != 20 {
		t.Fatalf("got %d legal moves from the starting position, want 20", len(moves))
	}
}

func TestPawnDoublePush(t *testing.T) {
	t.Parallel()
	p := Start()
	next, err := p.Apply(Move{From: position.E2, To: position.E4})
	if err != nil {
		t.Fatalf("e2e4: unexpected error: %v", err)
	}
	pc, ok := next.PieceAt(position.E4)
	if !ok || pc.Kind != Pawn || pc.Side != White {
		t.Fatalf("expected a white pawn on e4, got %v (ok=%v)", pc, ok)
	}
	if _, ok := next.PieceAt(position.E2); ok {
		t.Fatalf("expected e2 to be empty after e2e4")
	}
	if next.ActiveSide() != Black {
		t.Fatalf("expected Black to move after e2e4")
	}
}

func TestPawnDoublePushOnlyFromHomeRank(t *testing.T) {
	t.Parallel()
	p, err := ParseFEN("8/8/8/8/4P3/8/8/4K2k w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	_, err = p.Apply(Move{From: position.E4, To: position.E6})
	if err == nil {
		t.Fatalf("expected e4e6 to be rejected, pawn is not on its home rank")
	}
	var moveErr *MoveError
	if !errors.As(err, &moveErr) || moveErr.Kind != IllegalGeometry {
		t.Fatalf("got %v, want IllegalGeometry", err)
	}
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	t.Parallel()
	p := Start()
	seq := []Move{
		{From: position.F2, To: position.F3},
		{From: position.E7, To: position.E5},
		{From: position.G2, To: position.G4},
		{From: position.D8, To: position.H4},
	}
	var err error
	for _, mv := range seq {
		p, err = p.Apply(mv)
		if err != nil {
			t.Fatalf("applying %v: %v", mv, err)
		}
	}
	if !p.IsCheckmate() {
		t.Fatalf("expected checkmate after fool's mate sequence")
	}
}

func TestCastlingBothSides(t *testing.T) {
	t.Parallel()
	p, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	kingside, err := p.Apply(Move{From: position.E1, To: position.G1, Castle: CastleKingside})
	if err != nil {
		t.Fatalf("O-O: unexpected error: %v", err)
	}
	if pc, ok := kingside.PieceAt(position.G1); !ok || pc.Kind != King {
		t.Fatalf("expected white king on g1 after O-O")
	}
	if pc, ok := kingside.PieceAt(position.F1); !ok || pc.Kind != Rook {
		t.Fatalf("expected white rook on f1 after O-O")
	}

	queenside, err := p.Apply(Move{From: position.E1, To: position.C1, Castle: CastleQueenside})
	if err != nil {
		t.Fatalf("O-O-O: unexpected error: %v", err)
	}
	if pc, ok := queenside.PieceAt(position.C1); !ok || pc.Kind != King {
		t.Fatalf("expected white king on c1 after O-O-O")
	}
	if pc, ok := queenside.PieceAt(position.D1); !ok || pc.Kind != Rook {
		t.Fatalf("expected white rook on d1 after O-O-O")
	}
}

func TestStalemate(t *testing.T) {
	t.Parallel()
	p, err := ParseFEN("7k/8/8/8/8/8/5q2/7K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if p.IsCheck() {
		t.Fatalf("expected the white king not to be in check")
	}
	if !p.IsStalemate() {
		t.Fatalf("expected stalemate")
	}
	if p.IsCheckmate() {
		t.Fatalf("stalemate must not also report checkmate")
	}
}

func TestApplyRejectsMoveLeavingOwnKingInCheck(t *testing.T) {
	t.Parallel()
	p, err := ParseFEN("4r3/8/8/8/8/8/4N3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if p.IsCheck() {
		t.Fatalf("expected white not to be in check before the pinned knight moves")
	}
	_, err = p.Apply(Move{From: position.E2, To: position.C3})
	var moveErr *MoveError
	if !errors.As(err, &moveErr) || moveErr.Kind != LeavesOwnKingInCheck {
		t.Fatalf("got %v, want LeavesOwnKingInCheck", err)
	}
}

func TestApplyRejectsWrongColor(t *testing.T) {
	t.Parallel()
	p := Start()
	_, err := p.Apply(Move{From: position.E7, To: position.E5})
	var moveErr *MoveError
	if !errors.As(err, &moveErr) || moveErr.Kind != WrongColor {
		t.Fatalf("got %v, want WrongColor", err)
	}
	if !errors.Is(err, ErrMoveRejected) {
		t.Fatalf("expected errors.Is(err, ErrMoveRejected) to hold")
	}
}

func TestApplyRequiresPromotionKind(t *testing.T) {
	t.Parallel()
	p, err := ParseFEN("8/4P3/8/8/8/8/8/k6K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	_, err = p.Apply(Move{From: position.E7, To: position.E8})
	var moveErr *MoveError
	if !errors.As(err, &moveErr) || moveErr.Kind != PromotionMismatch {
		t.Fatalf("got %v, want PromotionMismatch", err)
	}

	next, err := p.Apply(Move{From: position.E7, To: position.E8, Promotion: Queen})
	if err != nil {
		t.Fatalf("promoting to queen: unexpected error: %v", err)
	}
	if pc, ok := next.PieceAt(position.E8); !ok || pc.Kind != Queen {
		t.Fatalf("expected a queen on e8 after promotion")
	}
}

func TestApplyRejectsCaptureFlagMismatch(t *testing.T) {
	t.Parallel()
	p := Start()

	// e2e4 claims a capture, but e4 is empty.
	_, err := p.Apply(Move{From: position.E2, To: position.E4, Capture: true})
	var moveErr *MoveError
	if !errors.As(err, &moveErr) || moveErr.Kind != CaptureFlagMismatch {
		t.Fatalf("got %v, want CaptureFlagMismatch", err)
	}

	// A pawn capture that actually lands on an opponent piece is accepted
	// regardless of whether Capture is set; the flag is advisory only.
	pawns, err := ParseFEN("4k3/8/8/4p3/3P4/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if _, err := pawns.Apply(Move{From: position.D4, To: position.E5, Capture: true}); err != nil {
		t.Fatalf("dxe5 with Capture=true: unexpected error: %v", err)
	}
	if _, err := pawns.Apply(Move{From: position.D4, To: position.E5}); err != nil {
		t.Fatalf("dxe5 with Capture=false: unexpected error: %v", err)
	}
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()
	p := Start()
	before := p.FEN()
	if _, err := p.Apply(Move{From: position.E2, To: position.E4}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if p.FEN() != before {
		t.Fatalf("Apply mutated its receiver: FEN changed from %q to %q", before, p.FEN())
	}
}
