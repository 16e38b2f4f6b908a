package board

import "github.com/rookmate/chesscore/position"

// Move is a single chess move. It is a plain value: constructing one does
// not validate or apply it, that is Position.Apply's job.
//
// Promotion is KindNone unless the move is a pawn promotion. Castle is
// CastleNone for all non-castling moves. Capture is advisory: the SAN
// parser sets it from the presence of an 'x' in the input. Apply derives
// the capture itself from board occupancy; it only uses this field to
// reject a move that sets it when the destination holds no opposing piece.
type Move struct {
	From, To  position.Square
	Promotion PieceKind
	Castle    CastleSide
	Capture   bool
}

// IsZero reports whether m is the zero-value Move (no move).
func (m Move) IsZero() bool {
	return m == Move{}
}

func (m Move) String() string {
	if m.Castle != CastleNone {
		return m.Castle.String()
	}
	s := m.From.Notation() + m.To.Notation()
	if m.Promotion != KindNone {
		s += m.Promotion.SymbolFEN(Black) // lower-case suffix, as in UCI notation
	}
	return s
}
