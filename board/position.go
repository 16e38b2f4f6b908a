// Package board implements the chess position model: an immutable value
// type encoding the full board, side to move, castling rights, and move
// counters, together with FEN parsing, legal move generation, and move
// application.
package board

import "github.com/rookmate/chesscore/position"

// Position is an immutable chess position. Values are never mutated after
// construction; Apply always returns a distinct Position. The zero value is
// not a valid Position — use Start or ParseFEN.
type Position struct {
	bySide [2]bitboard
	byKind [7]bitboard // index 1..6 (Pawn..King); index 0 unused
	cells  [64]Piece   // redundant with bySide/byKind, kept for O(1) PieceAt

	turn     Side
	castling castlingRights

	halfMoveClock  uint16
	fullMoveNumber uint16

	hash uint64
}

// StartingFEN is the standard initial chess position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Start returns the standard initial chess position.
func Start() *Position {
	p, err := ParseFEN(StartingFEN)
	if err != nil {
		panic("board: starting FEN failed to parse: " + err.Error())
	}
	return p
}

// occupiedBoard is the union of both sides' occupancy.
func (p *Position) occupiedBoard() bitboard {
	return p.bySide[White] | p.bySide[Black]
}

// PieceAt returns the piece on sq, if any.
func (p *Position) PieceAt(sq position.Square) (Piece, bool) {
	pc := p.cells[sq]
	return pc, !pc.IsZero()
}

// ActiveSide returns the side to move.
func (p *Position) ActiveSide() Side { return p.turn }

// OpposingSide returns the side not to move.
func (p *Position) OpposingSide() Side { return p.turn.Opposite() }

// HalfMoveClock returns the half-move clock, as stored from FEN / updated by
// Apply. It does not influence legality (the fifty-move rule is a Non-goal).
func (p *Position) HalfMoveClock() uint16 { return p.halfMoveClock }

// FullMoveNumber returns the full-move number, as stored from FEN / updated
// by Apply.
func (p *Position) FullMoveNumber() uint16 { return p.fullMoveNumber }

// Hash returns the Zobrist-style 64-bit hash of the board, active side, and
// castling rights. Equal positions always hash equally; the halfmove/fullmove
// counters do not participate in the hash.
func (p *Position) Hash() uint64 { return p.hash }

// PlayerView is a read-only summary of one side's situation in a Position.
type PlayerView struct {
	Side            Side
	OccupiedSquares []position.Square
	Castling        CastlingRights
	KingSquare      position.Square
	HasKing         bool
}

// Player returns a summary view of side s in this position.
func (p *Position) Player(s Side) PlayerView {
	kingBB := p.byKind[King] & p.bySide[s]
	view := PlayerView{
		Side:            s,
		OccupiedSquares: p.bySide[s].squares(),
		Castling: CastlingRights{
			KingsideAllowed:  p.castling.allowed(s, CastleKingside),
			QueensideAllowed: p.castling.allowed(s, CastleQueenside),
		},
	}
	if kingBB != 0 {
		view.HasKing = true
		view.KingSquare = kingBB.lsb()
	}
	return view
}

func (p *Position) kingSquare(s Side) (position.Square, bool) {
	kingBB := p.byKind[King] & p.bySide[s]
	if kingBB == 0 {
		return 0, false
	}
	return kingBB.lsb(), true
}

// clone returns a shallow copy. Because Position holds only value types (no
// pointers, slices, or maps), a plain struct copy is already a full,
// independent copy — this is the "allocate a new board on every apply"
// behaviour the model requires, at the cost of a single small struct copy
// rather than a heap-allocated board.
func (p *Position) clone() Position {
	return *p
}

func (p *Position) place(s Side, k PieceKind, sq position.Square) {
	p.bySide[s] = p.bySide[s].set(sq)
	p.byKind[k] = p.byKind[k].set(sq)
	p.cells[sq] = Piece{Side: s, Kind: k}
	p.hash ^= zobristPiece[s][k][sq]
}

func (p *Position) remove(s Side, k PieceKind, sq position.Square) {
	p.bySide[s] = p.bySide[s].clear(sq)
	p.byKind[k] = p.byKind[k].clear(sq)
	p.cells[sq] = Piece{}
	p.hash ^= zobristPiece[s][k][sq]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func ptr(k MoveErrorKind) *MoveErrorKind { return &k }
