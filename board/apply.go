package board

import "github.com/rookmate/chesscore/position"

// Apply validates mv against p and, if legal, returns the resulting
// position. p itself is never modified. On rejection the returned error is
// always a *MoveError, wrapping ErrMoveRejected.
//
// Validation runs in a fixed order: basic well-formedness of the move
// record, movement legality (castling rules, or piece geometry and path),
// then — only once a candidate board has been built — that the move does
// not leave the mover's own king in check.
func (p *Position) Apply(mv Move) (*Position, error) {
	side := p.turn

	pc, ok := p.PieceAt(mv.From)
	if !ok {
		return nil, newMoveError(SourceEmpty, mv)
	}
	if pc.Side != side {
		return nil, newMoveError(WrongColor, mv)
	}

	if destPc, destOk := p.PieceAt(mv.To); destOk && destPc.Side == side {
		return nil, newMoveError(DestinationOccupiedBySelf, mv)
	}

	if mv.Castle != CastleNone {
		if kind := p.castleError(mv, pc); kind != nil {
			return nil, newMoveError(*kind, mv)
		}
	} else {
		if err := p.validateCapture(mv); err != nil {
			return nil, err
		}
		if err := p.validatePromotion(mv, pc); err != nil {
			return nil, err
		}
		if kind := p.geometryError(mv, pc); kind != nil {
			return nil, newMoveError(*kind, mv)
		}
	}

	next := p.apply(mv, pc, side)

	opponent := side.Opposite()
	if king, ok := next.kingSquare(side); ok && next.isAttacked(king, opponent) {
		return nil, newMoveError(LeavesOwnKingInCheck, mv)
	}

	return next, nil
}

func (p *Position) validatePromotion(mv Move, pc Piece) error {
	onBackRank := pc.Kind == Pawn && int(mv.To.Rank()) == promotionRank(pc.Side)
	if onBackRank {
		if mv.Promotion == KindNone || !isPromotionKind(mv.Promotion) {
			return newMoveError(PromotionMismatch, mv)
		}
		return nil
	}
	if mv.Promotion != KindNone {
		return newMoveError(PromotionMismatch, mv)
	}
	return nil
}

func isPromotionKind(k PieceKind) bool {
	for _, pk := range PromotionKinds {
		if pk == k {
			return true
		}
	}
	return false
}

func (p *Position) validateCapture(mv Move) error {
	if !mv.Capture {
		return nil
	}
	destPc, destOk := p.PieceAt(mv.To)
	if !destOk || destPc.Side == p.turn {
		return newMoveError(CaptureFlagMismatch, mv)
	}
	return nil
}

// geometryError checks piece-shape and, for sliding pieces, that the path is
// unobstructed. It does not know about castling.
func (p *Position) geometryError(mv Move, pc Piece) *MoveErrorKind {
	df := int(mv.To.File()) - int(mv.From.File())
	dr := int(mv.To.Rank()) - int(mv.From.Rank())
	adf, adr := abs(df), abs(dr)

	switch pc.Kind {
	case Bishop:
		if adf != adr || adf == 0 {
			return ptr(IllegalGeometry)
		}
		if !p.slidingPathClear(mv.From, mv.To) {
			return ptr(BlockedPath)
		}
		return nil
	case Rook:
		if (df == 0) == (dr == 0) {
			return ptr(IllegalGeometry)
		}
		if !p.slidingPathClear(mv.From, mv.To) {
			return ptr(BlockedPath)
		}
		return nil
	case Queen:
		isDiagonal := adf == adr && adf != 0
		isLateral := (df == 0) != (dr == 0)
		if !isDiagonal && !isLateral {
			return ptr(IllegalGeometry)
		}
		if !p.slidingPathClear(mv.From, mv.To) {
			return ptr(BlockedPath)
		}
		return nil
	case Knight:
		if !((adf == 1 && adr == 2) || (adf == 2 && adr == 1)) {
			return ptr(IllegalGeometry)
		}
		return nil
	case King:
		if max(adf, adr) != 1 {
			return ptr(IllegalGeometry)
		}
		return nil
	case Pawn:
		return p.pawnGeometryError(mv, pc)
	default:
		return ptr(IllegalGeometry)
	}
}

func (p *Position) pawnGeometryError(mv Move, pc Piece) *MoveErrorKind {
	forward := 1
	home := 1
	if pc.Side == Black {
		forward = -1
		home = 6
	}

	fromRank := int(mv.From.Rank())
	fileDelta := int(mv.To.File()) - int(mv.From.File())
	rankDelta := int(mv.To.Rank()) - fromRank
	_, destOk := p.PieceAt(mv.To)

	switch {
	case fileDelta == 0 && rankDelta == forward:
		if destOk {
			return ptr(BlockedPath)
		}
		return nil
	case fileDelta == 0 && rankDelta == 2*forward && fromRank == home:
		mid := position.NewSquare(mv.From.File(), position.Square(fromRank+forward))
		if p.occupiedBoard().has(mid) || destOk {
			return ptr(BlockedPath)
		}
		return nil
	case abs(fileDelta) == 1 && rankDelta == forward:
		destPc, ok := p.PieceAt(mv.To)
		if !ok || destPc.Side == pc.Side {
			return ptr(IllegalGeometry)
		}
		return nil
	default:
		return ptr(IllegalGeometry)
	}
}

func (p *Position) slidingPathClear(from, to position.Square) bool {
	fileStep := sign(int(to.File()) - int(from.File()))
	rankStep := sign(int(to.Rank()) - int(from.Rank()))
	occ := p.occupiedBoard()

	f, r := int(from.File())+fileStep, int(from.Rank())+rankStep
	for {
		sq := position.Square(r*8 + f)
		if sq == to {
			return true
		}
		if occ.has(sq) {
			return false
		}
		f += fileStep
		r += rankStep
	}
}

// castleError validates a castling move: the right must still be live, the
// king must not currently be in check, every square strictly between king
// and rook must be empty, and the two squares the king traverses (its
// source and destination) must not be attacked. The square the king passes
// over between them is not checked for attack.
func (p *Position) castleError(mv Move, pc Piece) *MoveErrorKind {
	if pc.Kind != King {
		return ptr(CastlingNotAllowed)
	}
	side := p.turn
	squares, ok := castleSquares[mv.Castle]
	if !ok {
		return ptr(CastlingNotAllowed)
	}
	rank := backRank(side)
	expectedFrom := position.NewSquare(position.Square(squares.kingFrom), position.Square(rank))
	expectedTo := position.NewSquare(position.Square(squares.kingTo), position.Square(rank))
	if mv.From != expectedFrom || mv.To != expectedTo {
		return ptr(CastlingNotAllowed)
	}
	if !p.castling.allowed(side, mv.Castle) {
		return ptr(CastlingNotAllowed)
	}

	rookSq := position.NewSquare(position.Square(squares.rookFrom), position.Square(rank))
	if rookPc, ok := p.PieceAt(rookSq); !ok || rookPc.Kind != Rook || rookPc.Side != side {
		return ptr(CastlingNotAllowed)
	}

	lo, hi := squares.kingFrom, squares.rookFrom
	if lo > hi {
		lo, hi = hi, lo
	}
	occ := p.occupiedBoard()
	for f := lo + 1; f < hi; f++ {
		sq := position.NewSquare(position.Square(f), position.Square(rank))
		if sq == mv.From || sq == rookSq {
			continue
		}
		if occ.has(sq) {
			return ptr(CastlingNotAllowed)
		}
	}

	opponent := side.Opposite()
	if p.isAttacked(mv.From, opponent) || p.isAttacked(mv.To, opponent) {
		return ptr(CastlingNotAllowed)
	}

	return nil
}

// apply builds the resulting position for an already-validated move. It
// never fails: all rejection happens before this is called.
func (p *Position) apply(mv Move, pc Piece, side Side) *Position {
	next := p.clone()

	next.hash ^= zobristSideWhite
	next.hash ^= zobristCastling[next.castling]

	if mv.Castle != CastleNone {
		squares := castleSquares[mv.Castle]
		rank := backRank(side)
		rookFrom := position.NewSquare(position.Square(squares.rookFrom), position.Square(rank))
		rookTo := position.NewSquare(position.Square(squares.rookTo), position.Square(rank))

		next.remove(side, King, mv.From)
		next.remove(side, Rook, rookFrom)
		next.place(side, King, mv.To)
		next.place(side, Rook, rookTo)

		next.castling = next.castling.clearSide(side)
		next.halfMoveClock++
	} else {
		captured := false
		if destPc, ok := next.PieceAt(mv.To); ok {
			next.remove(destPc.Side, destPc.Kind, mv.To)
			captured = true
		}

		next.remove(side, pc.Kind, mv.From)
		placedKind := pc.Kind
		if mv.Promotion != KindNone {
			placedKind = mv.Promotion
		}
		next.place(side, placedKind, mv.To)

		next.castling = updateCastlingRights(next.castling, side, mv.From)
		// a rook captured on its home square also loses that side's right,
		// even though it was the opponent's move that caused it.
		if captured {
			next.castling = updateCastlingRights(next.castling, side.Opposite(), mv.To)
		}

		if pc.Kind == Pawn || captured {
			next.halfMoveClock = 0
		} else {
			next.halfMoveClock++
		}
	}

	next.hash ^= zobristCastling[next.castling]

	if side == Black {
		next.fullMoveNumber++
	}
	next.turn = side.Opposite()

	return &next
}

// updateCastlingRights clears the right(s) affected by a piece leaving sq,
// whether because the mover moved it or because the opponent captured it: a
// king move clears both rights for s, a rook move (or capture) from its
// initial corner clears that corner's right.
func updateCastlingRights(rights castlingRights, s Side, sq position.Square) castlingRights {
	rank := backRank(s)
	if int(sq.Rank()) != rank {
		return rights
	}
	switch int(sq.File()) {
	case castleSquares[CastleKingside].kingFrom:
		return rights.clearSide(s)
	case castleSquares[CastleKingside].rookFrom:
		return rights.with(s, CastleKingside, false)
	case castleSquares[CastleQueenside].rookFrom:
		return rights.with(s, CastleQueenside, false)
	default:
		return rights
	}
}
