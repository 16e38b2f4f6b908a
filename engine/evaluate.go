package engine

import (
	"github.com/rookmate/chesscore/board"
	"github.com/rookmate/chesscore/position"
)

// materialValue gives each piece kind's value in centipawns. The king has no
// material value: its safety is captured entirely by its piece-square table.
var materialValue = [7]int32{
	board.KindNone: 0,
	board.Pawn:     100,
	board.Knight:   320,
	board.Bishop:   330,
	board.Rook:     500,
	board.Queen:    900,
	board.King:     0,
}

// piecePosition is the classic Simplified Evaluation Function piece-square
// table, indexed by piece kind then by square as seen from White's side
// (https://www.chessprogramming.org/Simplified_Evaluation_Function). Black's
// score for a given piece uses the vertically mirrored square.
var piecePosition = [7][64]int32{
	board.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	board.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	board.Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	board.King: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

var allSquares = func() [64]position.Square {
	var sqs [64]position.Square
	for i := range sqs {
		sqs[i] = position.Square(i)
	}
	return sqs
}()

func mirrorVertical(sq position.Square) position.Square {
	return position.NewSquare(sq.File(), position.BoardSize-1-sq.Rank())
}

// evaluate scores pos from the perspective of its active side: positive
// means the active side is better off.
func evaluate(pos *board.Position) int32 {
	active := pos.ActiveSide()

	var score int32
	for _, sq := range allSquares {
		pc, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		sign := int32(1)
		if pc.Side != active {
			sign = -1
		}
		pstSquare := sq
		if pc.Side == board.Black {
			pstSquare = mirrorVertical(sq)
		}
		score += sign * (materialValue[pc.Kind] + piecePosition[pc.Kind][pstSquare])
	}

	return score
}
