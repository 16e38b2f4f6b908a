package engine

import "github.com/rookmate/chesscore/board"

// MTDF runs the MTD(f) search algorithm: a sequence of null-window
// alpha-beta searches that converge on the same result AlphaBeta(pos,
// depth, tt) would produce, usually visiting fewer nodes thanks to the
// shared transposition table remembering work across iterations.
// firstGuess seeds the first window, typically the previous iteration's
// score in an iterative-deepening caller; zero is a safe default.
func MTDF(pos *board.Position, depth int, firstGuess int32, tt *TranspositionTable[TTEntry]) (board.Move, int32, error) {
	g := firstGuess
	lowerBound, upperBound := -ScoreInfinite, ScoreInfinite

	var bestMove board.Move
	for lowerBound < upperBound {
		beta := g
		if g == lowerBound {
			beta++
		}

		mv, score, _, err := rootSearch(pos, depth, beta-1, beta, tt)
		if err != nil {
			return board.Move{}, 0, err
		}
		bestMove, g = mv, score

		if g < beta {
			upperBound = g
		} else {
			lowerBound = g
		}
	}

	return bestMove, g, nil
}
