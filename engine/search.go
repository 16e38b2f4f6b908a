package engine

import "github.com/rookmate/chesscore/board"

// ScoreInfinite is larger in magnitude than any real evaluation, used as the
// initial alpha-beta window bound.
const ScoreInfinite int32 = 1 << 30

// mateScore is returned (negated appropriately) for a checkmated side. It is
// kept well below ScoreInfinite so that a mate score can still be compared
// against, and is always preferred over, any material-based evaluation.
const mateScore int32 = ScoreInfinite - 1_000_000

// TTEntry is the value type stored in a TranspositionTable shared across
// AlphaBeta, SearchIterative, and MTDF. Depth records how many plies below
// this entry the search actually explored, so a shallower cached value is
// never mistaken for a deeper, more trustworthy one.
type TTEntry struct {
	Score int32
	Depth int
	Move  board.Move
}

// AlphaBeta runs a fixed-depth negamax search with alpha-beta pruning from
// pos and returns the best move found together with its score, from pos's
// active side's perspective. tt is consulted and populated as the search
// runs; passing the same table across repeated calls (as SearchIterative and
// MTDF both do) lets later, deeper searches reuse earlier results.
func AlphaBeta(pos *board.Position, depth int, tt *TranspositionTable[TTEntry]) (board.Move, int32, error) {
	mv, score, _, err := alphaBetaCounted(pos, depth, tt)
	return mv, score, err
}

func alphaBetaCounted(pos *board.Position, depth int, tt *TranspositionTable[TTEntry]) (board.Move, int32, int64, error) {
	return rootSearch(pos, depth, -ScoreInfinite, ScoreInfinite, tt)
}

// rootSearch runs one negamax pass over pos's legal moves within the window
// [alpha, beta], returning the best move, its score, and the node count.
// AlphaBeta calls this with the full [-inf, +inf] window; MTDF calls it
// repeatedly with narrow null windows.
func rootSearch(pos *board.Position, depth int, alpha, beta int32, tt *TranspositionTable[TTEntry]) (board.Move, int32, int64, error) {
	successors := pos.Successors()
	if len(successors) == 0 {
		return board.Move{}, 0, 0, ErrTerminalPosition
	}

	var nodes int64
	var bestMove board.Move
	bestScore := -ScoreInfinite
	cutoff := false
	alphaOrig := alpha

	for _, s := range successors {
		score := -negamax(s.Position, depth-1, -beta, -alpha, tt, &nodes)
		if score > bestScore {
			bestScore = score
			bestMove = s.Move
		}
		alpha = max(alpha, bestScore)
		if alpha >= beta {
			cutoff = true
			break
		}
	}

	// A cutoff means the loop stopped before examining every sibling: the
	// resulting score is only a fail-high lower bound, not the exact
	// minimax value, so it must not be cached as if it were exact. Likewise a
	// score that never rose above the incoming alpha is only a fail-low
	// upper bound.
	if !cutoff && bestScore > alphaOrig {
		tt.Add(pos.Hash(), TTEntry{Score: bestScore, Depth: depth, Move: bestMove})
	}
	return bestMove, bestScore, nodes, nil
}

// negamax evaluates pos to depth plies, from pos's active side's
// perspective, using the alpha-beta window [alpha, beta].
func negamax(pos *board.Position, depth int, alpha, beta int32, tt *TranspositionTable[TTEntry], nodes *int64) int32 {
	*nodes++

	if entry, ok := tt.Get(pos.Hash()); ok && entry.Depth >= depth {
		return entry.Score
	}

	if depth <= 0 {
		return evaluate(pos)
	}

	successors := pos.Successors()
	if len(successors) == 0 {
		if pos.IsCheck() {
			return -mateScore
		}
		return 0
	}

	best := -ScoreInfinite
	var bestMove board.Move
	cutoff := false
	alphaOrig := alpha
	for _, s := range successors {
		score := -negamax(s.Position, depth-1, -beta, -alpha, tt, nodes)
		if score > best {
			best = score
			bestMove = s.Move
		}
		alpha = max(alpha, best)
		if alpha >= beta {
			cutoff = true
			break
		}
	}

	// Same reasoning as rootSearch: a fail-high cutoff only bounds the
	// value from below and a fail-low result only bounds it from above, so
	// neither is cached as an exact score.
	if !cutoff && best > alphaOrig {
		tt.Add(pos.Hash(), TTEntry{Score: best, Depth: depth, Move: bestMove})
	}
	return best
}
