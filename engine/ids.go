package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rookmate/chesscore/board"
	"github.com/rookmate/chesscore/enginelog"
)

// DefaultLogger prints one line per completed depth to stdout.
func DefaultLogger(line string) {
	fmt.Println(line)
}

// IterativeConfig configures SearchIterative.
type IterativeConfig struct {
	// MaxDepth bounds how deep the iterative search will go; it always
	// completes at least depth 1.
	MaxDepth int
	// Logger receives one formatted progress line per completed depth. A
	// nil Logger disables progress reporting.
	Logger func(line string)
}

// SearchIterative runs iterative deepening: it calls AlphaBeta at
// successively greater depths, sharing tt across iterations, stopping when
// ctx is done or cfg.MaxDepth is reached. It always returns the best move
// found by the deepest completed iteration.
func SearchIterative(ctx context.Context, pos *board.Position, cfg IterativeConfig, tt *TranspositionTable[TTEntry]) (board.Move, int32, error) {
	if cfg.MaxDepth < 1 {
		cfg.MaxDepth = 1
	}

	var bestMove board.Move
	var bestScore int32
	var err error

	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		if depth > 1 && ctx.Err() != nil {
			break
		}

		start := time.Now()
		mv, score, nodes, searchErr := alphaBetaCounted(pos, depth, tt)
		if searchErr != nil {
			if depth == 1 {
				return board.Move{}, 0, searchErr
			}
			break
		}
		elapsed := time.Since(start)

		bestMove, bestScore, err = mv, score, nil

		if cfg.Logger != nil {
			cfg.Logger(enginelog.Progress(depth, score, nodes, elapsed, mv))
		}

		if score >= mateScore || score <= -mateScore {
			break
		}
	}

	return bestMove, bestScore, err
}
