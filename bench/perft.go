// Package bench counts leaf nodes of the legal move tree to a fixed depth
// (perft), the standard way to cross-check a move generator against known
// node counts for well-studied positions.
package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rookmate/chesscore/board"
)

// Counts tallies the leaf-level move categories perft conventionally
// reports alongside the raw node count.
type Counts struct {
	Nodes     uint64
	Captures  uint64
	Castles   uint64
	Promotes  uint64
	Checks    uint64
	Elapsed   time.Duration
}

// Perft runs perft to depth from fen and returns the resulting Counts. When
// parallel is true, the first ply fans out across goroutines.
func Perft(fen string, depth int, parallel bool, out chan<- string) (Counts, error) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return Counts{}, err
	}

	run := runPerft
	if parallel {
		run = runPerftParallel
	}

	var c Counts
	start := time.Now()
	run(pos, depth, true, out, &c)
	c.Elapsed = time.Since(start)
	return c, nil
}

// Summary renders c using the same comma-grouped, nodes-per-second format
// the rest of the engine's diagnostics use.
func (c Counts) Summary(depth int) string {
	nps := float64(c.Nodes) / c.Elapsed.Seconds()
	return message.NewPrinter(language.English).Sprintf(
		"d=%d nodes=%d rate=%.0fn/s cap=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
		depth, c.Nodes, nps, c.Captures, c.Castles, c.Promotes, c.Checks, c.Elapsed.Seconds())
}

type perftFunc func(pos *board.Position, d int, root bool, out chan<- string, c *Counts) uint64

func runPerft(pos *board.Position, d int, root bool, out chan<- string, c *Counts) uint64 {
	if d == 0 {
		c.Nodes++
		return 1
	}

	var sum uint64
	for _, s := range pos.Successors() {
		var child uint64
		if d != 1 {
			child = runPerft(s.Position, d-1, false, out, c)
		} else {
			child = 1
			tallyLeaf(pos, s.Move, s.Position, c)
		}
		if out != nil && root {
			out <- fmt.Sprintf("%s: %d", s.Move, child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(pos *board.Position, d int, root bool, out chan<- string, c *Counts) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, s := range pos.Successors() {
		s := s
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			if d != 1 {
				child = runPerft(s.Position, d-1, false, out, c)
			} else {
				child = 1
				mu.Lock()
				tallyLeaf(pos, s.Move, s.Position, c)
				mu.Unlock()
			}
			if out != nil && root {
				out <- fmt.Sprintf("%s: %d", s.Move, child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}

// tallyLeaf counts mv, a move from parent to next, into c. Captures are
// determined from parent's occupancy at mv.To rather than mv.Capture, since
// that field is only advisory (set by the SAN parser from an 'x' in the
// input) and is not populated by move generation.
func tallyLeaf(parent *board.Position, mv board.Move, next *board.Position, c *Counts) {
	atomic.AddUint64(&c.Nodes, 1)
	if _, captured := parent.PieceAt(mv.To); captured {
		atomic.AddUint64(&c.Captures, 1)
	}
	if mv.Castle != board.CastleNone {
		atomic.AddUint64(&c.Castles, 1)
	}
	if mv.Promotion != board.KindNone {
		atomic.AddUint64(&c.Promotes, 1)
	}
	if next.IsCheck() {
		atomic.AddUint64(&c.Checks, 1)
	}
}
