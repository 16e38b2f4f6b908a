// Command chesscore is a thin front end over the board, notation, and engine
// packages: it loads a starting position, replays a SAN move list onto it,
// and optionally runs one of the three search drivers from the result. It
// makes no rules decisions of its own.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rookmate/chesscore/board"
	"github.com/rookmate/chesscore/engine"
	"github.com/rookmate/chesscore/notation"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	fen       = flag.String("fen", board.StartingFEN, "FEN of the position to start from")
	moves     = flag.String("moves", "", "space-separated SAN move list to replay before searching")
	search    = flag.String("search", "", "search driver to run: alphabeta, ids, or mtdf")
	depth     = flag.Int("depth", 6, "search depth (max depth for ids)")
	ttSize    = flag.Int("tt-size", engine.DefaultTranspositionSize, "transposition table entry capacity")
	timeout   = flag.Duration("timeout", 10*time.Second, "search timeout, used by the ids driver")
	noColor   = flag.Bool("no-color", false, "disable colorized board and log output")
)

func main() {
	flag.Parse()
	if err := realMain(); err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain() error {
	pos, err := board.ParseFEN(*fen)
	if err != nil {
		return fmt.Errorf("loading starting position: %w", err)
	}

	for _, san := range strings.Fields(*moves) {
		mv, err := notation.ParseSAN(pos, san)
		if err != nil {
			return fmt.Errorf("replaying move %q: %w", san, err)
		}
		pos, err = pos.Apply(mv)
		if err != nil {
			return fmt.Errorf("applying move %q: %w", san, err)
		}
	}

	fmt.Println(renderBoard(pos, !*noColor))
	fmt.Println(pos.FEN())

	if *search == "" {
		return nil
	}

	session := uuid.NewString()
	return runSearch(session, pos)
}

func runSearch(session string, pos *board.Position) error {
	if pos.IsTerminal() {
		return engine.ErrTerminalPosition
	}

	logger := DefaultLogger
	if !*noColor {
		logger = colorLogger
	}

	tt := engine.NewTranspositionTable[engine.TTEntry](*ttSize)

	var mv board.Move
	var score int32
	var err error

	switch *search {
	case "alphabeta":
		mv, score, err = engine.AlphaBeta(pos, *depth, tt)
	case "mtdf":
		mv, score, err = engine.MTDF(pos, *depth, 0, tt)
	case "ids":
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()
		cfg := engine.IterativeConfig{
			MaxDepth: *depth,
			Logger: func(line string) {
				logger(fmt.Sprintf("[%s] %s", session, line))
			},
		}
		mv, score, err = engine.SearchIterative(ctx, pos, cfg, tt)
	default:
		return fmt.Errorf("unknown search driver %q: want alphabeta, ids, or mtdf", *search)
	}
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	logger(fmt.Sprintf("[%s] best move %s, score %d", session, mv, score))
	return nil
}

// DefaultLogger prints a line to stdout uncolorized.
func DefaultLogger(line string) {
	fmt.Println(line)
}
