// Package enginelog formats the diagnostic lines the search drivers and the
// CLI front end print, so both sides of that boundary produce the exact same
// text regardless of whether it ends up colorized.
package enginelog

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rookmate/chesscore/board"
)

var printer = message.NewPrinter(language.English)

// Progress formats one iterative-deepening depth's result: the depth
// reached, its score from the searching side's perspective, the node count,
// the derived rate, the time taken, and the principal move found.
func Progress(depth int, score int32, nodes int64, elapsed time.Duration, pv board.Move) string {
	nps := float64(nodes) / elapsed.Seconds()
	return printer.Sprintf("depth %d score %d nodes %d time %s (%.0f nodes/s) pv %s",
		depth, score, nodes, elapsed, nps, pv)
}

// SessionProgress prefixes Progress with a search-session identifier, used
// by callers that run several searches in one process and want the log
// correlated back to a particular invocation.
func SessionProgress(session string, depth int, score int32, nodes int64, elapsed time.Duration, pv board.Move) string {
	return printer.Sprintf("[%s] ", session) + Progress(depth, score, nodes, elapsed, pv)
}
