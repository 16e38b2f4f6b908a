package engine

import "errors"

// ErrTerminalPosition is returned by every search entry point when asked to
// search a position with no legal moves: the caller is responsible for
// checking Position.IsTerminal (or IsCheckmate/IsStalemate) before handing a
// position to the engine.
var ErrTerminalPosition = errors.New("engine: position has no legal moves")
