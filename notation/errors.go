package notation

import (
	"errors"
	"fmt"

	"github.com/rookmate/chesscore/board"
)

// ErrInvalidSAN is wrapped by every parse failure returned from ParseSAN.
var ErrInvalidSAN = errors.New("invalid SAN move")

// ErrParse is wrapped by ParseError: the SAN string could not be tokenized
// at all.
var ErrParse = errors.New("malformed SAN")

// ErrAmbiguousMove is wrapped by AmbiguousMoveError.
var ErrAmbiguousMove = errors.New("ambiguous SAN move")

// ErrNoSuchMove is wrapped by NoSuchMoveError.
var ErrNoSuchMove = errors.New("no such legal move")

// ParseError reports that a SAN string could not be tokenized at all.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid SAN move %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return errors.Join(ErrInvalidSAN, ErrParse) }

// NoSuchMoveError reports that a syntactically valid SAN string matches no
// legal move in the given position.
type NoSuchMoveError struct {
	Input string
}

func (e *NoSuchMoveError) Error() string {
	return fmt.Sprintf("no legal move matches %q", e.Input)
}

func (e *NoSuchMoveError) Unwrap() error { return errors.Join(ErrInvalidSAN, ErrNoSuchMove) }

// AmbiguousMoveError reports that a SAN string under-specifies which of
// several legal moves it refers to.
type AmbiguousMoveError struct {
	Input      string
	Candidates []board.Move
}

func (e *AmbiguousMoveError) Error() string {
	return fmt.Sprintf("%q is ambiguous between %d candidate moves", e.Input, len(e.Candidates))
}

func (e *AmbiguousMoveError) Unwrap() error { return errors.Join(ErrInvalidSAN, ErrAmbiguousMove) }
