// Package position defines the primitive coordinate type shared by the rest of
// the engine: a little-endian rank-file square index and its algebraic notation.
package position

import "errors"

// BoardSize is the number of files (and ranks) on a chess board.
const BoardSize Square = 8

// ErrInvalidNotation is returned when a two-character algebraic square
// ("a1".."h8") cannot be parsed.
var ErrInvalidNotation = errors.New("invalid square notation")

// Square is a little-endian rank-file (LERF) board index: rank*8+file, with
// a1 = 0 and h8 = 63.
type Square int8

// Named squares used by castling and other fixed-geometry rules.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a Square from zero-based file and rank components.
func NewSquare(file, rank Square) Square {
	return rank*BoardSize + file
}

// ParseSquare parses a two-character algebraic square such as "e4".
func ParseSquare(n string) (Square, error) {
	file, rank, err := notationToFileRank(n)
	if err != nil {
		return 0, err
	}
	return NewSquare(file, rank), nil
}

func (s Square) String() string { return s.Notation() }

// Notation renders the square in algebraic form, e.g. "e4".
func (s Square) Notation() string {
	if s < 0 || s >= BoardSize*BoardSize {
		return ""
	}
	return string(rune('a'+s.File())) + string(rune('1'+s.Rank()))
}

// File returns the zero-based file (0=a .. 7=h).
func (s Square) File() Square { return s % BoardSize }

// Rank returns the zero-based rank (0=rank1 .. 7=rank8).
func (s Square) Rank() Square { return s / BoardSize }

// ShiftFile returns the square n files to the right (negative n shifts left),
// without bounds checking; callers must verify the result stays on the board.
func (s Square) ShiftFile(n Square) Square { return s + n }

// ShiftRank returns the square n ranks up (negative n shifts down), without
// bounds checking; callers must verify the result stays on the board.
func (s Square) ShiftRank(n Square) Square { return s + n*BoardSize }

// OnBoard reports whether s is a valid 0..63 square index.
func (s Square) OnBoard() bool { return s >= 0 && s < BoardSize*BoardSize }

func notationToFileRank(n string) (Square, Square, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	file, err := notationToFile(n[0])
	if err != nil {
		return 0, 0, err
	}
	rank, err := notationToRank(n[1])
	if err != nil {
		return 0, 0, err
	}
	return file, rank, nil
}

func notationToFile(c byte) (Square, error) {
	f := Square(c - 'a')
	if f < 0 || f >= BoardSize {
		return 0, ErrInvalidNotation
	}
	return f, nil
}

func notationToRank(c byte) (Square, error) {
	r := Square(c-'0') - 1
	if r < 0 || r >= BoardSize {
		return 0, ErrInvalidNotation
	}
	return r, nil
}

// FileLetter renders the file component alone, e.g. "e".
func (s Square) FileLetter() string {
	if s.File() < 0 || s.File() >= BoardSize {
		return ""
	}
	return string(rune('a' + s.File()))
}

// RankDigit renders the rank component alone, e.g. "4".
func (s Square) RankDigit() string {
	if s.Rank() < 0 || s.Rank() >= BoardSize {
		return ""
	}
	return string(rune('1' + s.Rank()))
}
