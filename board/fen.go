package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rookmate/chesscore/position"
)

// ParseFEN parses Forsyth-Edwards Notation into a Position. En passant
// target squares are accepted syntactically (for compatibility with FEN
// strings produced by other tools) but never stored: en passant capture
// itself is out of scope for this engine, see Apply's pawn rules.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: expected 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	var p Position
	if err := parsePlacement(&p, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.turn = White
	case "b":
		p.turn = Black
	default:
		return nil, fmt.Errorf("%w: bad active color %q", ErrInvalidFEN, fields[1])
	}

	if err := parseCastling(&p, fields[2]); err != nil {
		return nil, err
	}

	if fields[3] != "-" {
		if _, err := position.ParseSquare(fields[3]); err != nil {
			return nil, fmt.Errorf("%w: bad en passant target %q", ErrInvalidFEN, fields[3])
		}
	}

	half, err := strconv.ParseUint(fields[4], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: bad halfmove clock %q", ErrInvalidFEN, fields[4])
	}
	p.halfMoveClock = uint16(half)

	full, err := strconv.ParseUint(fields[5], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: bad fullmove number %q", ErrInvalidFEN, fields[5])
	}
	p.fullMoveNumber = uint16(full)

	if p.turn == White {
		p.hash ^= zobristSideWhite
	}
	p.hash ^= zobristCastling[p.castling]

	return &p, nil
}

func parsePlacement(p *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := position.Square(7 - i)
		file := position.Square(0)
		for _, c := range rankStr {
			if file >= position.BoardSize {
				return fmt.Errorf("%w: rank %q overflows the board", ErrInvalidFEN, rankStr)
			}
			if c >= '1' && c <= '8' {
				file += position.Square(c - '0')
				continue
			}
			side, kind, err := pieceFromFENSymbol(c)
			if err != nil {
				return err
			}
			sq := position.NewSquare(file, rank)
			p.place(side, kind, sq)
			file++
		}
		if file != position.BoardSize {
			return fmt.Errorf("%w: rank %q does not cover 8 files", ErrInvalidFEN, rankStr)
		}
	}
	return nil
}

func pieceFromFENSymbol(c rune) (Side, PieceKind, error) {
	side := White
	lower := c
	if c >= 'a' && c <= 'z' {
		side = Black
	} else {
		lower = c + 32
	}
	var kind PieceKind
	switch lower {
	case 'p':
		kind = Pawn
	case 'n':
		kind = Knight
	case 'b':
		kind = Bishop
	case 'r':
		kind = Rook
	case 'q':
		kind = Queen
	case 'k':
		kind = King
	default:
		return 0, 0, fmt.Errorf("%w: bad piece symbol %q", ErrInvalidFEN, string(c))
	}
	return side, kind, nil
}

func parseCastling(p *Position, field string) error {
	if field == "-" {
		return nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			p.castling = p.castling.with(White, CastleKingside, true)
		case 'Q':
			p.castling = p.castling.with(White, CastleQueenside, true)
		case 'k':
			p.castling = p.castling.with(Black, CastleKingside, true)
		case 'q':
			p.castling = p.castling.with(Black, CastleQueenside, true)
		default:
			return fmt.Errorf("%w: bad castling field %q", ErrInvalidFEN, field)
		}
	}
	return nil
}

// FEN renders the position back into Forsyth-Edwards Notation. The en
// passant field is always "-", since en passant is never tracked.
func (p *Position) FEN() string {
	var b strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := position.NewSquare(position.Square(f), position.Square(r))
			pc, ok := p.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.Kind.SymbolFEN(pc.Side))
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	if p.turn == White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}

	b.WriteByte(' ')
	castling := castlingFENField(p.castling)
	b.WriteString(castling)

	b.WriteString(" - ")
	b.WriteString(strconv.Itoa(int(p.halfMoveClock)))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(int(p.fullMoveNumber)))

	return b.String()
}

// ToFEN is an alias for FEN, spelled out for callers that prefer an explicit
// verb over the noun-shaped accessor.
func (p *Position) ToFEN() string { return p.FEN() }

func castlingFENField(rights castlingRights) string {
	var b strings.Builder
	if rights.allowed(White, CastleKingside) {
		b.WriteByte('K')
	}
	if rights.allowed(White, CastleQueenside) {
		b.WriteByte('Q')
	}
	if rights.allowed(Black, CastleKingside) {
		b.WriteByte('k')
	}
	if rights.allowed(Black, CastleQueenside) {
		b.WriteByte('q')
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}
