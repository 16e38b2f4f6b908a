// Package notation implements parsing of Standard Algebraic Notation (SAN)
// move strings against a board.Position, resolving disambiguation by
// checking candidates against the position's own legal moves.
package notation

import (
	"regexp"
	"strings"

	"github.com/rookmate/chesscore/board"
	"github.com/rookmate/chesscore/position"
)

// sanPattern matches ordinary (non-castling) SAN moves: an optional piece
// letter, optional disambiguating file and/or rank, an optional capture
// marker, the destination square, an optional promotion suffix, and an
// optional trailing check/mate marker (ignored, per ParseSAN's doc comment).
var sanPattern = regexp.MustCompile(`^([NBRQK]?)([a-h]?)([1-8]?)(x?)([a-h][1-8])(=[NBRQ])?[+#]?$`)

var pieceLetters = map[byte]board.PieceKind{
	'N': board.Knight,
	'B': board.Bishop,
	'R': board.Rook,
	'Q': board.Queen,
	'K': board.King,
}

// ParseSAN parses a single SAN move string against pos and resolves it to
// the unique board.Move it denotes. A trailing '+' or '#' is accepted and
// ignored: ParseSAN never checks that a claimed check or mate actually
// occurred, only that the move itself is legal.
//
// Disambiguation is resolved against pos.LegalMoves(): if the SAN string
// names a square and piece kind (plus any disambiguating file/rank) that
// matches more than one legal move, ParseSAN returns an *AmbiguousMoveError;
// if it matches none, a *NoSuchMoveError.
func ParseSAN(pos *board.Position, san string) (board.Move, error) {
	san = strings.TrimSpace(san)
	if san == "" {
		return board.Move{}, &ParseError{Input: san, Reason: "empty move"}
	}

	if castle := castleSide(san); castle != board.CastleNone {
		return resolveCastle(pos, san, castle)
	}

	groups := sanPattern.FindStringSubmatch(san)
	if groups == nil {
		return board.Move{}, &ParseError{Input: san, Reason: "does not match SAN grammar"}
	}

	pieceKind := board.Pawn
	if groups[1] != "" {
		pieceKind = pieceLetters[groups[1][0]]
	}

	to, err := position.ParseSquare(groups[5])
	if err != nil {
		return board.Move{}, &ParseError{Input: san, Reason: "bad destination square"}
	}

	var promotion board.PieceKind
	if groups[6] != "" {
		promotion = pieceLetters[groups[6][1]]
	}

	disambigFile, hasFile := fileFilter(groups[2])
	disambigRank, hasRank := rankFilter(groups[3])
	capture := groups[4] != ""

	var candidates []board.Move
	for _, mv := range pos.LegalMoves() {
		if mv.Castle != board.CastleNone || mv.To != to || mv.Promotion != promotion {
			continue
		}
		pc, ok := pos.PieceAt(mv.From)
		if !ok || pc.Kind != pieceKind {
			continue
		}
		if hasFile && mv.From.File() != disambigFile {
			continue
		}
		if hasRank && mv.From.Rank() != disambigRank {
			continue
		}
		mv.Capture = capture
		candidates = append(candidates, mv)
	}

	return pickCandidate(san, candidates)
}

func castleSide(san string) board.CastleSide {
	trimmed := strings.TrimRight(san, "+#")
	switch trimmed {
	case "O-O", "0-0":
		return board.CastleKingside
	case "O-O-O", "0-0-0":
		return board.CastleQueenside
	default:
		return board.CastleNone
	}
}

func resolveCastle(pos *board.Position, san string, side board.CastleSide) (board.Move, error) {
	var candidates []board.Move
	for _, mv := range pos.LegalMoves() {
		if mv.Castle == side {
			candidates = append(candidates, mv)
		}
	}
	return pickCandidate(san, candidates)
}

func pickCandidate(san string, candidates []board.Move) (board.Move, error) {
	switch len(candidates) {
	case 0:
		return board.Move{}, &NoSuchMoveError{Input: san}
	case 1:
		return candidates[0], nil
	default:
		return board.Move{}, &AmbiguousMoveError{Input: san, Candidates: candidates}
	}
}

func fileFilter(s string) (position.Square, bool) {
	if s == "" {
		return 0, false
	}
	return position.Square(s[0] - 'a'), true
}

func rankFilter(s string) (position.Square, bool) {
	if s == "" {
		return 0, false
	}
	return position.Square(s[0] - '1'), true
}
