// Package engine provides chess move generation, validation and board manipulation.
package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Names of the six FEN fields, used in error context.
const (
	fieldLayout    = "board layout"
	fieldColour    = "active colour"
	fieldCastling  = "castling rights"
	fieldEnPassant = "en passant square"
	fieldHalfmove  = "half-move clock"
	fieldFullmove  = "full-move number"
)

// recordError builds a RecordError wrapping ErrMalformedRecord.
func recordError(field, value string) error {
	return &errors.RecordError{Err: errors.ErrMalformedRecord, Field: field, Value: value}
}

// NewPositionFromFEN decodes a six-field FEN record. Any malformed field
// fails the whole decode; no partial position is returned.
func NewPositionFromFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return chess.Position{}, recordError("field count", strconv.Itoa(len(parts)))
	}

	pos := chess.NewEmptyPosition()

	if err := parsePiecePositions(&pos, parts[0]); err != nil {
		return chess.Position{}, err
	}
	if err := parseSideToMove(&pos, parts[1]); err != nil {
		return chess.Position{}, err
	}
	if err := parseCastlingRights(&pos, parts[2]); err != nil {
		return chess.Position{}, err
	}
	if err := parseEnPassant(&pos, parts[3]); err != nil {
		return chess.Position{}, err
	}
	if err := parseClocks(&pos, parts[4], parts[5]); err != nil {
		return chess.Position{}, err
	}

	return pos, nil
}

// parsePiecePositions parses the piece placement field, expanding digits
// into runs of empty squares.
func parsePiecePositions(pos *chess.Position, layout string) error {
	rows := strings.Split(layout, "/")
	if len(rows) != chess.BoardSize {
		return recordError(fieldLayout, layout)
	}

	for row, text := range rows {
		file := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				if file > chess.BoardSize {
					return recordError(fieldLayout, text)
				}
				continue
			}
			piece, ok := chess.PieceFromLetter(c)
			if !ok || file >= chess.BoardSize {
				return recordError(fieldLayout, text)
			}
			pos.Set(chess.SquareAt(file, row), piece)
			file++
		}
		if file != chess.BoardSize {
			return recordError(fieldLayout, text)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, field string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return recordError(fieldColour, field)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, field string) error {
	pos.Castling = chess.NoCastling
	if field == "-" {
		return nil
	}

	for i := 0; i < len(field); i++ {
		var right chess.CastlingRights
		switch field[i] {
		case 'K':
			right = chess.WhiteKingside
		case 'Q':
			right = chess.WhiteQueenside
		case 'k':
			right = chess.BlackKingside
		case 'q':
			right = chess.BlackQueenside
		default:
			return recordError(fieldCastling, field)
		}
		if pos.Castling.Has(right) {
			return recordError(fieldCastling, field)
		}
		pos.Castling |= right
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The target must
// lie on the third or sixth rank, where a double-stepping pawn passes.
func parseEnPassant(pos *chess.Position, field string) error {
	pos.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil || (sq.Rank() != 3 && sq.Rank() != 6) {
		return recordError(fieldEnPassant, field)
	}
	pos.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, halfmove, fullmove string) error {
	hm, err := strconv.Atoi(halfmove)
	if err != nil || hm < 0 {
		return recordError(fieldHalfmove, halfmove)
	}
	fm, err := strconv.Atoi(fullmove)
	if err != nil || fm < 1 {
		return recordError(fieldFullmove, fullmove)
	}
	pos.HalfmoveClock = hm
	pos.FullmoveNumber = fm
	return nil
}

// PositionToFEN encodes a position as a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteByte(pos.ToMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullmoveNumber))

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder, compressing
// runs of empty squares into digits.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Get(chess.SquareAt(file, row))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() chess.Position {
	pos, _ := NewPositionFromFEN(InitialFEN)
	return pos
}

// MustPositionFromFEN decodes a FEN string known to be valid and panics
// otherwise. Intended for package-level fixtures and tests.
func MustPositionFromFEN(fen string) chess.Position {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}
