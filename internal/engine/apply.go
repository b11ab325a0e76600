package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// placeMove updates the piece placement for m: the mover leaves its square,
// an en passant victim is removed from the passed-over square, a castling
// rook is relocated and a promoting pawn is replaced.
func placeMove(board *chess.Board, m chess.Move) {
	piece := m.Piece
	board[m.From] = chess.Empty

	switch m.Kind {
	case chess.EnPassantMove:
		board[enPassantVictim(m.From, m.To)] = chess.Empty
	case chess.CastleMove:
		if rule, ok := ruleForKingMove(m.From, m.To); ok {
			board[rule.rookTo] = board[rule.rookFrom]
			board[rule.rookFrom] = chess.Empty
		}
	case chess.PromotionMove:
		promoted := m.Promotion
		if promoted == chess.NoKind {
			promoted = chess.Queen // Default to queen
		}
		piece = chess.MakePiece(piece.Colour(), promoted)
	}

	board[m.To] = piece
}

// MakeMove plays a move produced by the generator on pos in place and returns
// the move with the prior castling rights, en passant square and half-move
// clock recorded for UnmakeMove. The move is not validated.
func MakeMove(pos *chess.Position, m chess.Move) chess.Move {
	m.PriorCastling = pos.Castling
	m.PriorEnPassant = pos.EnPassant
	m.PriorHalfmove = pos.HalfmoveClock

	placeMove(&pos.Board, m)
	updateCastlingRights(pos, m)
	pos.EnPassant = doubleStepTarget(m)

	if m.Piece.Kind() == chess.Pawn || m.IsCapture() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}

	if pos.ToMove == chess.Black {
		pos.FullmoveNumber++
	}
	pos.ToMove = pos.ToMove.Opposite()

	return m
}

// UnmakeMove reverses a move returned by MakeMove, restoring the board, the
// castling rights, the en passant square, both counters and the turn.
func UnmakeMove(pos *chess.Position, m chess.Move) {
	pos.ToMove = pos.ToMove.Opposite()
	if pos.ToMove == chess.Black {
		pos.FullmoveNumber--
	}
	pos.HalfmoveClock = m.PriorHalfmove
	pos.EnPassant = m.PriorEnPassant
	pos.Castling = m.PriorCastling

	board := &pos.Board
	board[m.From] = m.Piece
	switch m.Kind {
	case chess.EnPassantMove:
		board[m.To] = chess.Empty
		board[enPassantVictim(m.From, m.To)] = m.Captured
	case chess.CastleMove:
		board[m.To] = chess.Empty
		if rule, ok := ruleForKingMove(m.From, m.To); ok {
			board[rule.rookFrom] = board[rule.rookTo]
			board[rule.rookTo] = chess.Empty
		}
	default:
		board[m.To] = m.Captured
	}
}

// ApplyMove validates m against the legal moves of pos and, if it is legal,
// returns the resulting position and the completed move record. promotion
// supplies the promotion piece; when it is NoKind the move's own Promotion
// field is used. On rejection the original position is returned unchanged
// together with an error wrapping errors.ErrIllegalMove.
func ApplyMove(pos chess.Position, m chess.Move, promotion chess.Kind) (chess.Position, chess.Move, error) {
	legal, err := resolveMove(&pos, m, promotion)
	if err != nil {
		return pos, m, err
	}
	next := pos
	done := MakeMove(&next, legal)
	return next, done, nil
}

// Unapply returns the position before m, given the position after it and the
// move record returned by ApplyMove or MakeMove.
func Unapply(pos chess.Position, m chess.Move) chess.Position {
	UnmakeMove(&pos, m)
	return pos
}

// resolveMove checks m against the rules and returns the matching generated
// move with the promotion choice filled in.
func resolveMove(pos *chess.Position, m chess.Move, promotion chess.Kind) (chess.Move, error) {
	reject := func(err error, reason string) (chess.Move, error) {
		return chess.Move{}, &errors.MoveError{Err: err, Move: m.String(), Reason: reason}
	}

	if !m.From.Valid() || !m.To.Valid() {
		return reject(errors.ErrInvalidSquare, "square off the board")
	}
	if m.Piece == chess.Empty || m.Piece.Colour() != pos.ToMove {
		return reject(errors.ErrIllegalMove, "not the mover's turn")
	}
	if m.From == m.To {
		return reject(errors.ErrIllegalMove, "origin equals destination")
	}
	if pos.Board[m.From] != m.Piece {
		return reject(errors.ErrIllegalMove, "piece does not match origin square")
	}

	choice := promotion
	if choice == chess.NoKind {
		choice = m.Promotion
	}

	for _, legal := range LegalMovesFrom(pos, m.From) {
		if legal.To != m.To {
			continue
		}
		if legal.Kind != chess.PromotionMove {
			if choice != chess.NoKind {
				return reject(errors.ErrInvalidPromotion, "move is not a promotion")
			}
			return legal, nil
		}
		if !choice.IsPromotionChoice() {
			return reject(errors.ErrInvalidPromotion, "promotion piece must be queen, rook, bishop or knight")
		}
		legal.Promotion = choice
		return legal, nil
	}
	return reject(errors.ErrIllegalMove, "not a legal move in this position")
}

// ParseMove resolves long algebraic notation such as "e2e4" or "e7e8q"
// against the legal moves of the side to move.
func ParseMove(pos *chess.Position, text string) (chess.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, Move: text, Reason: "malformed move text"}
	}
	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrInvalidSquare, Move: text, Reason: err.Error()}
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrInvalidSquare, Move: text, Reason: err.Error()}
	}

	promotion := chess.NoKind
	if len(text) == 5 {
		promotion = chess.KindFromLetter(text[4])
		if !promotion.IsPromotionChoice() {
			return chess.Move{}, &errors.MoveError{Err: errors.ErrInvalidPromotion, Move: text}
		}
	}

	return resolveMove(pos, chess.Move{From: from, To: to, Piece: pos.Board[from]}, promotion)
}
