package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GenerateMoves returns every legal move for colour. Squares are visited in
// ascending order and each piece's targets in its fixed direction order, so
// the result is deterministic. Promotions appear once per destination with
// no piece chosen; see ExpandPromotions.
func GenerateMoves(pos *chess.Position, colour chess.Colour) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Board[sq]
		if piece == chess.Empty || piece.Colour() != colour {
			continue
		}
		moves = appendLegalMoves(moves, pos, sq)
	}
	return moves
}

// LegalMovesFrom returns the legal moves of the piece on from, or nil if the
// square is empty or off the board.
func LegalMovesFrom(pos *chess.Position, from chess.Square) []chess.Move {
	if !from.Valid() || pos.Board[from] == chess.Empty {
		return nil
	}
	return appendLegalMoves(nil, pos, from)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Board[sq]
		if piece == chess.Empty || piece.Colour() != colour {
			continue
		}
		for _, m := range pseudoLegalMoves(pos, sq) {
			if m.Kind == chess.CastleMove || !leavesKingInCheck(pos, m) {
				return true
			}
		}
	}
	return false
}

// appendLegalMoves appends the pseudo-legal moves of the piece on from that
// do not leave its own king in check.
func appendLegalMoves(moves []chess.Move, pos *chess.Position, from chess.Square) []chess.Move {
	for _, m := range pseudoLegalMoves(pos, from) {
		// Castling moves are vetted for check when generated.
		if m.Kind == chess.CastleMove || !leavesKingInCheck(pos, m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// pseudoLegalMoves returns the moves obeying the piece's movement geometry,
// not yet checked against self-check.
func pseudoLegalMoves(pos *chess.Position, from chess.Square) []chess.Move {
	board := &pos.Board
	var targets []chess.Square

	switch board[from].Kind() {
	case chess.Pawn:
		return pawnMoves(pos, from)
	case chess.Knight:
		targets = KnightTargets(board, from)
	case chess.Bishop:
		targets = BishopTargets(board, from)
	case chess.Rook:
		targets = RookTargets(board, from)
	case chess.Queen:
		targets = QueenTargets(board, from)
	case chess.King:
		targets = KingStepTargets(board, from)
	default:
		return nil
	}

	moves := make([]chess.Move, 0, len(targets)+2)
	for _, to := range targets {
		moves = append(moves, newMove(pos, from, to, chess.NormalMove))
	}
	if board[from].Kind() == chess.King {
		moves = append(moves, castlingMoves(pos, from)...)
	}
	return moves
}

// newMove builds a move record from the current position, capturing
// whatever stands on to and the state needed to undo it.
func newMove(pos *chess.Position, from, to chess.Square, kind chess.MoveKind) chess.Move {
	return chess.Move{
		From:           from,
		To:             to,
		Piece:          pos.Board[from],
		Kind:           kind,
		Captured:       pos.Board[to],
		PriorCastling:  pos.Castling,
		PriorEnPassant: pos.EnPassant,
		PriorHalfmove:  pos.HalfmoveClock,
	}
}

// leavesKingInCheck plays m on a copy of the board and reports whether the
// mover's king is then attacked.
func leavesKingInCheck(pos *chess.Position, m chess.Move) bool {
	board := simulate(pos.Board, m)
	return IsInCheck(&board, m.Colour())
}

// simulate returns the board after m, leaving the argument untouched.
func simulate(board chess.Board, m chess.Move) chess.Board {
	placeMove(&board, m)
	return board
}
