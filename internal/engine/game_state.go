package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Classify returns the state of the game for the side to move. Positions
// without legal moves are checkmate or stalemate; otherwise a dead position
// or an expired fifty-move clock is a draw, and a king under attack is in
// check.
func Classify(pos *chess.Position) chess.GameState {
	colour := pos.ToMove
	inCheck := IsInCheck(&pos.Board, colour)

	if !HasLegalMoves(pos, colour) {
		if inCheck {
			return chess.Checkmate
		}
		return chess.Stalemate
	}
	if HasInsufficientMaterial(&pos.Board) || IsFiftyMoveDraw(pos) {
		return chess.Draw
	}
	if inCheck {
		return chess.Check
	}
	return chess.Normal
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	colour := pos.ToMove
	return IsInCheck(&pos.Board, colour) && !HasLegalMoves(pos, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	colour := pos.ToMove
	return !IsInCheck(&pos.Board, colour) && !HasLegalMoves(pos, colour)
}
