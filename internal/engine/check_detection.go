package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked. A board
// without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.FindKing(colour)
	if king == chess.NoSquare {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if a piece of byColour attacks sq. It looks
// outward from sq for each kind of attacker, which visits the same squares
// as the attackers' own attack sets.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: an attacking pawn sits one row behind sq from its
	// own point of view.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	for _, df := range [2]int{-1, 1} {
		if from, ok := step(sq, offset{df, -pawnDirection(byColour)}); ok && board[from] == pawn {
			return true
		}
	}

	// Check knight attacks
	knight := chess.MakePiece(byColour, chess.Knight)
	for _, o := range knightOffsets {
		if from, ok := step(sq, o); ok && board[from] == knight {
			return true
		}
	}

	// Check king attacks
	king := chess.MakePiece(byColour, chess.King)
	for _, o := range kingOffsets {
		if from, ok := step(sq, o); ok && board[from] == king {
			return true
		}
	}

	// Check sliding pieces (bishop, rook, queen)
	queen := chess.MakePiece(byColour, chess.Queen)
	if rayHits(board, sq, bishopDirections, chess.MakePiece(byColour, chess.Bishop), queen) {
		return true
	}
	return rayHits(board, sq, rookDirections, chess.MakePiece(byColour, chess.Rook), queen)
}

// rayHits reports whether the first piece met along any direction from sq is
// one of the two given sliders.
func rayHits(board *chess.Board, sq chess.Square, dirs []offset, slider, queen chess.Piece) bool {
	for _, dir := range dirs {
		for from, ok := step(sq, dir); ok; from, ok = step(from, dir) {
			piece := board[from]
			if piece == chess.Empty {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break // Blocked
		}
	}
	return false
}

// Attackers returns the squares of byColour's pieces that attack sq.
func Attackers(board *chess.Board, sq chess.Square, byColour chess.Colour) []chess.Square {
	var attackers []chess.Square
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		piece := board[from]
		if piece == chess.Empty || piece.Colour() != byColour {
			continue
		}
		for _, target := range AttackSquares(board, from) {
			if target == sq {
				attackers = append(attackers, from)
				break
			}
		}
	}
	return attackers
}
