// Package search scores positions and picks moves with an alpha-beta search.
package search

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// pieceValues is the material value of each kind in centipawns.
var pieceValues = [chess.King + 1]int{
	chess.Pawn:   100,
	chess.Knight: 300,
	chess.Bishop: 300,
	chess.Rook:   500,
	chess.Queen:  900,
}

// threatWeights rates how attractive a piece is as a capture target.
// Threats against the king are left to the check logic.
var threatWeights = [chess.King + 1]int{
	chess.Pawn:   80,
	chess.Knight: 150,
	chess.Bishop: 150,
	chess.Rook:   180,
	chess.Queen:  200,
}

// threatDivisor scales a threat weight down to a per-threat bonus.
const threatDivisor = 10

// Middlegame rook bonuses.
const (
	rookOpenFileBonus = 20
	rookContactBonus  = 10
)

// PieceValue returns the material value of a piece kind in centipawns. The
// king has no material value.
func PieceValue(kind chess.Kind) int {
	if kind < chess.NoKind || kind > chess.King {
		return 0
	}
	return pieceValues[kind]
}

// Evaluate scores pos in centipawns from the point of view of the side to
// move. It adds material, piece-square bonuses for the current phase, a
// bonus per enemy piece under attack and, in the middlegame, rook activity.
func Evaluate(pos *chess.Position) int {
	board := &pos.Board
	phase := PhaseOf(board)

	score := 0
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board[sq]
		if piece == chess.Empty {
			continue
		}
		v := PieceValue(piece.Kind()) + SquareBonus(piece, sq, phase) + threats(board, sq)
		if phase == Middle && piece.Kind() == chess.Rook {
			v += rookActivity(board, sq)
		}
		if piece.Colour() == chess.White {
			score += v
		} else {
			score -= v
		}
	}

	if pos.ToMove == chess.Black {
		return -score
	}
	return score
}

// threats sums the threat bonus for every enemy piece other than the king
// attacked by the piece on sq.
func threats(board *chess.Board, sq chess.Square) int {
	colour := board[sq].Colour()
	bonus := 0
	for _, target := range engine.AttackSquares(board, sq) {
		victim := board[target]
		if victim == chess.Empty || victim.Colour() == colour {
			continue
		}
		bonus += threatWeights[victim.Kind()] / threatDivisor
	}
	return bonus
}

// rookActivity rewards a rook on a file without pawns and a rook in
// contact with an enemy piece.
func rookActivity(board *chess.Board, sq chess.Square) int {
	bonus := 0
	if openFile(board, sq.File()) {
		bonus += rookOpenFileBonus
	}
	colour := board[sq].Colour()
	for _, target := range engine.RookTargets(board, sq) {
		if p := board[target]; p != chess.Empty && p.Colour() != colour {
			bonus += rookContactBonus
			break
		}
	}
	return bonus
}

// openFile reports whether no pawn of either colour stands on the file.
func openFile(board *chess.Board, file int) bool {
	for row := 0; row < chess.BoardSize; row++ {
		if board[chess.SquareAt(file, row)].Kind() == chess.Pawn {
			return false
		}
	}
	return true
}
