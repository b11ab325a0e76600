package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves returns the pseudo-legal moves of the pawn on from, marking
// promotions and en passant captures.
func pawnMoves(pos *chess.Position, from chess.Square) []chess.Move {
	colour := pos.Board[from].Colour()
	targets := PawnTargets(pos, from)
	moves := make([]chess.Move, 0, len(targets))

	for _, to := range targets {
		m := newMove(pos, from, to, chess.NormalMove)
		switch {
		case to == pos.EnPassant && to.File() != from.File() && pos.Board[to] == chess.Empty:
			m.Kind = chess.EnPassantMove
			m.Captured = pos.Board[enPassantVictim(from, to)]
		case to.Row() == promotionRow(colour):
			m.Kind = chess.PromotionMove
		}
		moves = append(moves, m)
	}
	return moves
}

// ExpandPromotions replaces every promotion move without a chosen piece by
// one move per promotion piece, in the order queen, rook, bishop, knight.
// Other moves are copied unchanged.
func ExpandPromotions(moves []chess.Move) []chess.Move {
	expanded := make([]chess.Move, 0, len(moves))
	for _, m := range moves {
		if m.Kind != chess.PromotionMove || m.Promotion != chess.NoKind {
			expanded = append(expanded, m)
			continue
		}
		for _, kind := range chess.PromotionChoices {
			promoted := m
			promoted.Promotion = kind
			expanded = append(expanded, promoted)
		}
	}
	return expanded
}

// doubleStepTarget returns the en passant target created by m, or NoSquare
// if m is not a pawn's two-square advance.
func doubleStepTarget(m chess.Move) chess.Square {
	if m.Piece.Kind() != chess.Pawn || abs(m.To.Row()-m.From.Row()) != 2 {
		return chess.NoSquare
	}
	return chess.SquareAt(m.From.File(), (m.From.Row()+m.To.Row())/2)
}
