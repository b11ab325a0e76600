package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree of the given depth.
// Each promotion counts once per promotion piece.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := ExpandPromotions(GenerateMoves(pos, pos.ToMove))
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		done := MakeMove(pos, m)
		nodes += Perft(pos, depth-1)
		UnmakeMove(pos, done)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by the move in
// long algebraic notation.
func Divide(pos *chess.Position, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, m := range ExpandPromotions(GenerateMoves(pos, pos.ToMove)) {
		done := MakeMove(pos, m)
		counts[m.String()] = Perft(pos, depth-1)
		UnmakeMove(pos, done)
	}
	return counts
}
