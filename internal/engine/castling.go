package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingRule describes one of the four castling options.
type castlingRule struct {
	right    chess.CastlingRights
	colour   chess.Colour
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
}

var castlingRules = [4]castlingRule{
	{chess.WhiteKingside, chess.White, chess.E1, chess.G1, chess.H1, chess.F1},
	{chess.WhiteQueenside, chess.White, chess.E1, chess.C1, chess.A1, chess.D1},
	{chess.BlackKingside, chess.Black, chess.E8, chess.G8, chess.H8, chess.F8},
	{chess.BlackQueenside, chess.Black, chess.E8, chess.C8, chess.A8, chess.D8},
}

// castlingRightsMask lists the rights lost when a piece leaves or is
// captured on each square.
var castlingRightsMask = func() [chess.NumSquares]chess.CastlingRights {
	var mask [chess.NumSquares]chess.CastlingRights
	for _, rule := range castlingRules {
		mask[rule.kingFrom] |= rule.right
		mask[rule.rookFrom] |= rule.right
	}
	return mask
}()

// ruleForKingMove returns the castling rule whose king move is from -> to.
func ruleForKingMove(from, to chess.Square) (castlingRule, bool) {
	for _, rule := range castlingRules {
		if rule.kingFrom == from && rule.kingTo == to {
			return rule, true
		}
	}
	return castlingRule{}, false
}

// castlingMoves returns the castling moves available to the king on from.
// Each is fully legal: the right is held, the rook is home, the squares
// between king and rook are empty, and the king is not in check, does not
// pass through an attacked square and does not land on one.
func castlingMoves(pos *chess.Position, from chess.Square) []chess.Move {
	board := &pos.Board
	king := board[from]
	colour := king.Colour()

	var moves []chess.Move
	for _, rule := range castlingRules {
		if rule.colour != colour || rule.kingFrom != from || !pos.Castling.Has(rule.right) {
			continue
		}
		if board[rule.rookFrom] != chess.MakePiece(colour, chess.Rook) {
			continue
		}
		if !pathClear(board, rule.kingFrom, rule.rookFrom) {
			continue
		}
		if IsInCheck(board, colour) {
			break
		}
		if !kingSafeOn(board, from, rule.rookTo, colour) || !kingSafeOn(board, from, rule.kingTo, colour) {
			continue
		}
		moves = append(moves, newMove(pos, from, rule.kingTo, chess.CastleMove))
	}
	return moves
}

// pathClear reports whether every square strictly between a and b on the
// same row is empty.
func pathClear(board *chess.Board, a, b chess.Square) bool {
	dir := sign(int(b) - int(a))
	for sq := chess.Square(int(a) + dir); sq != b; sq = chess.Square(int(sq) + dir) {
		if board[sq] != chess.Empty {
			return false
		}
	}
	return true
}

// kingSafeOn reports whether the king on from would be out of check if it
// stood on sq instead.
func kingSafeOn(board *chess.Board, from, sq chess.Square, colour chess.Colour) bool {
	test := *board
	test[sq] = test[from]
	test[from] = chess.Empty
	return !IsInCheck(&test, colour)
}

// updateCastlingRights removes the rights tied to the squares a move
// touches: a king or rook leaving home, or a rook captured at home.
func updateCastlingRights(pos *chess.Position, m chess.Move) {
	pos.Castling = pos.Castling.Without(castlingRightsMask[m.From] | castlingRightsMask[m.To])
}
