package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// offset is a (file, row) step. Positive rows point towards the first rank.
type offset struct {
	df, dr int
}

// Direction tables. Move generation walks them in this order, which fixes
// the order of generated moves.
var (
	bishopDirections = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirections   = []offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	queenDirections  = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}, {0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	knightOffsets    = []offset{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}
	kingOffsets      = []offset{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// step returns the square reached from sq by o, or false at the board edge.
func step(sq chess.Square, o offset) (chess.Square, bool) {
	file := sq.File() + o.df
	row := sq.Row() + o.dr
	if file < 0 || file >= chess.BoardSize || row < 0 || row >= chess.BoardSize {
		return chess.NoSquare, false
	}
	return chess.SquareAt(file, row), true
}

// pawnDirection returns the row step of a pawn of the given colour.
func pawnDirection(colour chess.Colour) int {
	if colour == chess.White {
		return -1
	}
	return 1
}

// pawnStartRow returns the row pawns of the colour start on.
func pawnStartRow(colour chess.Colour) int {
	if colour == chess.White {
		return 6
	}
	return 1
}

// promotionRow returns the farthest row for pawns of the colour.
func promotionRow(colour chess.Colour) int {
	if colour == chess.White {
		return 0
	}
	return 7
}

// slidingTargets walks each direction from the piece on from. A ray ends at
// the first occupied square, which is included only if it holds an enemy.
func slidingTargets(board *chess.Board, from chess.Square, dirs []offset) []chess.Square {
	colour := board[from].Colour()
	targets := make([]chess.Square, 0, 14)
	for _, dir := range dirs {
		for sq, ok := step(from, dir); ok; sq, ok = step(sq, dir) {
			piece := board[sq]
			if piece == chess.Empty {
				targets = append(targets, sq)
				continue
			}
			if piece.Colour() != colour {
				targets = append(targets, sq)
			}
			break
		}
	}
	return targets
}

// leaperTargets returns the in-bounds offsets from the piece on from that are
// not occupied by a piece of its own colour.
func leaperTargets(board *chess.Board, from chess.Square, offsets []offset) []chess.Square {
	colour := board[from].Colour()
	targets := make([]chess.Square, 0, len(offsets))
	for _, o := range offsets {
		sq, ok := step(from, o)
		if !ok {
			continue
		}
		if piece := board[sq]; piece != chess.Empty && piece.Colour() == colour {
			continue
		}
		targets = append(targets, sq)
	}
	return targets
}

// BishopTargets returns the squares the bishop on from can move to or capture on.
func BishopTargets(board *chess.Board, from chess.Square) []chess.Square {
	return slidingTargets(board, from, bishopDirections)
}

// RookTargets returns the squares the rook on from can move to or capture on.
func RookTargets(board *chess.Board, from chess.Square) []chess.Square {
	return slidingTargets(board, from, rookDirections)
}

// QueenTargets returns the union of the bishop and rook rays from from.
func QueenTargets(board *chess.Board, from chess.Square) []chess.Square {
	return slidingTargets(board, from, queenDirections)
}

// KnightTargets returns the knight jumps from from not blocked by own pieces.
func KnightTargets(board *chess.Board, from chess.Square) []chess.Square {
	return leaperTargets(board, from, knightOffsets)
}

// KingStepTargets returns the adjacent squares the king on from may step to,
// ignoring attacks: own pieces block, and no square next to the enemy king
// is allowed.
func KingStepTargets(board *chess.Board, from chess.Square) []chess.Square {
	colour := board[from].Colour()
	enemyKing := board.FindKing(colour.Opposite())
	targets := leaperTargets(board, from, kingOffsets)
	if enemyKing == chess.NoSquare {
		return targets
	}
	kept := targets[:0]
	for _, sq := range targets {
		if !adjacent(sq, enemyKing) {
			kept = append(kept, sq)
		}
	}
	return kept
}

// KingTargets returns the non-castling king moves from from that do not
// leave the king in check.
func KingTargets(board *chess.Board, from chess.Square) []chess.Square {
	colour := board[from].Colour()
	king := board[from]
	var targets []chess.Square
	for _, sq := range KingStepTargets(board, from) {
		test := *board
		test[from] = chess.Empty
		test[sq] = king
		if !IsInCheck(&test, colour) {
			targets = append(targets, sq)
		}
	}
	return targets
}

// PawnCaptureSquares returns the diagonal squares a pawn of the colour on
// from attacks, whether or not they are occupied.
func PawnCaptureSquares(from chess.Square, colour chess.Colour) []chess.Square {
	dir := pawnDirection(colour)
	squares := make([]chess.Square, 0, 2)
	for _, df := range [2]int{-1, 1} {
		if sq, ok := step(from, offset{df, dir}); ok {
			squares = append(squares, sq)
		}
	}
	return squares
}

// PawnTargets returns the pawn's forward moves, its captures of enemy pieces
// and, when the position's en passant field names a reachable square with an
// enemy pawn beside it, the en passant capture.
func PawnTargets(pos *chess.Position, from chess.Square) []chess.Square {
	board := &pos.Board
	colour := board[from].Colour()
	dir := pawnDirection(colour)
	targets := make([]chess.Square, 0, 4)

	if one, ok := step(from, offset{0, dir}); ok && board[one] == chess.Empty {
		targets = append(targets, one)
		if from.Row() == pawnStartRow(colour) {
			if two, ok := step(one, offset{0, dir}); ok && board[two] == chess.Empty {
				targets = append(targets, two)
			}
		}
	}

	for _, sq := range PawnCaptureSquares(from, colour) {
		piece := board[sq]
		if piece != chess.Empty && piece.Colour() != colour {
			targets = append(targets, sq)
			continue
		}
		if sq == pos.EnPassant && isEnPassantCapture(pos, from, sq) {
			targets = append(targets, sq)
		}
	}
	return targets
}

// isEnPassantCapture reports whether the pawn on from may capture en passant
// onto target: the target is empty and the square beside the pawn, on the
// target's file, holds an enemy pawn.
func isEnPassantCapture(pos *chess.Position, from, target chess.Square) bool {
	if pos.Board[target] != chess.Empty {
		return false
	}
	colour := pos.Board[from].Colour()
	victim := pos.Board[enPassantVictim(from, target)]
	return victim.Is(colour.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture from from onto target.
func enPassantVictim(from, target chess.Square) chess.Square {
	return chess.SquareAt(target.File(), from.Row())
}

// AttackSquares returns the squares the piece on from attacks: pawns attack
// diagonally only, kings attack every adjacent square, and other pieces
// attack their move targets.
func AttackSquares(board *chess.Board, from chess.Square) []chess.Square {
	piece := board[from]
	switch piece.Kind() {
	case chess.Pawn:
		return PawnCaptureSquares(from, piece.Colour())
	case chess.Knight:
		return KnightTargets(board, from)
	case chess.Bishop:
		return BishopTargets(board, from)
	case chess.Rook:
		return RookTargets(board, from)
	case chess.Queen:
		return QueenTargets(board, from)
	case chess.King:
		return leaperTargets(board, from, kingOffsets)
	}
	return nil
}

// AttackMap returns, for every square, whether a piece of the given colour
// attacks it.
func AttackMap(board *chess.Board, by chess.Colour) [chess.NumSquares]bool {
	var attacked [chess.NumSquares]bool
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board[sq]
		if piece == chess.Empty || piece.Colour() != by {
			continue
		}
		for _, target := range AttackSquares(board, sq) {
			attacked[target] = true
		}
	}
	return attacked
}

// adjacent reports whether two distinct squares touch.
func adjacent(a, b chess.Square) bool {
	return a != b && abs(a.File()-b.File()) <= 1 && abs(a.Row()-b.Row()) <= 1
}
