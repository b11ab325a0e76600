package search

import "github.com/lgbarn/chessrules-go/internal/chess"

// Phase is the stage of the game, judged by how many pieces remain.
type Phase int

const (
	Opening Phase = iota
	Middle
	End
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case Opening:
		return "Opening"
	case Middle:
		return "Middle"
	case End:
		return "End"
	}
	return "Unknown"
}

// Piece counts, kings and pawns included, below which a phase starts.
const (
	middlegamePieces = 20
	endgamePieces    = 10
)

// PhaseOf returns the phase for the number of pieces on the board.
func PhaseOf(board *chess.Board) Phase {
	n := 0
	for _, p := range board {
		if p != chess.Empty {
			n++
		}
	}
	switch {
	case n < endgamePieces:
		return End
	case n < middlegamePieces:
		return Middle
	}
	return Opening
}

// squareTable holds a bonus per square. Row 0 is the owner's back rank.
type squareTable [chess.BoardSize][chess.BoardSize]int

var centreBishop = squareTable{
	{70, 70, 70, 70, 70, 70, 70, 70},
	{70, 70, 70, 70, 70, 70, 70, 70},
	{70, 70, 90, 90, 90, 90, 70, 70},
	{70, 90, 90, 100, 100, 90, 90, 70},
	{70, 90, 100, 110, 110, 100, 90, 70},
	{70, 90, 90, 100, 100, 90, 90, 70},
	{70, 70, 70, 70, 70, 70, 70, 70},
	{70, 70, 70, 70, 70, 70, 70, 70},
}

var centreQueen = squareTable{
	{10, 10, 10, 10, 10, 10, 10, 10},
	{10, 20, 20, 20, 20, 20, 20, 10},
	{10, 20, 30, 30, 30, 30, 20, 10},
	{10, 20, 30, 40, 40, 30, 20, 10},
	{10, 20, 30, 40, 40, 30, 20, 10},
	{10, 20, 30, 30, 30, 30, 20, 10},
	{10, 20, 20, 20, 20, 20, 20, 10},
	{10, 10, 10, 10, 10, 10, 10, 10},
}

var openRook = squareTable{
	{0, 0, 0, 10, 10, 0, 0, 0},
	{0, 0, 0, 10, 10, 0, 0, 0},
	{0, 0, 0, 10, 10, 0, 0, 0},
	{0, 0, 0, 10, 10, 0, 0, 0},
	{0, 0, 0, 10, 10, 0, 0, 0},
	{0, 0, 0, 10, 10, 0, 0, 0},
	{20, 20, 20, 20, 20, 20, 20, 20},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var centreKnight = squareTable{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

// pieceSquareTables is indexed by phase and piece kind.
var pieceSquareTables = [3][chess.King + 1]*squareTable{
	Opening: {
		chess.Pawn: {
			{0, 0, 0, 0, 0, 0, 0, 0},
			{55, 60, 60, 20, 20, 60, 40, 55},
			{20, 20, 20, 70, 70, 20, 20, 60},
			{0, 0, 0, 80, 80, 0, 0, 0},
			{-5, -5, -5, 50, 50, 30, -5, -5},
			{-10, -10, -10, 10, 10, -20, 1, -10},
			{5, 5, 10, 20, 20, 10, 5, 5},
			{0, 0, 0, 0, 0, 0, 0, 0},
		},
		chess.Knight: {
			{-50, -40, -30, -30, -30, -30, -40, -50},
			{-40, -20, 10, 10, 10, 10, -20, -40},
			{-30, 20, 25, 20, 20, 25, 20, -30},
			{-30, 0, 5, 10, 10, 5, 0, -30},
			{-30, 0, 5, 5, 5, 5, 0, -30},
			{-30, 5, -10, -10, -10, 10, 5, -30},
			{-40, -20, -10, -15, -15, -10, -20, -40},
			{-50, -40, -30, -30, -30, -30, -40, -50},
		},
		chess.Bishop: &centreBishop,
		chess.Rook:   &openRook,
		chess.Queen:  &centreQueen,
		chess.King: {
			{20, 30, 30, 20, 20, 30, 30, 20},
			{10, 20, 20, 20, 20, 20, 20, 10},
			{0, 0, 0, 0, 0, 0, 0, 0},
			{-10, -10, -10, -10, -10, -10, -10, -10},
			{-20, -20, -20, -20, -20, -20, -20, -20},
			{-30, -30, -30, -30, -30, -30, -30, -30},
			{-40, -40, -40, -40, -40, -40, -40, -40},
			{-50, -50, -50, -50, -50, -50, -50, -50},
		},
	},
	Middle: {
		chess.Pawn: {
			{0, 0, 0, 0, 0, 0, 0, 0},
			{60, 60, 60, 40, 40, 60, 60, 60},
			{40, 40, 50, 80, 80, 50, 40, 40},
			{20, 20, 80, 80, 80, 30, 20, 20},
			{10, 10, 20, 40, 40, 20, 10, 10},
			{5, 5, 10, 20, 20, 10, 5, 5},
			{0, 0, 0, 0, 0, 0, 0, 0},
			{0, -10, -10, 0, 0, -10, -10, 0},
		},
		chess.Knight: &centreKnight,
		chess.Bishop: &centreBishop,
		chess.Rook:   &openRook,
		chess.Queen:  &centreQueen,
		chess.King: {
			{50, 50, 40, 20, 20, 40, 50, 50},
			{30, 30, 0, 0, 0, 0, 30, 30},
			{0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0},
		},
	},
	End: {
		chess.Pawn: {
			{0, 0, 0, 0, 0, 0, 0, 0},
			{5, 5, 5, 0, 0, 5, 5, 5},
			{10, 10, 10, 0, 0, 10, 10, 10},
			{20, 20, 20, 30, 30, 20, 20, 20},
			{30, 40, 50, 50, 50, 50, 40, 30},
			{40, 50, 60, 60, 60, 60, 20, 40},
			{50, 50, 70, 70, 70, 70, 60, 50},
			{100, 100, 100, 100, 100, 100, 100, 100},
		},
		chess.Knight: &centreKnight,
		chess.Bishop: &centreBishop,
		chess.Rook: {
			{-5, 5, -10, 20, 20, 10, 0, -5},
			{5, 10, 15, 20, 20, 15, 10, 5},
			{0, 5, 15, 20, 20, 15, 0, 0},
			{0, 0, 15, 20, 20, 15, 0, 0},
			{0, 0, 15, 20, 20, 15, 0, 0},
			{0, 0, 15, 20, 20, 15, 0, 0},
			{70, 70, 70, 70, 70, 70, 70, 70},
			{0, 2, 20, 20, 20, 20, 20, 0},
		},
		chess.Queen: &centreQueen,
		chess.King: {
			{-50, -30, -30, -30, -30, -30, -30, -50},
			{-30, -30, 0, 0, 0, 0, -30, -30},
			{-30, -10, 20, 30, 30, 20, -10, -30},
			{-30, -10, 30, 40, 40, 30, -10, -30},
			{-30, -10, 30, 40, 40, 30, -10, -30},
			{-30, -10, 20, 30, 30, 20, 10, -30},
			{-30, 10, 10, 0, 0, -10, 10, 10},
			{-50, -40, -30, -20, -20, -30, -40, -50},
		},
	},
}

// SquareBonus returns the positional bonus for piece standing on sq in the
// given phase. Tables are laid out from Black's side of the board, so
// White's rows are mirrored.
func SquareBonus(piece chess.Piece, sq chess.Square, phase Phase) int {
	kind := piece.Kind()
	if kind == chess.NoKind {
		return 0
	}
	row := sq.Row()
	if piece.Colour() == chess.White {
		row = chess.BoardSize - 1 - row
	}
	return pieceSquareTables[phase][kind][row][sq.File()]
}
