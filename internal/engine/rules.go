package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// FiftyMoveLimit is the half-move clock value at which the game is drawn.
const FiftyMoveLimit = 100

// IsFiftyMoveDraw reports whether fifty moves by each side have passed
// without a pawn move or a capture.
func IsFiftyMoveDraw(pos *chess.Position) bool {
	return pos.HalfmoveClock >= FiftyMoveLimit
}

// HasInsufficientMaterial returns true if neither side can deliver mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+N vs K+N
// - K+B vs K+B (bishops on the same square colour)
//
// Sides with two or more minor pieces are never treated as drawn, and
// threefold repetition is not tracked.
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors [2][]chess.Kind
	var bishopOnLight [2]bool

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board[sq]
		if piece == chess.Empty {
			continue
		}

		kind := piece.Kind()
		switch kind {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			// Any pawn, rook, or queen means sufficient material
			return false
		}

		colour := piece.Colour()
		minors[colour] = append(minors[colour], kind)
		if len(minors[colour]) > 1 {
			return false
		}
		if kind == chess.Bishop {
			bishopOnLight[colour] = sq.IsLight()
		}
	}

	white, black := minors[chess.White], minors[chess.Black]
	if len(white) == 0 || len(black) == 0 {
		// K vs K, or a single minor piece against a bare king
		return true
	}

	switch {
	case white[0] == chess.Knight && black[0] == chess.Knight:
		return true
	case white[0] == chess.Bishop && black[0] == chess.Bishop:
		return bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}
