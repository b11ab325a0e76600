package chess

// Move is a candidate move as produced by the move generator and consumed by
// the executor. It carries the state the executor overwrites so that the
// move can be undone without scanning the board.
type Move struct {
	From Square
	To   Square

	// The piece being moved.
	Piece Piece

	Kind MoveKind

	// The piece captured (Empty if no capture). For en passant this is the
	// pawn on the passed-over square, not the piece on To.
	Captured Piece

	// The piece promoted to. NoKind until a choice is supplied.
	Promotion Kind

	// State of the position before the move, filled in by the executor.
	PriorCastling  CastlingRights
	PriorEnPassant Square
	PriorHalfmove  int
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Kind == PromotionMove
}

// Colour returns the side making the move.
func (m Move) Colour() Colour {
	return m.Piece.Colour()
}

// SameSquares reports whether m and other move between the same squares
// with the same promotion choice.
func (m Move) SameSquares(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Promotion == other.Promotion
}

// String returns the move in long algebraic (UCI) notation, e.g. "e2e4" or
// "e7e8q".
func (m Move) String() string {
	if !m.From.Valid() || !m.To.Valid() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}
