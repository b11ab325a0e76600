// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the FEN side-to-move letter for the colour.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Kind is the colourless type of a piece.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter for a piece kind.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotionChoice reports whether k is a legal piece to promote a pawn to.
func (k Kind) IsPromotionChoice() bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

// PromotionChoices lists the pieces a pawn may promote to, in search order.
var PromotionChoices = [4]Kind{Queen, Rook, Bishop, Knight}

// KindFromLetter converts a piece letter of either case to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// Piece is a coloured piece or the empty square marker. White pieces are
// numbered 1-6 and black pieces 7-12, so colour is always derived from the
// value and never stored separately.
type Piece uint8

const (
	Empty Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// NumPieceValues is the number of distinct Piece values including Empty.
const NumPieceValues = 13

// MakePiece combines a colour and a kind into a coloured piece.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind == NoKind {
		return Empty
	}
	if colour == White {
		return Piece(kind)
	}
	return Piece(int(kind) + 6)
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// Kind returns the colourless type of the piece.
func (p Piece) Kind() Kind {
	if p == Empty || p > BlackKing {
		return NoKind
	}
	return Kind((int(p)-1)%6 + 1)
}

// Colour returns the side that owns the piece. Empty reports White; callers
// check IsEmpty first.
func (p Piece) Colour() Colour {
	if p >= BlackPawn {
		return Black
	}
	return White
}

// IsEmpty reports whether p is the empty square marker.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p != Empty && p.Colour() == colour && p.Kind() == kind
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black, '.' for an empty square.
func (p Piece) Letter() byte {
	if p == Empty {
		return '.'
	}
	letter := p.Kind().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p == Empty {
		return "Empty"
	}
	return p.Colour().String() + " " + p.Kind().String()
}

// PieceFromLetter converts a FEN piece letter to a coloured piece.
func PieceFromLetter(c byte) (Piece, bool) {
	kind := KindFromLetter(c)
	if kind == NoKind {
		return Empty, false
	}
	if c >= 'a' && c <= 'z' {
		return MakePiece(Black, kind), true
	}
	return MakePiece(White, kind), true
}

// MoveKind categorizes the special handling a move needs.
type MoveKind int

const (
	NormalMove MoveKind = iota
	CastleMove
	EnPassantMove
	PromotionMove
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case NormalMove:
		return "Normal"
	case CastleMove:
		return "Castle"
	case EnPassantMove:
		return "EnPassant"
	case PromotionMove:
		return "Promotion"
	}
	return "Unknown"
}

// GameState is the classification of a position for the side to move.
type GameState int

const (
	Normal GameState = iota
	Check
	Checkmate
	Stalemate
	Draw
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case Draw:
		return "Draw"
	}
	return "Unknown"
}

// IsTerminal reports whether the state ends the game.
func (s GameState) IsTerminal() bool {
	return s == Checkmate || s == Stalemate || s == Draw
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// HashCode is the type for position hashing.
type HashCode uint64
