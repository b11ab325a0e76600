package chess

import "fmt"

// Square is a board index in [0,64), row-major from a8 (0) to h1 (63).
// File is sq%8 and row is sq/8, so row 0 is the eighth rank.
type Square int

// NoSquare marks an absent square, such as no en passant target.
const NoSquare Square = -1

// Named squares used by castling and tests.
const (
	A8 Square = 0
	B8 Square = 1
	C8 Square = 2
	D8 Square = 3
	E8 Square = 4
	F8 Square = 5
	G8 Square = 6
	H8 Square = 7
	A1 Square = 56
	B1 Square = 57
	C1 Square = 58
	D1 Square = 59
	E1 Square = 60
	F1 Square = 61
	G1 Square = 62
	H1 Square = 63
)

// SquareAt returns the square for a file (0-7, a-h) and row (0-7, rank 8 down to rank 1).
func SquareAt(file, row int) Square {
	return Square(row*BoardSize + file)
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// File returns the file index, 0 for the a-file.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Row returns the row index, 0 for the eighth rank.
func (s Square) Row() int {
	return int(s) / BoardSize
}

// Rank returns the conventional rank number, 1-8.
func (s Square) Rank() int {
	return BoardSize - s.Row()
}

// IsLight reports whether s is a light square (h1 and a8 are light).
func (s Square) IsLight() bool {
	return (s.File()+s.Row())%2 == 0
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('0' + s.Rank())})
}

// ParseSquare converts algebraic notation such as "e4" to a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("square %q: want file and rank", text)
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("square %q: out of range", text)
	}
	return SquareAt(int(file-'a'), BoardSize-int(rank-'0')), nil
}

// Board is the piece placement, one entry per square.
type Board [NumSquares]Piece

// FindKing returns the square of the given colour's king, or NoSquare.
func (b *Board) FindKing(colour Colour) Square {
	king := MakePiece(colour, King)
	for sq := Square(0); sq < NumSquares; sq++ {
		if b[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Count returns the number of pieces of the given colour and kind.
func (b *Board) Count(colour Colour, kind Kind) int {
	piece := MakePiece(colour, kind)
	n := 0
	for _, p := range b {
		if p == piece {
			n++
		}
	}
	return n
}

// CastlingRights is the set of castling options still available.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every right in r is held.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Without returns c with the rights in r removed.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String renders the rights in FEN order "KQkq", or "-" when none remain.
func (c CastlingRights) String() string {
	if c&AllCastling == 0 {
		return "-"
	}
	buf := make([]byte, 0, 4)
	if c.Has(WhiteKingside) {
		buf = append(buf, 'K')
	}
	if c.Has(WhiteQueenside) {
		buf = append(buf, 'Q')
	}
	if c.Has(BlackKingside) {
		buf = append(buf, 'k')
	}
	if c.Has(BlackQueenside) {
		buf = append(buf, 'q')
	}
	return string(buf)
}

// CastlingFor returns the kingside and queenside rights for a colour.
func CastlingFor(colour Colour) (kingside, queenside CastlingRights) {
	if colour == White {
		return WhiteKingside, WhiteQueenside
	}
	return BlackKingside, BlackQueenside
}

// Position is the complete game state: placement, side to move, castling
// rights, en passant target and the two move counters. It is a plain value;
// assigning it copies it.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// The square a pawn passed over on the previous ply, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number, starting at 1 and incremented after Black moves.
	FullmoveNumber int
}

// NewEmptyPosition returns a position with no pieces, White to move.
func NewEmptyPosition() Position {
	return Position{
		ToMove:         White,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
}

// Get returns the piece on a square.
func (p *Position) Get(sq Square) Piece {
	return p.Board[sq]
}

// Set places a piece on a square.
func (p *Position) Set(sq Square, piece Piece) {
	p.Board[sq] = piece
}

// Copy returns an independent copy of the position.
func (p *Position) Copy() Position {
	return *p
}
