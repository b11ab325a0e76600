package chess

import (
	"testing"
)

func TestNewEmptyPosition(t *testing.T) {
	p := NewEmptyPosition()

	t.Run("initial state", func(t *testing.T) {
		if p.ToMove != White {
			t.Errorf("ToMove = %v; want White", p.ToMove)
		}
		if p.FullmoveNumber != 1 {
			t.Errorf("FullmoveNumber = %d; want 1", p.FullmoveNumber)
		}
		if p.EnPassant != NoSquare {
			t.Errorf("EnPassant = %v; want NoSquare", p.EnPassant)
		}
		if p.Castling != NoCastling {
			t.Errorf("Castling = %v; want none", p.Castling)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for sq := Square(0); sq < NumSquares; sq++ {
			if got := p.Get(sq); got != Empty {
				t.Errorf("Get(%v) = %v; want Empty", sq, got)
			}
		}
	})
}

func TestSquareCoordinates(t *testing.T) {
	tests := []struct {
		sq   Square
		name string
		file int
		row  int
		rank int
	}{
		{A8, "a8", 0, 0, 8},
		{H8, "h8", 7, 0, 8},
		{A1, "a1", 0, 7, 1},
		{H1, "h1", 7, 7, 1},
		{E1, "e1", 4, 7, 1},
		{Square(36), "e4", 4, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sq.String(); got != tt.name {
				t.Errorf("String() = %q; want %q", got, tt.name)
			}
			if got := tt.sq.File(); got != tt.file {
				t.Errorf("File() = %d; want %d", got, tt.file)
			}
			if got := tt.sq.Row(); got != tt.row {
				t.Errorf("Row() = %d; want %d", got, tt.row)
			}
			if got := tt.sq.Rank(); got != tt.rank {
				t.Errorf("Rank() = %d; want %d", got, tt.rank)
			}
			parsed, err := ParseSquare(tt.name)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.name, err)
			}
			if parsed != tt.sq {
				t.Errorf("ParseSquare(%q) = %d; want %d", tt.name, parsed, tt.sq)
			}
		})
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, text := range []string{"", "e", "e9", "i1", "e44", "-"} {
		if _, err := ParseSquare(text); err == nil {
			t.Errorf("ParseSquare(%q) succeeded; want error", text)
		}
	}
}

func TestSquareColour(t *testing.T) {
	if !H1.IsLight() {
		t.Error("h1 should be light")
	}
	if A1.IsLight() {
		t.Error("a1 should be dark")
	}
	if !A8.IsLight() {
		t.Error("a8 should be light")
	}
}

func TestPieceEncoding(t *testing.T) {
	kinds := []Kind{Pawn, Knight, Bishop, Rook, Queen, King}
	for _, colour := range []Colour{White, Black} {
		for _, kind := range kinds {
			p := MakePiece(colour, kind)
			if p.Kind() != kind {
				t.Errorf("MakePiece(%v, %v).Kind() = %v", colour, kind, p.Kind())
			}
			if p.Colour() != colour {
				t.Errorf("MakePiece(%v, %v).Colour() = %v", colour, kind, p.Colour())
			}
			back, ok := PieceFromLetter(p.Letter())
			if !ok || back != p {
				t.Errorf("PieceFromLetter(%c) = %v, %v; want %v", p.Letter(), back, ok, p)
			}
		}
	}
	if Empty.Kind() != NoKind {
		t.Errorf("Empty.Kind() = %v; want NoKind", Empty.Kind())
	}
	if MakePiece(White, NoKind) != Empty {
		t.Error("MakePiece with NoKind should be Empty")
	}
	if _, ok := PieceFromLetter('x'); ok {
		t.Error("PieceFromLetter('x') should fail")
	}
}

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{AllCastling, "KQkq"},
		{NoCastling, "-"},
		{WhiteKingside | BlackQueenside, "Kq"},
		{AllCastling.Without(WhiteKingside | WhiteQueenside), "kq"},
	}
	for _, tt := range tests {
		if got := tt.rights.String(); got != tt.want {
			t.Errorf("CastlingRights(%d).String() = %q; want %q", tt.rights, got, tt.want)
		}
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{From: Square(52), To: Square(36), Piece: W(Pawn)}, "e2e4"},
		{Move{From: Square(12), To: E8, Piece: W(Pawn), Kind: PromotionMove, Promotion: Queen}, "e7e8q"},
		{Move{From: E1, To: G1, Piece: W(King), Kind: CastleMove}, "e1g1"},
		{Move{From: NoSquare, To: NoSquare}, "0000"},
	}
	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}

func TestPositionCopyIsIndependent(t *testing.T) {
	p := NewEmptyPosition()
	p.Set(E1, W(King))
	q := p.Copy()
	q.Set(E1, Empty)
	if p.Get(E1) != W(King) {
		t.Error("modifying the copy changed the original")
	}
	if p.Board.FindKing(White) != E1 {
		t.Errorf("FindKing(White) = %v; want e1", p.Board.FindKing(White))
	}
	if q.Board.FindKing(White) != NoSquare {
		t.Errorf("FindKing(White) on copy = %v; want NoSquare", q.Board.FindKing(White))
	}
}
