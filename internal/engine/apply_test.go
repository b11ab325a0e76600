package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// applyText plays a move given in long algebraic notation and fails the test
// if it is rejected.
func applyText(t *testing.T, pos chess.Position, text string) (chess.Position, chess.Move) {
	t.Helper()
	m, err := ParseMove(&pos, text)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", text, err)
	}
	next, done, err := ApplyMove(pos, m, m.Promotion)
	if err != nil {
		t.Fatalf("ApplyMove(%q) error: %v", text, err)
	}
	return next, done
}

func TestApplyMove_ResultingFEN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{
			name: "double push sets en passant square",
			fen:  InitialFEN,
			move: "e2e4",
			want: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name: "black reply increments full-move number",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			move: "g8f6",
			want: "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2",
		},
		{
			name: "en passant removes the passed pawn",
			fen:  testutil.EnPassantFEN,
			move: "e5f6",
			want: "rnbqkbnr/ppp1p1pp/5P2/3p4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name: "kingside castling moves the rook",
			fen:  testutil.CastlingFEN,
			move: "e1g1",
			want: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 1 1",
		},
		{
			name: "queenside castling moves the rook",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 3 7",
			move: "e8c8",
			want: "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQ - 4 8",
		},
		{
			name: "rook move drops one right",
			fen:  testutil.CastlingFEN,
			move: "h1g1",
			want: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K1R1 b Qkq - 1 1",
		},
		{
			name: "capturing a rook at home drops the opponent's right",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move: "a1a8",
			want: "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name: "promotion with capture",
			fen:  "1r2k3/P7/8/8/8/8/8/4K3 w - - 5 40",
			move: "a7b8n",
			want: "1N2k3/8/8/8/8/8/8/4K3 b - - 0 40",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := applyText(t, MustPositionFromFEN(tt.fen), tt.move)
			testutil.AssertEqual(t, PositionToFEN(&next), tt.want)
		})
	}
}

func TestApplyMove_Promotion(t *testing.T) {
	pos := MustPositionFromFEN(testutil.PromotionFEN)
	from := LegalMovesFrom(&pos, mustSquare("b7"))
	testutil.AssertEqual(t, len(from), 1, "one unresolved promotion")
	m := from[0]
	testutil.AssertEqual(t, m.Kind, chess.PromotionMove)
	testutil.AssertEqual(t, m.Promotion, chess.NoKind)
	testutil.AssertEqual(t, testutil.MoveStrings(ExpandPromotions(from)), []string{"b7b8q", "b7b8r", "b7b8b", "b7b8n"})

	for _, kind := range chess.PromotionChoices {
		next, done, err := ApplyMove(pos, m, kind)
		testutil.AssertNoError(t, err, "promotion to %s", kind)
		testutil.AssertEqual(t, next.Get(chess.B8), chess.W(kind))
		testutil.AssertEqual(t, done.Promotion, kind)
	}

	_, _, err := ApplyMove(pos, m, chess.King)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidPromotion)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)

	_, _, err = ApplyMove(pos, m, chess.NoKind)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidPromotion, "promotion without a piece")
}

func TestApplyMove_EnPassantOnlyOnTheNextMove(t *testing.T) {
	pos := MustPositionFromFEN("4k3/p2p4/8/4P3/8/8/8/4K1N1 b - - 0 1")
	pos, _ = applyText(t, pos, "d7d5")

	captured, done := applyText(t, pos, "e5d6")
	testutil.AssertEqual(t, done.Kind, chess.EnPassantMove)
	testutil.AssertEqual(t, captured.Get(mustSquare("d5")), chess.Empty)
	testutil.AssertEqual(t, captured.Get(mustSquare("d6")), chess.W(chess.Pawn))

	pos, _ = applyText(t, pos, "g1f3")
	pos, _ = applyText(t, pos, "a7a6")
	_, err := ParseMove(&pos, "e5d6")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)

	late := chess.Move{From: mustSquare("e5"), To: mustSquare("d6"), Piece: chess.W(chess.Pawn)}
	got, _, err := ApplyMove(pos, late, chess.NoKind)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertEqual(t, got, pos, "position must be unchanged")
}

func TestApplyMove_Rejections(t *testing.T) {
	start := NewInitialPosition()
	tests := []struct {
		name    string
		move    chess.Move
		promo   chess.Kind
		wantErr error
	}{
		{
			name:    "wrong side to move",
			move:    chess.Move{From: mustSquare("e7"), To: mustSquare("e5"), Piece: chess.B(chess.Pawn)},
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "origin equals destination",
			move:    chess.Move{From: mustSquare("e2"), To: mustSquare("e2"), Piece: chess.W(chess.Pawn)},
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "piece not on origin",
			move:    chess.Move{From: mustSquare("e2"), To: mustSquare("e4"), Piece: chess.W(chess.Knight)},
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "geometry violation",
			move:    chess.Move{From: mustSquare("e2"), To: mustSquare("e5"), Piece: chess.W(chess.Pawn)},
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "off the board",
			move:    chess.Move{From: chess.Square(64), To: mustSquare("e4"), Piece: chess.W(chess.Pawn)},
			wantErr: errors.ErrInvalidSquare,
		},
		{
			name:    "promotion piece on an ordinary move",
			move:    chess.Move{From: mustSquare("e2"), To: mustSquare("e4"), Piece: chess.W(chess.Pawn)},
			promo:   chess.Queen,
			wantErr: errors.ErrInvalidPromotion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := ApplyMove(start, tt.move, tt.promo)
			testutil.AssertErrorIs(t, err, tt.wantErr)
			testutil.AssertEqual(t, got, start, "position must be unchanged")
		})
	}
}

func TestApplyMove_IllegalBecauseOfCheck(t *testing.T) {
	// The knight on d2 is pinned against the king by the bishop on a5.
	pos := MustPositionFromFEN("4k3/8/8/b7/8/8/3N4/4K3 w - - 0 1")
	_, err := ParseMove(&pos, "d2f3")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

func TestMakeUnmake_RestoresPosition(t *testing.T) {
	for _, tc := range testutil.PerftCases {
		t.Run(tc.Name, func(t *testing.T) {
			pos := MustPositionFromFEN(tc.FEN)
			for _, m := range ExpandPromotions(GenerateMoves(&pos, pos.ToMove)) {
				before := pos
				done := MakeMove(&pos, m)
				UnmakeMove(&pos, done)
				testutil.AssertEqual(t, pos, before, "make/unmake %s", m)
				pos = before
			}
		})
	}
}

func TestUnapply_InvertsApplyMove(t *testing.T) {
	tests := []struct {
		fen  string
		move string
	}{
		{InitialFEN, "g1f3"},
		{testutil.EnPassantFEN, "e5f6"},
		{testutil.CastlingFEN, "e1c1"},
		{testutil.KiwipeteFEN, "e2a6"},
		{"1r2k3/P7/8/8/8/8/8/4K3 w - - 5 40", "a7b8q"},
	}

	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			pos := MustPositionFromFEN(tt.fen)
			next, done := applyText(t, pos, tt.move)
			testutil.AssertEqual(t, Unapply(next, done), pos)
			testutil.AssertEqual(t, PositionToFEN(&pos), tt.fen)
		})
	}
}

func TestParseMove(t *testing.T) {
	pos := NewInitialPosition()

	m, err := ParseMove(&pos, "g1f3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Piece, chess.W(chess.Knight))
	testutil.AssertEqual(t, m.Kind, chess.NormalMove)

	for _, text := range []string{"", "e2", "e2e4qq", "i2e4", "e2e9"} {
		_, err := ParseMove(&pos, text)
		testutil.AssertError(t, err, "ParseMove(%q)", text)
	}

	_, err = ParseMove(&pos, "e2e4k")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidPromotion)
}
