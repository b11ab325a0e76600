package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestPerft(t *testing.T) {
	for _, tc := range testutil.PerftCases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			for i, want := range tc.Nodes {
				depth := i + 1
				if testing.Short() && want > 10000 {
					t.Skipf("skipping depth %d in short mode", depth)
				}
				pos := MustPositionFromFEN(tc.FEN)
				if got := Perft(&pos, depth); got != want {
					t.Errorf("Perft(depth %d) = %d, want %d", depth, got, want)
				}
				testutil.AssertEqual(t, PositionToFEN(&pos), tc.FEN, "position restored after perft")
			}
		})
	}
}

func TestPerft_DepthZero(t *testing.T) {
	pos := NewInitialPosition()
	testutil.AssertEqual(t, Perft(&pos, 0), uint64(1))
	testutil.AssertEqual(t, len(Divide(&pos, 0)), 0)
}

func TestDivide(t *testing.T) {
	pos := NewInitialPosition()
	counts := Divide(&pos, 2)

	testutil.AssertEqual(t, len(counts), 20)
	var total uint64
	for move, n := range counts {
		testutil.AssertEqual(t, n, uint64(20), "replies to %s", move)
		total += n
	}
	testutil.AssertEqual(t, total, uint64(400))
}

func TestDivide_CountsEachPromotion(t *testing.T) {
	pos := MustPositionFromFEN(testutil.PromotionFEN)
	counts := Divide(&pos, 1)
	for _, move := range []string{"b7b8q", "b7b8r", "b7b8b", "b7b8n"} {
		testutil.AssertEqual(t, counts[move], uint64(1), move)
	}
}
