package perft

import (
	"sort"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Mismatch is a root move whose count differs from the reference. A move
// missing on one side has a zero count there.
type Mismatch struct {
	Move string
	Got  uint64
	Want uint64
}

// Reference divides the position with the dragontoothmg move generator,
// keyed by lower-case long algebraic moves. The FEN is checked and
// normalised by the engine's codec first.
func Reference(fen string, depth int) (map[string]uint64, error) {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}

	board := dragontoothmg.ParseFen(engine.PositionToFEN(&pos))
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts, nil
	}
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		counts[strings.ToLower(m.String())] = referenceCount(&board, depth-1)
		unapply()
	}
	return counts, nil
}

func referenceCount(board *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := board.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := board.Apply(m)
		nodes += referenceCount(board, depth-1)
		unapply()
	}
	return nodes
}

// Compare lists the root moves whose counts disagree, sorted by move.
func Compare(got []MoveCount, want map[string]uint64) []Mismatch {
	gotCounts := make(map[string]uint64, len(got))
	for _, mc := range got {
		gotCounts[mc.Move] = mc.Nodes
	}

	var mismatches []Mismatch
	for move, n := range gotCounts {
		if w, ok := want[move]; !ok || w != n {
			mismatches = append(mismatches, Mismatch{Move: move, Got: n, Want: w})
		}
	}
	for move, w := range want {
		if _, ok := gotCounts[move]; !ok {
			mismatches = append(mismatches, Mismatch{Move: move, Want: w})
		}
	}

	sort.Slice(mismatches, func(i, j int) bool {
		return mismatches[i].Move < mismatches[j].Move
	})
	return mismatches
}
