// commands.go - Command implementations
package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/perft"
	"github.com/lgbarn/chessrules-go/internal/search"
)

// run loads the position chosen by the flags and executes command.
func run(ctx context.Context, cfg *config.Config, command string) error {
	h, err := loadGame(cfg, *fenRecord, *moveList)
	if err != nil {
		return err
	}

	out := cfg.OutputFile
	switch command {
	case "", "show":
		return showPosition(out, h)
	case "moves":
		return listMoves(out, h, *square)
	case "perft":
		return runPerft(ctx, cfg, h, false)
	case "divide":
		return runPerft(ctx, cfg, h, true)
	case "search":
		return runSearch(ctx, out, h)
	}
	return fmt.Errorf("unknown command %q", command)
}

// loadGame starts a game from record and plays the space or comma
// separated moves.
func loadGame(cfg *config.Config, record, moves string) (*game.Handle, error) {
	h, err := game.NewGame(record, cfg)
	if err != nil {
		return nil, err
	}
	for _, text := range splitMoves(moves) {
		if _, err := h.MakeMoveText(text); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func splitMoves(moves string) []string {
	return strings.FieldsFunc(moves, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
}

// showPosition prints the board from White's side, then the record and
// the state.
func showPosition(w io.Writer, h *game.Handle) error {
	pos := h.Position()
	for row := 0; row < chess.BoardSize; row++ {
		line := make([]byte, 0, 2*chess.BoardSize)
		for file := 0; file < chess.BoardSize; file++ {
			if file > 0 {
				line = append(line, ' ')
			}
			line = append(line, pos.Board[chess.SquareAt(file, row)].Letter())
		}
		fmt.Fprintf(w, "%d  %s\n", chess.BoardSize-row, line)
	}
	fmt.Fprintf(w, "   a b c d e f g h\n\n")
	fmt.Fprintf(w, "FEN:   %s\n", h.CurrentRecord())
	fmt.Fprintf(w, "Turn:  %s\n", pos.ToMove)
	_, err := fmt.Fprintf(w, "State: %s\n", h.State())
	return err
}

// listMoves prints the legal moves in alphabetical order, optionally only
// those of the piece on one square.
func listMoves(w io.Writer, h *game.Handle, from string) error {
	moves := h.AllLegalMoves()
	if from != "" {
		sq, err := chess.ParseSquare(from)
		if err != nil {
			return err
		}
		moves = h.LegalMoves(sq)
	}

	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	slices.Sort(names)

	if len(names) > 0 {
		fmt.Fprintln(w, strings.Join(names, " "))
	}
	_, err := fmt.Fprintf(w, "%d moves\n", len(names))
	return err
}

// runPerft counts the move tree to the configured depth, printing the per
// move counts for divide and any disagreement with the reference.
func runPerft(ctx context.Context, cfg *config.Config, h *game.Handle, divide bool) error {
	w := cfg.OutputFile
	driver := perft.NewDriver(cfg)
	report, err := driver.Divide(ctx, h.Position(), cfg.Search.Depth)
	if err != nil {
		return err
	}

	if divide {
		for _, mc := range report.Moves {
			fmt.Fprintf(w, "%s: %d\n", mc.Move, mc.Nodes)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Nodes: %d\n", report.Nodes)

	if !report.Verified {
		return nil
	}
	for _, m := range report.Mismatches {
		fmt.Fprintf(w, "MISMATCH %s: got %d, reference %d\n", m.Move, m.Got, m.Want)
	}
	if n := len(report.Mismatches); n > 0 {
		return fmt.Errorf("%d root moves disagree with the reference", n)
	}
	fmt.Fprintln(w, "Verified against reference")
	return nil
}

// runSearch prints the best move in the form
// "bestmove e2e4 score 35 depth 3 nodes 1234".
func runSearch(ctx context.Context, w io.Writer, h *game.Handle) error {
	result, err := h.BestMove(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "bestmove %s score %s depth %d nodes %d\n",
		result.Move, formatScore(result.Score), result.Depth, result.Nodes)
	return err
}

// formatScore renders centipawns, or "mate N" in moves for mate scores.
func formatScore(score int) string {
	plies, ok := search.MateDistance(score)
	if !ok {
		return fmt.Sprintf("cp %d", score)
	}
	if plies > 0 {
		return fmt.Sprintf("mate %d", (plies+1)/2)
	}
	return fmt.Sprintf("mate %d", plies/2)
}
