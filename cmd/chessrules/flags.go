// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position selection
	fenRecord = flag.String("fen", "", "Start from this FEN record (default: initial position)")
	moveList  = flag.String("moves", "", "Moves to play first, in long algebraic notation (e.g. 'e2e4 e7e5')")
	square    = flag.String("square", "", "Only list moves of the piece on this square (moves command)")

	// Search and perft limits
	depth     = flag.Int("depth", 0, "Search or perft depth in plies (0 = default)")
	nodeLimit = flag.Uint64("nodes", 0, "Stop the search after N nodes (0 = no limit)")
	moveTime  = flag.Duration("movetime", 0, "Stop the search after this long (e.g. 2s; 0 = no limit)")
	tableSize = flag.Int("table", 0, "Transposition table entries (0 = default)")

	// Perft driver
	workers   = flag.Int("workers", 0, "Perft worker goroutines (0 = one per CPU)")
	verify    = flag.Bool("verify", false, "Check perft counts against the reference generator")
	cacheSize = flag.Int("cache", 0, "Shared perft subtree cache entries (0 = no cache)")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Log file (default: stderr)")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 = quiet, 1 = summary, 2 = running commentary")
	quiet      = flag.Bool("s", false, "Silent mode: same as -v 0")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the flag values onto cfg. Zero-valued limits keep the
// configuration defaults.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	applySearchFlags(cfg)
	applyPerftFlags(cfg)
}

func applySearchFlags(cfg *config.Config) {
	if *depth > 0 {
		cfg.Search.Depth = *depth
	}
	cfg.Search.NodeLimit = *nodeLimit
	cfg.Search.MoveTime = *moveTime
	if *tableSize > 0 {
		cfg.Search.TableSize = *tableSize
	}
}

func applyPerftFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
	cfg.Perft.Verify = *verify
	cfg.Perft.CacheSize = *cacheSize
}
