package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// DefaultSearchDepth is the search depth used when none is configured.
const DefaultSearchDepth = 3

// DefaultTableSize is the default number of transposition table entries.
const DefaultTableSize = 1 << 16

// SearchConfig holds the limits of a move search. A search stops at
// whichever limit is reached first; zero values disable NodeLimit and
// MoveTime.
type SearchConfig struct {
	// Depth is the deepest iteration, in plies
	Depth int

	// NodeLimit caps the number of positions visited (0 = no limit)
	NodeLimit uint64

	// MoveTime caps the wall time of a search (0 = no limit)
	MoveTime time.Duration

	// TableSize is the number of transposition table entries
	TableSize int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:     DefaultSearchDepth,
		TableSize: DefaultTableSize,
	}
}

// Validate checks that the search limits are usable.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 {
		return fmt.Errorf("search depth %d < 1: %w", s.Depth, errors.ErrInvalidConfig)
	}
	if s.MoveTime < 0 {
		return fmt.Errorf("negative move time %s: %w", s.MoveTime, errors.ErrInvalidConfig)
	}
	if s.TableSize < 1 {
		return fmt.Errorf("table size %d < 1: %w", s.TableSize, errors.ErrInvalidConfig)
	}
	return nil
}
