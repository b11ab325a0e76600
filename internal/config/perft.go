package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PerftConfig holds settings for the parallel perft driver.
type PerftConfig struct {
	// Workers is the number of goroutines walking root moves
	Workers int

	// Verify recomputes every count with the reference generator
	Verify bool

	// CacheSize bounds the shared subtree cache (0 = no cache)
	CacheSize int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft settings are usable.
func (p *PerftConfig) Validate() error {
	if p.Workers < 1 {
		return fmt.Errorf("perft workers %d < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.CacheSize < 0 {
		return fmt.Errorf("negative cache size %d: %w", p.CacheSize, errors.ErrInvalidConfig)
	}
	return nil
}
