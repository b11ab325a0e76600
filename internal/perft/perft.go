// Package perft counts the leaves of the legal move tree in parallel and
// checks the counts against an independent move generator.
package perft

import (
	"context"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// MoveCount is the leaf count below one root move.
type MoveCount struct {
	Move  string
	Nodes uint64
}

// Report is the outcome of a divide.
type Report struct {
	FEN   string
	Depth int

	// Moves holds one entry per root move, in generation order.
	Moves []MoveCount
	Nodes uint64

	Elapsed   time.Duration
	CacheHits int

	// Set when the counts were checked against the reference generator.
	Verified   bool
	Mismatches []Mismatch
}

// Driver runs perft over a worker pool. Drivers with a cache keep it across
// runs, so repeated runs on related positions get cheaper.
type Driver struct {
	cfg   *config.Config
	cache *hashing.ThreadSafeNodeCache
}

// NewDriver creates a driver for the given configuration.
func NewDriver(cfg *config.Config) *Driver {
	d := &Driver{cfg: cfg}
	if cfg.Perft.CacheSize > 0 {
		d.cache = hashing.NewThreadSafeNodeCache(cfg.Perft.CacheSize)
	}
	return d
}

// Perft returns the number of leaves of the move tree of the given depth.
func (d *Driver) Perft(ctx context.Context, pos chess.Position, depth int) (uint64, error) {
	report, err := d.Divide(ctx, pos, depth)
	if err != nil {
		return 0, err
	}
	return report.Nodes, nil
}

// Divide counts the leaves below each root move, one pool job per move.
func (d *Driver) Divide(ctx context.Context, pos chess.Position, depth int) (*Report, error) {
	start := time.Now()
	report := &Report{FEN: engine.PositionToFEN(&pos), Depth: depth}
	if depth <= 0 {
		report.Nodes = 1
		return report, nil
	}

	root := engine.ExpandPromotions(engine.GenerateMoves(&pos, pos.ToMove))
	report.Moves = make([]MoveCount, len(root))

	run := func(job worker.Job) worker.Result {
		child := job.Position
		nodes := d.count(ctx, &child, job.Depth)
		if err := ctx.Err(); err != nil {
			return worker.Result{Move: job.Move, Index: job.Index, Error: errors.Wrapf(err, "move %s", job.Move)}
		}
		return worker.Result{Move: job.Move, Index: job.Index, Nodes: nodes}
	}
	pool := worker.NewPoolWithOptions(run,
		worker.WithWorkers(d.cfg.Perft.Workers),
		worker.WithBufferSize(len(root)+1))
	pool.Start()

	for i, m := range root {
		child := pos
		engine.MakeMove(&child, m)
		pool.Submit(worker.Job{Position: child, Move: m, Depth: depth - 1, Index: i})
	}
	go pool.Close()

	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			pool.Stop()
			continue
		}
		report.Moves[result.Index] = MoveCount{Move: result.Move.String(), Nodes: result.Nodes}
		report.Nodes += result.Nodes
	}
	if firstErr != nil {
		return nil, errors.Wrapf(firstErr, "perft depth %d", depth)
	}

	for _, mc := range report.Moves {
		d.cfg.Logf(2, "%s: %d", mc.Move, mc.Nodes)
	}

	if d.cfg.Perft.Verify {
		want, err := Reference(report.FEN, depth)
		if err != nil {
			return nil, err
		}
		report.Verified = true
		report.Mismatches = Compare(report.Moves, want)
	}

	if d.cache != nil {
		report.CacheHits = d.cache.HitCount()
	}
	report.Elapsed = time.Since(start)
	d.cfg.Logf(1, "perft %d: %d nodes in %s", depth, report.Nodes, report.Elapsed)
	return report, nil
}

// count walks the tree below pos in place. Subtrees of depth two or more go
// through the cache when there is one. A cancelled context makes it return
// early with a partial count.
func (d *Driver) count(ctx context.Context, pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	var key chess.HashCode
	cached := d.cache != nil && depth >= 2
	if cached {
		key = hashing.Key(pos)
		if n, ok := d.cache.Lookup(key, depth); ok {
			return n
		}
	}

	moves := engine.ExpandPromotions(engine.GenerateMoves(pos, pos.ToMove))
	if depth == 1 {
		return uint64(len(moves))
	}
	if ctx.Err() != nil {
		return 0
	}

	var nodes uint64
	for _, m := range moves {
		done := engine.MakeMove(pos, m)
		nodes += d.count(ctx, pos, depth-1)
		engine.UnmakeMove(pos, done)
	}

	if cached && ctx.Err() == nil {
		d.cache.Add(key, depth, nodes)
	}
	return nodes
}
