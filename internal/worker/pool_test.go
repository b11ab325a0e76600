package worker

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// noopJobFunc returns a job function that only echoes the job.
func noopJobFunc() JobFunc {
	return func(job Job) Result {
		return Result{Move: job.Move, Index: job.Index}
	}
}

// countingJobFunc returns a job function that increments a counter.
func countingJobFunc(counter *int32) JobFunc {
	return func(job Job) Result {
		atomic.AddInt32(counter, 1)
		return Result{Move: job.Move, Index: job.Index, Nodes: 1}
	}
}

// perftJobFunc counts the subtree below each job with the engine.
func perftJobFunc(job Job) Result {
	pos := job.Position
	return Result{Move: job.Move, Index: job.Index, Nodes: engine.Perft(&pos, job.Depth)}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(4, 10, countingJobFunc(&processed))
	pool.Start()

	const numJobs = 10
	for i := 0; i < numJobs; i++ {
		pool.Submit(Job{Position: engine.NewInitialPosition(), Index: i})
	}

	go pool.Close()

	if got := collectResults(pool); got != numJobs {
		t.Errorf("results = %d; want %d", got, numJobs)
	}
	if got := atomic.LoadInt32(&processed); got != numJobs {
		t.Errorf("processed = %d; want %d", got, numJobs)
	}
}

// TestPoolPerftRootMoves splits a perft over the root moves.
func TestPoolPerftRootMoves(t *testing.T) {
	root := engine.NewInitialPosition()
	moves := engine.ExpandPromotions(engine.GenerateMoves(&root, root.ToMove))

	pool := NewPool(4, len(moves), perftJobFunc)
	pool.Start()
	for i, m := range moves {
		child := root
		engine.MakeMove(&child, m)
		pool.Submit(Job{Position: child, Move: m, Depth: 2, Index: i})
	}
	go pool.Close()

	var total uint64
	seen := make(map[string]bool)
	for result := range pool.Results() {
		total += result.Nodes
		seen[result.Move.String()] = true
		if result.Nodes < 380 || result.Nodes > 600 {
			t.Errorf("%s: nodes = %d; want a depth-2 count", result.Move, result.Nodes)
		}
	}

	if total != 8902 {
		t.Errorf("total = %d; want 8902", total)
	}
	if len(seen) != 20 {
		t.Errorf("distinct moves = %d; want 20", len(seen))
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowJobFunc := func(job Job) Result {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return Result{Index: job.Index}
	}

	pool := NewPool(2, 100, slowJobFunc)
	pool.Start()

	const numJobs = 50
	for i := 0; i < numJobs; i++ {
		pool.Submit(Job{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numJobs {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(2, 10, noopJobFunc())
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

// TestPoolTrySubmit tests non-blocking submission.
func TestPoolTrySubmit(t *testing.T) {
	slowJobFunc := func(job Job) Result {
		time.Sleep(100 * time.Millisecond)
		return Result{}
	}

	pool := NewPool(1, 2, slowJobFunc)
	pool.Start()

	if !pool.TrySubmit(Job{Index: 0}) {
		t.Error("first TrySubmit should succeed")
	}
	if !pool.TrySubmit(Job{Index: 1}) {
		t.Error("second TrySubmit should succeed")
	}

	// The third depends on timing; it must not block or panic.
	pool.TrySubmit(Job{Index: 2})

	pool.Stop()
	if pool.TrySubmit(Job{Index: 3}) {
		t.Error("TrySubmit after Stop should return false")
	}

	go pool.Close()
	collectResults(pool)
}

// TestPoolNumWorkers tests NumWorkers method.
func TestPoolNumWorkers(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"valid workers", 4, 4},
		{"minimum workers", 1, 1},
		{"zero defaults to 1", 0, 1},
		{"negative defaults to 1", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.input, 10, noopJobFunc())
			if got := pool.NumWorkers(); got != tt.expected {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.expected)
			}
		})
	}
}

// TestPoolResultOrder tests that all results arrive whatever their order.
func TestPoolResultOrder(t *testing.T) {
	variableDelayFunc := func(job Job) Result {
		if job.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return Result{Index: job.Index}
	}

	pool := NewPool(4, 20, variableDelayFunc)
	pool.Start()

	const numJobs = 10
	for i := 0; i < numJobs; i++ {
		pool.Submit(Job{Index: i})
	}

	go pool.Close()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}

	for i := 0; i < numJobs; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

// TestPoolResultError tests that a job error reaches the caller.
func TestPoolResultError(t *testing.T) {
	errFailed := errors.New("job failed")
	failingJobFunc := func(job Job) Result {
		if job.Index == 3 {
			return Result{Index: job.Index, Error: errFailed}
		}
		return Result{Index: job.Index, Nodes: 1}
	}

	pool := NewPool(2, 10, failingJobFunc)
	pool.Start()
	for i := 0; i < 6; i++ {
		pool.Submit(Job{Index: i})
	}
	go pool.Close()

	var failed []int
	var nodes uint64
	for result := range pool.Results() {
		if result.Error != nil {
			if result.Error != errFailed {
				t.Errorf("Error = %v; want %v", result.Error, errFailed)
			}
			failed = append(failed, result.Index)
			continue
		}
		nodes += result.Nodes
	}

	if len(failed) != 1 || failed[0] != 3 {
		t.Errorf("failed jobs = %v; want [3]", failed)
	}
	if nodes != 5 {
		t.Errorf("nodes = %d; want 5", nodes)
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(8, 50, countingJobFunc(&counter))
	pool.Start()

	const numJobs = 100
	go func() {
		for i := 0; i < numJobs; i++ {
			pool.Submit(Job{Move: chess.Move{From: chess.E1, To: chess.F1}, Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numJobs {
		t.Errorf("processed = %d; want %d", got, numJobs)
	}
}

// TestNewPoolWithOptions tests the functional options constructor.
func TestNewPoolWithOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 64},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 64},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 64},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithOptions(noopJobFunc(), tt.opts...)
			if pool.NumWorkers() != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", pool.NumWorkers(), tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}
