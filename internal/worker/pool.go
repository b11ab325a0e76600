// Package worker provides a worker pool that counts move-tree subtrees in
// parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Job is one root move to expand: the position after the move has been
// played and the depth left below it.
type Job struct {
	Position chess.Position
	Move     chess.Move
	Depth    int
	Index    int // position of the move in the root move list
}

// Result is the outcome of a Job.
type Result struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Error error // set when the job could not finish; Nodes is then zero
}

// JobFunc counts the nodes for one job.
type JobFunc func(job Job) Result

// Pool runs jobs on a fixed number of goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	results    chan Result
	run        JobFunc
	wg         sync.WaitGroup
	stopped    atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the job and result channel capacity.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with numWorkers goroutines and channels holding
// bufferSize entries. Values below one fall back to the defaults.
func NewPool(numWorkers, bufferSize int, run JobFunc) *Pool {
	return NewPoolWithOptions(run, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool from functional options. The default is
// one worker and a buffer of 64, enough for every root move of most positions.
func NewPoolWithOptions(run JobFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 64,
		run:        run,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		if p.IsStopped() {
			continue
		}
		p.results <- p.run(job)
	}
}

// Submit queues a job, blocking while the job channel is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// TrySubmit queues a job without blocking. It returns false if the channel
// is full or the pool has been stopped.
func (p *Pool) TrySubmit(job Job) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop makes the workers skip any job not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close stops accepting jobs, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished jobs.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
