// Package worker replays independent games in parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/dnchess-go/internal/game"
)

// WorkItem is one game score to replay.
type WorkItem struct {
	Name  string   // Where the score came from, e.g. a file name
	Moves []string // Move texts in playing order
	Index int      // Position of the item in the batch
}

// ProcessResult is the outcome of replaying one score. Game holds the
// position reached; on error it is the position before the failing move.
type ProcessResult struct {
	Name     string
	Index    int
	Game     *game.Game
	Warnings []string // Claim warnings, prefixed with the ply
	Error    error
}

// ProcessFunc replays one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed number of
// goroutines. Each item is handled by exactly one goroutine and every
// submitted item yields exactly one result.
type Pool struct {
	workers int
	process ProcessFunc
	jobs    chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup

	replayed atomic.Int64
	failed   atomic.Int64
}

// NewPool creates a pool of workers goroutines whose queues hold up to
// queue items. Values below 1 are raised to 1.
func NewPool(workers, queue int, process ProcessFunc) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queue < 1 {
		queue = 1
	}
	return &Pool{
		workers: workers,
		process: process,
		jobs:    make(chan WorkItem, queue),
		results: make(chan ProcessResult, queue),
	}
}

// Start launches the workers. Once ctx is done, remaining items are not
// replayed; their results carry ctx.Err().
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(ctx)
	}
}

func (p *Pool) run(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.jobs {
		var res ProcessResult
		if err := ctx.Err(); err != nil {
			res = ProcessResult{Name: item.Name, Index: item.Index, Error: err}
		} else {
			res = p.process(item)
		}

		if res.Error != nil {
			p.failed.Add(1)
		} else {
			p.replayed.Add(1)
		}
		p.results <- res
	}
}

// Submit queues an item, blocking while the queue is full. It returns
// ctx.Err() if ctx is done first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case p.jobs <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting items, waits for the workers to finish and then
// closes the result channel. Results must be drained concurrently.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results are delivered on, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Counts reports how many items have been replayed cleanly and how many
// failed so far.
func (p *Pool) Counts() (replayed, failed int) {
	return int(p.replayed.Load()), int(p.failed.Load())
}
