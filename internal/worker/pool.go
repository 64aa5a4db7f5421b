// Package worker runs a function over many inputs with bounded concurrency.
package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Task represents a unit of work to be processed by the pool.
type Task[T any, R any] struct {
	Input  T
	Result R
	Err    error
	Done   bool // false when the context was cancelled before the task ran
}

// ProcessFunc is the function signature for processing a single task.
type ProcessFunc[T any, R any] func(ctx context.Context, input T) (R, error)

// Pool is a generic worker pool with configurable concurrency.
type Pool[T any, R any] struct {
	workers int
	process ProcessFunc[T, R]
	logger  zerolog.Logger
}

// NewPool creates a new worker pool.
func NewPool[T any, R any](workers int, fn ProcessFunc[T, R]) *Pool[T, R] {
	if workers < 1 {
		workers = 1
	}
	return &Pool[T, R]{
		workers: workers,
		process: fn,
		logger:  zerolog.Nop(),
	}
}

// WithLogger sets the logger used to report failed tasks.
func (p *Pool[T, R]) WithLogger(logger zerolog.Logger) *Pool[T, R] {
	p.logger = logger
	return p
}

// Workers returns the concurrency of the pool.
func (p *Pool[T, R]) Workers() int {
	return p.workers
}

// Execute runs all inputs through the worker pool and returns one task per
// input, in input order. Inputs not yet started when ctx is cancelled are
// returned with Done unset.
func (p *Pool[T, R]) Execute(ctx context.Context, inputs []T) []Task[T, R] {
	results := make([]Task[T, R], len(inputs))
	for i := range inputs {
		results[i].Input = inputs[i]
	}
	inputCh := make(chan int, len(inputs))

	workers := p.workers
	if workers > len(inputs) {
		workers = len(inputs)
	}

	var wg sync.WaitGroup

	// Start workers.
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-inputCh:
					if !ok {
						return
					}
					if ctx.Err() != nil {
						return
					}
					result, err := p.process(ctx, inputs[idx])
					results[idx].Result = result
					results[idx].Err = err
					results[idx].Done = true
					if err != nil {
						p.logger.Error().Err(err).Int("worker", workerID).Int("index", idx).Msg("Task failed")
					}
				}
			}
		}(w)
	}

	// Send inputs.
send:
	for i := range inputs {
		select {
		case <-ctx.Done():
			break send
		case inputCh <- i:
		}
	}
	close(inputCh)

	// Wait for all workers to finish.
	wg.Wait()
	return results
}

// Batch splits items into consecutive batches of at most batchSize.
func Batch[T any](items []T, batchSize int) [][]T {
	if batchSize <= 0 {
		batchSize = 1
	}
	var batches [][]T
	for i := 0; i < len(items); i += batchSize {
		end := i + batchSize
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[i:end])
	}
	return batches
}
