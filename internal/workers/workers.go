package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Workers runs a fixed set of workers side by side.
type Workers struct {
	workers []Worker
}

// NewWorkers groups workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Len returns the number of grouped workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and waits for all of them.
// The first failure cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		eg.Go(func() error {
			return worker.Run(egCtx)
		})
	}

	return eg.Wait()
}
