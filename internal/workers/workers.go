package workers

import (
	"context"
	"sync"
)

// Workers runs a set of background workers, one goroutine each, and lets the
// caller wait for all of them to finish after canceling their context.
type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// New builds a [Workers] aggregate from the given workers.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker on its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(wk Worker) {
			defer w.wg.Done()
			wk.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
