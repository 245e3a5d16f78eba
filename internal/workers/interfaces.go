// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks until the worker finishes or ctx is canceled; the aggregate
// gives every worker its own goroutine.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    // background processing until ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts a plain function to the [Worker] interface.
type WorkerFunc func(ctx context.Context)

// Run implements [Worker].
func (f WorkerFunc) Run(ctx context.Context) { f(ctx) }
