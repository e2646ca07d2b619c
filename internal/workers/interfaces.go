// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines and keep
// running until Stop is called or ctx is cancelled. Stop blocks until the
// worker has exited.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go run(ctx)
//	}
//
//	func (w *MyWorker) Stop() { w.cancel() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// IntervalJob is a job that runs on a ticker with a caller-chosen interval.
type IntervalJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
