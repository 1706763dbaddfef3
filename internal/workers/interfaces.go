// Package workers runs the client's background jobs. A [Worker] blocks in Run
// until its context is cancelled; [Workers] starts a set of them together and
// waits for all of them on Stop.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the worker
// has nothing left to do.
type Worker interface {
	Run(ctx context.Context)
}

// CardLoader reloads the client card collection.
type CardLoader interface {
	Load(ctx context.Context) error
}
