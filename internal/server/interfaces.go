package server

import "context"

type Server interface {
	// RunServer serves until ctx is cancelled or a termination signal
	// arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	Shutdown(ctx context.Context) error
}
