package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/logger"
)

// Workers runs a fixed set of workers in their own goroutines.
type Workers struct {
	workers []Worker

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWorkers groups workers. Nothing runs until Start.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewClientWorkers builds the client's workers from cfg.
func NewClientWorkers(cfg config.ClientWorkers, cards CardLoader, logger *logger.Logger) *Workers {
	return NewWorkers(NewRefreshWorker(cards, cfg.RefreshInterval, logger))
}

// Start stops any previous run and launches every worker under a context
// derived from ctx.
func (w *Workers) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(runCtx)
		}()
	}
}

// Stop cancels the running workers and waits for them to return. Calling Stop
// when nothing runs is a no-op.
func (w *Workers) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
