// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-flashcards/internal/logger"
)

// RefreshWorker reloads the card collection on a fixed interval so changes
// made by other clients of the same card service show up.
type RefreshWorker struct {
	cards    CardLoader
	interval time.Duration
	logger   *logger.Logger
}

// NewRefreshWorker creates a worker calling cards.Load every interval. A
// non-positive interval disables it.
func NewRefreshWorker(cards CardLoader, interval time.Duration, logger *logger.Logger) *RefreshWorker {
	return &RefreshWorker{cards: cards, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled. Failed loads are logged and the next tick
// tries again; the store keeps its previous collection meanwhile.
func (r *RefreshWorker) Run(ctx context.Context) {
	if r.interval <= 0 {
		r.logger.Debug().Str("func", "RefreshWorker.Run").Msg("card refresh disabled")
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.cards.Load(ctx); err != nil && ctx.Err() == nil {
				r.logger.Warn().Err(err).Str("func", "RefreshWorker.Run").Msg("card refresh failed")
			}
		}
	}
}
