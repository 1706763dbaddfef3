package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-flashcards/internal/logger"
)

const (
	// maxQueryRetries is the number of extra attempts after the first failure.
	maxQueryRetries = 2
	queryRetryBase  = 50 * time.Millisecond
)

// withRetry runs fn and repeats it while the connection's classifier reports
// the failure as [Retryable]. Non-retryable errors are returned unchanged.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxQueryRetries, retry.NewExponential(queryRetryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "*DB.withRetry").Msg("retryable database error")
			return retry.RetryableError(err)
		}

		return err
	})
}
