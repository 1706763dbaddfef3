package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withRetry] whether a failed card query may be
// attempted again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for the server's
// flash_cards database.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify retries transient failures: lost connections (class 08), rolled
// back transactions such as deadlocks (class 40), a server that is starting
// or shutting down (class 57, except a cancelled query) and connection slot
// exhaustion. Constraint violations on flash_cards, bad data and schema
// errors are final.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	code := pgErr.Code
	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.TooManyConnections:
		return Retryable
	case pgerrcode.IsOperatorIntervention(code):
		if code == pgerrcode.QueryCanceled {
			return NonRetryable
		}
		return Retryable
	default:
		return NonRetryable
	}
}
