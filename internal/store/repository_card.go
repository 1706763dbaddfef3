package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/models"
)

// cardRepository is the database/sql implementation of [CardRepository].
// The same code serves PostgreSQL and SQLite: queries are built by squirrel
// with the placeholder format of the connection and rely on RETURNING.
//
// All methods obtain a context-scoped logger via [logger.FromContext] so that
// database interactions carry the request trace id.
type cardRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewCardRepository constructs a [CardRepository] backed by the provided
// database connection and logger.
func NewCardRepository(db *DB, logger *logger.Logger) CardRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating card repository")
	return &cardRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner, card *models.FlashCard) error {
	return row.Scan(
		&card.ID,
		&card.Front,
		&card.Back,
		&card.FrontLang,
		&card.BackLang,
		&card.Category,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
}

// ListCards returns every card ordered by id ascending. An empty table yields
// an empty, non-nil slice.
func (r *cardRepository) ListCards(ctx context.Context) ([]models.FlashCard, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCardsQuery(r.db.statementBuilder())
	if err != nil {
		log.Err(err).Str("func", "cardRepository.ListCards").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var queryErr error
		rows, queryErr = r.db.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "cardRepository.ListCards").Msg("failed to execute query for listing cards")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cards := make([]models.FlashCard, 0, 50)
	for rows.Next() {
		var card models.FlashCard
		if scanErr := scanCard(rows, &card); scanErr != nil {
			log.Err(scanErr).Str("func", "cardRepository.ListCards").Msg("failed to scan card row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		cards = append(cards, card)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "cardRepository.ListCards").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return cards, nil
}

// GetCard returns a single card. A missing id yields [ErrCardNotFound].
func (r *cardRepository) GetCard(ctx context.Context, id int64) (models.FlashCard, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCardQuery(r.db.statementBuilder(), id)
	if err != nil {
		log.Err(err).Str("func", "cardRepository.GetCard").Int64("card_id", id).Msg("failed to build query")
		return models.FlashCard{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var card models.FlashCard
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return scanCard(r.db.QueryRowContext(ctx, query, args...), &card)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.FlashCard{}, ErrCardNotFound
	case err != nil:
		log.Err(err).Str("func", "cardRepository.GetCard").Int64("card_id", id).Msg("failed to get card")
		return models.FlashCard{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return card, nil
}

// CreateCard inserts a card and returns the stored record with its
// database-assigned id.
func (r *cardRepository) CreateCard(ctx context.Context, fields models.CardFields) (models.FlashCard, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCardQuery(r.db.statementBuilder(), fields, r.now())
	if err != nil {
		log.Err(err).Str("func", "cardRepository.CreateCard").Msg("failed to build query")
		return models.FlashCard{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var card models.FlashCard
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return scanCard(r.db.QueryRowContext(ctx, query, args...), &card)
	})
	if err != nil {
		log.Err(err).Str("func", "cardRepository.CreateCard").Msg("failed to insert card")
		return models.FlashCard{}, fmt.Errorf("%w: %w", ErrCardNotCreated, err)
	}

	log.Debug().Str("func", "cardRepository.CreateCard").Int64("card_id", card.ID).Msg("card created")
	return card, nil
}

// UpdateCard overwrites every field of the card and bumps updated_at.
// A missing id yields [ErrCardNotFound].
func (r *cardRepository) UpdateCard(ctx context.Context, id int64, fields models.CardFields) (models.FlashCard, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCardQuery(r.db.statementBuilder(), id, fields, r.now())
	if err != nil {
		log.Err(err).Str("func", "cardRepository.UpdateCard").Int64("card_id", id).Msg("failed to build query")
		return models.FlashCard{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var card models.FlashCard
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return scanCard(r.db.QueryRowContext(ctx, query, args...), &card)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Warn().Str("func", "cardRepository.UpdateCard").Int64("card_id", id).Msg("card to update was not found")
		return models.FlashCard{}, ErrCardNotFound
	case err != nil:
		log.Err(err).Str("func", "cardRepository.UpdateCard").Int64("card_id", id).Msg("failed to update card")
		return models.FlashCard{}, fmt.Errorf("%w: %w", ErrCardNotUpdated, err)
	}

	return card, nil
}

// DeleteCard removes a card. A missing id yields [ErrCardNotFound].
func (r *cardRepository) DeleteCard(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCardQuery(r.db.statementBuilder(), id)
	if err != nil {
		log.Err(err).Str("func", "cardRepository.DeleteCard").Int64("card_id", id).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "cardRepository.DeleteCard").Int64("card_id", id).Msg("failed to delete card")
		return fmt.Errorf("%w: %w", ErrCardNotDeleted, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "cardRepository.DeleteCard").Int64("card_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrCardNotDeleted, err)
	}
	if rowsAffected == 0 {
		log.Warn().Str("func", "cardRepository.DeleteCard").Int64("card_id", id).Msg("card to delete was not found")
		return ErrCardNotFound
	}

	return nil
}

// CountCards returns the number of stored cards.
func (r *cardRepository) CountCards(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountCardsQuery(r.db.statementBuilder())
	if err != nil {
		log.Err(err).Str("func", "cardRepository.CountCards").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		log.Err(err).Str("func", "cardRepository.CountCards").Msg("failed to count cards")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
