package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/models"
)

type localCardGateway struct {
	repository store.CardRepository
	logger     *logger.Logger
}

// NewLocalCardGateway constructs a [CardGateway] over the client's local card
// repository.
func NewLocalCardGateway(repository store.CardRepository, logger *logger.Logger) CardGateway {
	return &localCardGateway{repository: repository, logger: logger}
}

func (l *localCardGateway) ListCards(ctx context.Context) ([]models.FlashCard, error) {
	cards, err := l.repository.ListCards(ctx)
	if err != nil {
		l.logger.Err(err).Str("func", "localCardGateway.ListCards").Msg("error listing local cards")
		return nil, err
	}
	return cards, nil
}

func (l *localCardGateway) CreateCard(ctx context.Context, fields models.CardFields) (models.FlashCard, error) {
	card, err := l.repository.CreateCard(ctx, fields)
	if err != nil {
		l.logger.Err(err).Str("func", "localCardGateway.CreateCard").Msg("error creating local card")
		return models.FlashCard{}, mapStoreError(err, ErrNotCreated)
	}
	return card, nil
}

func (l *localCardGateway) GetCard(ctx context.Context, id int64) (models.FlashCard, error) {
	card, err := l.repository.GetCard(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			return models.FlashCard{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return models.FlashCard{}, err
	}
	return card, nil
}

func (l *localCardGateway) UpdateCard(ctx context.Context, id int64, fields models.CardFields) (models.FlashCard, error) {
	card, err := l.repository.UpdateCard(ctx, id, fields)
	if err != nil {
		l.logger.Err(err).Str("func", "localCardGateway.UpdateCard").Int64("card_id", id).Msg("error updating local card")
		return models.FlashCard{}, mapStoreError(err, ErrNotUpdated)
	}
	return card, nil
}

func (l *localCardGateway) DeleteCard(ctx context.Context, id int64) error {
	if err := l.repository.DeleteCard(ctx, id); err != nil {
		l.logger.Err(err).Str("func", "localCardGateway.DeleteCard").Int64("card_id", id).Msg("error deleting local card")
		return mapStoreError(err, ErrNotDeleted)
	}
	return nil
}
