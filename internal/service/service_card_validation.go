package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/validators"
	"github.com/MKhiriev/go-flashcards/models"
)

// CardValidationService checks request bodies before they reach the wrapped
// [CardService]. Reads and deletes pass through unchanged.
type CardValidationService struct {
	inner     CardService
	validator validators.Validator
}

func NewCardValidationService() CardServiceWrapper {
	return &CardValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *CardValidationService) ListCards(ctx context.Context) ([]models.FlashCard, error) {
	return v.inner.ListCards(ctx)
}

func (v *CardValidationService) GetCard(ctx context.Context, id int64) (models.FlashCard, error) {
	return v.inner.GetCard(ctx, id)
}

func (v *CardValidationService) CreateCard(ctx context.Context, fields models.CardFields) (models.FlashCard, error) {
	fields = validators.TrimFields(fields)
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.FlashCard{}, fmt.Errorf("error during card validation before saving: %w", err)
	}

	return v.inner.CreateCard(ctx, fields)
}

func (v *CardValidationService) UpdateCard(ctx context.Context, id int64, fields models.CardFields) (models.FlashCard, error) {
	fields = validators.TrimFields(fields)
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.FlashCard{}, fmt.Errorf("error during card validation before updating: %w", err)
	}

	return v.inner.UpdateCard(ctx, id, fields)
}

func (v *CardValidationService) DeleteCard(ctx context.Context, id int64) error {
	return v.inner.DeleteCard(ctx, id)
}

func (v *CardValidationService) SeedDemoCards(ctx context.Context) (int, error) {
	return v.inner.SeedDemoCards(ctx)
}

func (v *CardValidationService) Wrap(wrapped CardService) CardService {
	v.inner = wrapped
	return v
}
