package service

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/go-flashcards/internal/validators"
	"github.com/MKhiriev/go-flashcards/models"
)

type clientCardForm struct {
	cards      ClientCardStore
	submitting atomic.Bool
}

// NewClientCardForm creates the submission gate in front of cards.
func NewClientCardForm(cards ClientCardStore) ClientCardForm {
	return &clientCardForm{cards: cards}
}

func (f *clientCardForm) SubmitAdd(ctx context.Context, draft models.CardFields) (models.FlashCard, error) {
	fields, err := f.prepare(draft)
	if err != nil {
		return models.FlashCard{}, err
	}

	if !f.submitting.CompareAndSwap(false, true) {
		return models.FlashCard{}, ErrSubmissionInFlight
	}
	defer f.submitting.Store(false)

	return f.cards.Add(WithAddKey(ctx, addKeyForm), fields)
}

func (f *clientCardForm) SubmitUpdate(ctx context.Context, id int64, draft models.CardFields) (models.FlashCard, error) {
	fields, err := f.prepare(draft)
	if err != nil {
		return models.FlashCard{}, err
	}

	if !f.submitting.CompareAndSwap(false, true) {
		return models.FlashCard{}, ErrSubmissionInFlight
	}
	defer f.submitting.Store(false)

	return f.cards.Update(ctx, models.FlashCard{ID: id}.WithFields(fields))
}

func (f *clientCardForm) Submitting() bool {
	return f.submitting.Load()
}

func (f *clientCardForm) prepare(draft models.CardFields) (models.CardFields, error) {
	fields := validators.NormalizeDraft(draft)
	if err := validators.ValidateDraft(fields); err != nil {
		return models.CardFields{}, err
	}
	return fields, nil
}
