// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the persistence gateway the flashcard client uses
// to reach its card collection.
//
// The primary abstraction is [CardGateway], which decouples the client core
// from where cards live. Two implementations ship:
//   - [NewHTTPCardGateway] talks to the card service over HTTP/JSON.
//   - [NewLocalCardGateway] keeps cards in the client's SQLite database.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError and from store sentinels by mapStoreError, so that callers can
// use [errors.Is] without knowing which gateway is active (e.g. [ErrNotFound]
// for a missing card).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-flashcards/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/card_gateway_mock.go -package=mock

// CardGateway is the contract for reading and mutating the card collection.
// Implementations are responsible for serialisation and for mapping
// transport or storage errors to the sentinel values of this package.
type CardGateway interface {
	// ListCards returns every card ordered by ascending id.
	ListCards(ctx context.Context) ([]models.FlashCard, error)

	// CreateCard persists a new card and returns it with its assigned id and
	// timestamps.
	CreateCard(ctx context.Context, fields models.CardFields) (models.FlashCard, error)

	// GetCard returns the card with the given id or [ErrNotFound].
	GetCard(ctx context.Context, id int64) (models.FlashCard, error)

	// UpdateCard replaces the editable fields of the card and returns the
	// stored result. Returns [ErrNotFound] (wrapped) when no such card exists.
	UpdateCard(ctx context.Context, id int64, fields models.CardFields) (models.FlashCard, error)

	// DeleteCard removes the card. Returns [ErrNotFound] (wrapped) when no such
	// card exists.
	DeleteCard(ctx context.Context, id int64) error
}
