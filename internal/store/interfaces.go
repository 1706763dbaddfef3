package store

import (
	"context"

	"github.com/MKhiriev/go-flashcards/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CardRepository is the durable card collection. It is implemented over
// PostgreSQL on the server and over SQLite on the client.
type CardRepository interface {
	// ListCards returns every card ordered by id ascending.
	ListCards(ctx context.Context) ([]models.FlashCard, error)
	// GetCard returns the card with the given id or [ErrCardNotFound].
	GetCard(ctx context.Context, id int64) (models.FlashCard, error)
	// CreateCard inserts a card and returns it with its assigned id and timestamps.
	CreateCard(ctx context.Context, fields models.CardFields) (models.FlashCard, error)
	// UpdateCard replaces the fields of an existing card.
	UpdateCard(ctx context.Context, id int64, fields models.CardFields) (models.FlashCard, error)
	// DeleteCard removes a card.
	DeleteCard(ctx context.Context, id int64) error
	// CountCards returns the number of stored cards.
	CountCards(ctx context.Context) (int64, error)
}

// SettingsRepository is a small key/value table holding client preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	PutSetting(ctx context.Context, key, value string) error
}

// ExportFileStorage reads and writes export documents on the local file system.
type ExportFileStorage interface {
	// Save atomically writes data to name inside the export directory and
	// returns the full path of the written file.
	Save(ctx context.Context, name string, data []byte) (string, error)
	// Load reads the file at path, refusing files larger than maxSize bytes.
	Load(ctx context.Context, path string, maxSize int64) ([]byte, error)
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
