package service

import (
	"context"

	"github.com/MKhiriev/go-flashcards/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CardService is the server-side card use case layer behind the HTTP API.
type CardService interface {
	ListCards(ctx context.Context) ([]models.FlashCard, error)
	GetCard(ctx context.Context, id int64) (models.FlashCard, error)
	CreateCard(ctx context.Context, fields models.CardFields) (models.FlashCard, error)
	UpdateCard(ctx context.Context, id int64, fields models.CardFields) (models.FlashCard, error)
	DeleteCard(ctx context.Context, id int64) error
	// SeedDemoCards inserts the demo cards when the collection is empty and
	// returns how many were inserted.
	SeedDemoCards(ctx context.Context) (int, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

// CardServiceWrapper defines middleware composition for CardService.
// Implementations wrap an existing CardService to add behavior such as
// validating.
type CardServiceWrapper interface {
	Wrap(CardService) CardService // returns a decorated CardService applying additional behavior
}
