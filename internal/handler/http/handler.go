package http

import (
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/service"
)

type Handler struct {
	cards   service.CardService
	appInfo service.AppInfoService

	// hashKey enables body signature verification when non-empty.
	hashKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		cards:   services.CardService,
		appInfo: services.AppInfoService,
		hashKey: hashKey,
		logger:  logger,
	}
}
