package service

import (
	"github.com/MKhiriev/go-flashcards/internal/adapter"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/store"
)

type ClientServices struct {
	CardStore     ClientCardStore
	SettingsStore ClientSettingsStore
	CardForm      ClientCardForm
	ExportService ClientExportService
	ImportService ClientImportService
}

func NewClientServices(storages *store.ClientStorages, gateway adapter.CardGateway, logger *logger.Logger) *ClientServices {
	cardStore := NewClientCardStore(gateway, logger)

	return &ClientServices{
		CardStore:     cardStore,
		SettingsStore: NewClientSettingsStore(storages.SettingsRepository, logger),
		CardForm:      NewClientCardForm(cardStore),
		ExportService: NewClientExportService(cardStore, storages.ExportFileStorage, logger),
		ImportService: NewClientImportService(cardStore, storages.ExportFileStorage, logger),
	}
}
