package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/models"
)

type clientExportService struct {
	cards ClientCardStore
	files store.ExportFileStorage

	writeClipboard func(string) error

	logger *logger.Logger
}

// NewClientExportService creates an export service reading from cards and
// writing through files.
func NewClientExportService(cards ClientCardStore, files store.ExportFileStorage, logger *logger.Logger) ClientExportService {
	return &clientExportService{
		cards:          cards,
		files:          files,
		writeClipboard: clipboard.WriteAll,
		logger:         logger,
	}
}

func (e *clientExportService) Export(ctx context.Context, req models.ExportRequest) (models.ExportResult, error) {
	data, count, err := e.render(req)
	if err != nil {
		return models.ExportResult{}, err
	}

	path, err := e.files.Save(ctx, models.ExportFileName, data)
	if err != nil {
		e.logger.Err(err).Str("func", "clientExportService.Export").Msg("error writing export file")
		return models.ExportResult{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	e.logger.Info().Str("func", "clientExportService.Export").Str("path", path).Int("count", count).Msg("cards exported")
	return models.ExportResult{Path: path, Count: count, Data: data}, nil
}

func (e *clientExportService) CopyToClipboard(ctx context.Context, req models.ExportRequest) (models.ExportResult, error) {
	data, count, err := e.render(req)
	if err != nil {
		return models.ExportResult{}, err
	}

	if err = e.writeClipboard(string(data)); err != nil {
		e.logger.Err(err).Str("func", "clientExportService.CopyToClipboard").Msg("error writing clipboard")
		return models.ExportResult{}, fmt.Errorf("%w: %w", ErrClipboardFailed, err)
	}

	return models.ExportResult{Count: count, Data: data}, nil
}

// render checks the request before the collection is read.
func (e *clientExportService) render(req models.ExportRequest) ([]byte, int, error) {
	if req.Type == models.ExportSpecific && len(selectedLanguages(req.Languages)) == 0 {
		return nil, 0, ErrNoLanguagesSelected
	}

	payload, err := FilterExport(e.cards.Cards(), req)
	if err != nil {
		return nil, 0, err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, 0, fmt.Errorf("%w: encode export: %w", ErrExportFailed, err)
	}

	return data, len(payload.Cards), nil
}
