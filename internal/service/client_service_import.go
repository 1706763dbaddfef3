package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/internal/validators"
	"github.com/MKhiriev/go-flashcards/models"
)

// MaxImportSize is the largest export document accepted by Import.
const MaxImportSize = 5 << 20

type clientImportService struct {
	cards ClientCardStore
	files store.ExportFileStorage

	logger *logger.Logger
}

// NewClientImportService creates an import service adding cards to cards.
func NewClientImportService(cards ClientCardStore, files store.ExportFileStorage, logger *logger.Logger) ClientImportService {
	return &clientImportService{cards: cards, files: files, logger: logger}
}

// Import reads the export document at path and adds each valid card
// sequentially. Invalid cards are skipped. The first gateway failure stops the
// import; cards added before it stay added.
func (i *clientImportService) Import(ctx context.Context, path string) (models.ImportResult, error) {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return models.ImportResult{}, ErrImportInvalidType
	}

	data, err := i.files.Load(ctx, path, MaxImportSize)
	if err != nil {
		if errors.Is(err, store.ErrFileTooLarge) {
			return models.ImportResult{}, ErrImportTooLarge
		}
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrImportFailed, err)
	}

	var payload models.ExportPayload
	if err = json.Unmarshal(data, &payload); err != nil || payload.Cards == nil {
		return models.ImportResult{}, ErrImportInvalidFormat
	}

	ctx = WithAddKey(ctx, addKeyImport)
	var result models.ImportResult
	for _, exported := range payload.Cards {
		fields := validators.NormalizeDraft(exported.Fields())
		if err = validators.ValidateDraft(fields); err != nil {
			i.logger.Debug().Err(err).Str("func", "clientImportService.Import").Msg("skipping invalid card")
			result.Skipped++
			continue
		}

		if _, err = i.cards.Add(ctx, fields); err != nil {
			i.logger.Err(err).Str("func", "clientImportService.Import").Int("imported", result.Imported).Msg("error importing card")
			return result, fmt.Errorf("%w: %w", ErrImportFailed, err)
		}
		result.Imported++
	}

	i.logger.Info().Str("func", "clientImportService.Import").Int("imported", result.Imported).Int("skipped", result.Skipped).Msg("cards imported")
	return result, nil
}
