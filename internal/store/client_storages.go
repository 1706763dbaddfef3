package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/logger"
)

// ClientStorages groups all client-side storage components. The SQLite
// database always holds the settings record; it holds the cards too when the
// client runs with the local gateway.
type ClientStorages struct {
	// CardRepository is the SQLite card collection used by the local gateway.
	CardRepository CardRepository

	// SettingsRepository holds the persisted display preferences.
	SettingsRepository SettingsRepository

	// ExportFileStorage writes export documents and reads import documents.
	ExportFileStorage ExportFileStorage

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories and the export file storage.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		CardRepository:     NewCardRepository(db, logger),
		SettingsRepository: NewSettingsRepository(db, logger),
		ExportFileStorage:  NewExportFileStorage(cfg.ExportDir, logger),
		db:                 db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
