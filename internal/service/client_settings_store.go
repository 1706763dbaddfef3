package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/models"
)

var errCorruptSettings = errors.New("stored settings hold unknown values")

type clientSettingsStore struct {
	repository store.SettingsRepository

	mu       sync.RWMutex
	settings models.Settings

	logger *logger.Logger
}

// NewClientSettingsStore creates a settings store holding the defaults until
// Load is called.
func NewClientSettingsStore(repository store.SettingsRepository, logger *logger.Logger) ClientSettingsStore {
	return &clientSettingsStore{
		repository: repository,
		settings:   models.DefaultSettings(),
		logger:     logger,
	}
}

func (s *clientSettingsStore) Load(ctx context.Context) models.Settings {
	settings, err := s.read(ctx)
	if err != nil {
		event := s.logger.Warn()
		if errors.Is(err, store.ErrSettingNotFound) {
			event = s.logger.Debug()
		}
		event.Err(err).Str("func", "clientSettingsStore.Load").Msg("using default settings")
		settings = models.DefaultSettings()
	}

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	return settings
}

func (s *clientSettingsStore) read(ctx context.Context) (models.Settings, error) {
	raw, err := s.repository.GetSetting(ctx, models.SettingsKey)
	if err != nil {
		return models.Settings{}, err
	}

	// missing fields keep their defaults
	settings := models.DefaultSettings()
	if err = json.Unmarshal([]byte(raw), &settings); err != nil {
		return models.Settings{}, err
	}
	if !settings.Valid() {
		return models.Settings{}, errCorruptSettings
	}

	return settings, nil
}

func (s *clientSettingsStore) Update(ctx context.Context, patch models.SettingsPatch) models.Settings {
	s.mu.Lock()
	merged := patch.Apply(s.settings)
	s.settings = merged
	s.mu.Unlock()

	s.persist(ctx, merged)
	return merged
}

func (s *clientSettingsStore) Current() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *clientSettingsStore) persist(ctx context.Context, settings models.Settings) {
	data, err := json.Marshal(settings)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSettingsStore.persist").Msg("error encoding settings")
		return
	}

	if err = s.repository.PutSetting(ctx, models.SettingsKey, string(data)); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSettingsStore.persist").Msg("error saving settings")
	}
}
