// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/logger"
)

type settingsRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsRepository] over the client's
// app_settings table.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// GetSetting returns the raw value stored under key or [ErrSettingNotFound].
func (r *settingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetSettingQuery(r.db.statementBuilder(), key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrSettingNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "settingsRepository.GetSetting").Str("key", key).Msg("failed to read setting")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// PutSetting inserts or replaces the value stored under key.
func (r *settingsRepository) PutSetting(ctx context.Context, key, value string) error {
	query, args, err := buildPutSettingQuery(r.db.statementBuilder(), key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "settingsRepository.PutSetting").Str("key", key).Msg("failed to write setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
