package store

import (
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/migrations"
	"github.com/MKhiriev/go-flashcards/models"
)

func TestSettingsRepository_GetSetting(t *testing.T) {
	selectSQL := regexp.QuoteMeta(`SELECT value FROM app_settings WHERE key = ?`)

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t, migrations.DialectSQLite)
		repo := NewSettingsRepository(db, logger.Nop())
		mock.ExpectQuery(selectSQL).
			WithArgs(models.SettingsKey).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"defaultCardSide":"back"}`))

		value, err := repo.GetSetting(testContext(), models.SettingsKey)
		require.NoError(t, err)
		assert.Equal(t, `{"defaultCardSide":"back"}`, value)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newTestDB(t, migrations.DialectSQLite)
		repo := NewSettingsRepository(db, logger.Nop())
		mock.ExpectQuery(selectSQL).WillReturnRows(sqlmock.NewRows([]string{"value"}))

		_, err := repo.GetSetting(testContext(), models.SettingsKey)
		assert.ErrorIs(t, err, ErrSettingNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		db, mock := newTestDB(t, migrations.DialectSQLite)
		repo := NewSettingsRepository(db, logger.Nop())
		mock.ExpectQuery(selectSQL).WillReturnError(errors.New("no such table"))

		_, err := repo.GetSetting(testContext(), models.SettingsKey)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestSettingsRepository_PutSetting(t *testing.T) {
	upsertSQL := regexp.QuoteMeta(`INSERT INTO app_settings (key,value) VALUES (?,?) ON CONFLICT (key) DO UPDATE SET value = excluded.value`)

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t, migrations.DialectSQLite)
		repo := NewSettingsRepository(db, logger.Nop())
		mock.ExpectExec(upsertSQL).
			WithArgs(models.SettingsKey, `{}`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.PutSetting(testContext(), models.SettingsKey, `{}`))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestDB(t, migrations.DialectSQLite)
		repo := NewSettingsRepository(db, logger.Nop())
		mock.ExpectExec(upsertSQL).WillReturnError(errors.New("readonly database"))

		err := repo.PutSetting(testContext(), models.SettingsKey, `{}`)
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}
