package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-flashcards/models"
)

const (
	cardsTable    = "flash_cards"
	settingsTable = "app_settings"
)

var cardColumns = []string{
	"id",
	"front",
	"back",
	"front_lang",
	"back_lang",
	"category",
	"created_at",
	"updated_at",
}

func returningCardColumns() string {
	return "RETURNING " + strings.Join(cardColumns, ", ")
}

func buildListCardsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(cardColumns...).
		From(cardsTable).
		OrderBy("id ASC").
		ToSql()
}

func buildGetCardQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(cardColumns...).
		From(cardsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCountCardsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").From(cardsTable).ToSql()
}

// buildInsertCardQuery passes both timestamps explicitly so that PostgreSQL
// and SQLite store identical values for a freshly created card.
func buildInsertCardQuery(b sq.StatementBuilderType, fields models.CardFields, now time.Time) (string, []any, error) {
	return b.Insert(cardsTable).
		Columns("front", "back", "front_lang", "back_lang", "category", "created_at", "updated_at").
		Values(fields.Front, fields.Back, fields.FrontLang, fields.BackLang, nullableString(fields.Category), now, now).
		Suffix(returningCardColumns()).
		ToSql()
}

func buildUpdateCardQuery(b sq.StatementBuilderType, id int64, fields models.CardFields, now time.Time) (string, []any, error) {
	return b.Update(cardsTable).
		Set("front", fields.Front).
		Set("back", fields.Back).
		Set("front_lang", fields.FrontLang).
		Set("back_lang", fields.BackLang).
		Set("category", nullableString(fields.Category)).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Suffix(returningCardColumns()).
		ToSql()
}

func buildDeleteCardQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(cardsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildGetSettingQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select("value").
		From(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildPutSettingQuery(b sq.StatementBuilderType, key, value string) (string, []any, error) {
	return b.Insert(settingsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value").
		ToSql()
}

// nullableString converts an optional string into a driver value, mapping
// nil to SQL NULL.
func nullableString(s *string) any {
	if s == nil {
		return nil
	}

	return *s
}
