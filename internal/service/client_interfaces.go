package service

import (
	"context"

	"github.com/MKhiriev/go-flashcards/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientCardStore owns the in-memory card collection of the client and
// mediates every mutation through the card gateway, so that the local copy
// and the durable copy never drift apart after a call returns.
type ClientCardStore interface {
	// Load fetches the full collection and replaces the local copy. A
	// listing that raced with Add, Update or Remove is fetched again. On
	// failure the previous collection is kept and an error wrapping
	// [ErrLoadFailed] is returned.
	Load(ctx context.Context) error

	// Loading reports whether a Load call is in progress.
	Loading() bool

	// Add creates a card through the gateway and appends the returned record.
	// Returns an error wrapping [ErrCreateFailed] without touching the
	// collection on failure. Adds tagged with the same [WithAddKey] key are
	// refused with [ErrOperationInFlight] while one is pending.
	Add(ctx context.Context, fields models.CardFields) (models.FlashCard, error)

	// Update replaces the card's fields through the gateway and swaps the
	// returned record in place. Returns an error wrapping [ErrUpdateFailed]
	// (and [ErrCardNotFound] for a missing card) on failure.
	Update(ctx context.Context, card models.FlashCard) (models.FlashCard, error)

	// Remove deletes the card through the gateway and drops it from the
	// collection. Returns an error wrapping [ErrDeleteFailed] (and
	// [ErrCardNotFound] for a missing card) on failure.
	Remove(ctx context.Context, id int64) error

	// Cards returns a copy of the collection in its current order.
	Cards() []models.FlashCard

	// Len returns the number of cards in the collection.
	Len() int

	// Get returns the card at index, or false when index is out of range.
	Get(index int) (models.FlashCard, bool)

	// IndexOf returns the position of the card with the given id, or -1.
	IndexOf(id int64) int

	// OnChange registers fn to be called after every successful load or
	// mutation. Callbacks run on the goroutine that completed the call.
	OnChange(fn func())
}

// ClientSettingsStore holds the user's preferences and persists them on a
// best-effort basis.
type ClientSettingsStore interface {
	// Load reads the stored preferences. A missing or corrupt record yields
	// [models.DefaultSettings]; no error is ever returned.
	Load(ctx context.Context) models.Settings

	// Update merges patch into the current settings, persists the result and
	// returns it. Persistence failures are logged and swallowed.
	Update(ctx context.Context, patch models.SettingsPatch) models.Settings

	// Current returns the in-memory settings.
	Current() models.Settings
}

// ClientCardForm gates add and edit submissions through the card rules
// before they reach the [ClientCardStore].
type ClientCardForm interface {
	// SubmitAdd normalises and validates draft, then adds it to the store.
	SubmitAdd(ctx context.Context, draft models.CardFields) (models.FlashCard, error)

	// SubmitUpdate normalises and validates draft, then updates card id.
	SubmitUpdate(ctx context.Context, id int64, draft models.CardFields) (models.FlashCard, error)

	// Submitting reports whether a submission is in flight.
	Submitting() bool
}

// ClientExportService writes export documents built from the card store.
type ClientExportService interface {
	// Export filters the collection and writes the document to the export
	// directory.
	Export(ctx context.Context, req models.ExportRequest) (models.ExportResult, error)

	// CopyToClipboard filters the collection and puts the document on the
	// system clipboard.
	CopyToClipboard(ctx context.Context, req models.ExportRequest) (models.ExportResult, error)
}

// ClientImportService loads an export document back into the card store.
type ClientImportService interface {
	Import(ctx context.Context, path string) (models.ImportResult, error)
}
