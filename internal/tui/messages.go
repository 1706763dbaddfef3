package tui

import "github.com/MKhiriev/go-flashcards/models"

type cardsLoadedMsg struct {
	err error
}

// cardsChangedMsg is sent by the card store's change hook, e.g. after a
// background refresh.
type cardsChangedMsg struct{}

type settingsLoadedMsg struct {
	settings models.Settings
}

type settingsSavedMsg struct {
	settings models.Settings
}

// cardSavedMsg is the result of a form submission. token identifies the form
// that submitted it.
type cardSavedMsg struct {
	token  string
	adding bool
	card   models.FlashCard
	err    error
}

type cardDeletedMsg struct {
	id  int64
	err error
}

type exportDoneMsg struct {
	result    models.ExportResult
	clipboard bool
	err       error
}

type importDoneMsg struct {
	result models.ImportResult
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
