package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-flashcards/internal/mock"
	"github.com/MKhiriev/go-flashcards/internal/service"
	"github.com/MKhiriev/go-flashcards/models"
)

type testApp struct {
	model    appModel
	cards    *mock.MockClientCardStore
	settings *mock.MockClientSettingsStore
	form     *mock.MockClientCardForm
	export   *mock.MockClientExportService
	importer *mock.MockClientImportService
}

func newTestApp(t *testing.T, cards []models.FlashCard) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	ta := &testApp{
		cards:    mock.NewMockClientCardStore(ctrl),
		settings: mock.NewMockClientSettingsStore(ctrl),
		form:     mock.NewMockClientCardForm(ctrl),
		export:   mock.NewMockClientExportService(ctrl),
		importer: mock.NewMockClientImportService(ctrl),
	}

	ta.cards.EXPECT().Len().Return(len(cards)).AnyTimes()
	ta.cards.EXPECT().Get(gomock.Any()).DoAndReturn(func(i int) (models.FlashCard, bool) {
		if i < 0 || i >= len(cards) {
			return models.FlashCard{}, false
		}
		return cards[i], true
	}).AnyTimes()
	ta.cards.EXPECT().IndexOf(gomock.Any()).DoAndReturn(func(id int64) int {
		for i, c := range cards {
			if c.ID == id {
				return i
			}
		}
		return -1
	}).AnyTimes()

	services := &service.ClientServices{
		CardStore:     ta.cards,
		SettingsStore: ta.settings,
		CardForm:      ta.form,
		ExportService: ta.export,
		ImportService: ta.importer,
	}
	ta.model = newAppModel(context.Background(), services, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"))
	ta.model.loading = false

	return ta
}

// send feeds msg to the model and returns the command it produced.
func (ta *testApp) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := ta.model.Update(msg)
	model, ok := next.(appModel)
	require.True(t, ok)
	ta.model = model
	return cmd
}

func (ta *testApp) press(t *testing.T, k string) tea.Cmd {
	t.Helper()
	return ta.send(t, keyMsg(k))
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func sampleCards(n int) []models.FlashCard {
	cards := make([]models.FlashCard, n)
	for i := range cards {
		cards[i] = models.FlashCard{
			ID:        int64(i + 1),
			Front:     fmt.Sprintf("front %d", i+1),
			Back:      fmt.Sprintf("back %d", i+1),
			FrontLang: "English",
			BackLang:  "Vietnamese",
		}
	}
	return cards
}

func TestStudy_FlipAndNavigate(t *testing.T) {
	ta := newTestApp(t, sampleCards(3))

	assert.Equal(t, models.SideFront, ta.model.showingSide())

	ta.press(t, " ")
	assert.Equal(t, models.SideBack, ta.model.showingSide())
	assert.Contains(t, ta.model.View(), "back 1")

	ta.press(t, "right")
	assert.Equal(t, 1, ta.model.cursor.Index())
	assert.Equal(t, models.SideFront, ta.model.showingSide(), "flip resets on another card")

	ta.press(t, "left")
	ta.press(t, "left")
	assert.Equal(t, 2, ta.model.cursor.Index(), "navigation wraps around")
}

func TestStudy_DefaultSideFromSettings(t *testing.T) {
	ta := newTestApp(t, sampleCards(1))

	settings := models.DefaultSettings()
	settings.DefaultCardSide = models.SideBack
	ta.send(t, settingsLoadedMsg{settings: settings})

	assert.Equal(t, models.SideBack, ta.model.showingSide())
	ta.press(t, " ")
	assert.Equal(t, models.SideFront, ta.model.showingSide())
}

func TestStudy_FlipResetsWhenCurrentCardIsEdited(t *testing.T) {
	cards := sampleCards(2)
	ta := newTestApp(t, cards)

	ta.press(t, " ")
	require.Equal(t, models.SideBack, ta.model.showingSide())

	ta.send(t, cardSavedMsg{token: "other", card: cards[0]})
	assert.Equal(t, 1, ta.model.cursor.Version())
	assert.Equal(t, models.SideFront, ta.model.showingSide())
}

func TestStudy_EmptyCollection(t *testing.T) {
	ta := newTestApp(t, nil)

	ta.press(t, " ")
	ta.press(t, "right")
	ta.press(t, "d")

	assert.False(t, ta.model.flip.flipped)
	assert.Nil(t, ta.model.confirmDelete)
	assert.Contains(t, ta.model.View(), "No cards yet")
}

func TestStudy_QuickEditDisabled(t *testing.T) {
	ta := newTestApp(t, sampleCards(1))
	ta.model.settings.RightClickEditEnabled = false

	cmd := ta.press(t, "e")

	assert.NotNil(t, cmd)
	assert.Equal(t, screenStudy, ta.model.current)
	assert.Equal(t, "Quick edit is turned off in settings", ta.model.status)
}

func TestDelete_ConfirmAndCancel(t *testing.T) {
	cards := sampleCards(2)
	ta := newTestApp(t, cards)

	ta.press(t, "d")
	require.NotNil(t, ta.model.confirmDelete)
	ta.press(t, "n")
	assert.Nil(t, ta.model.confirmDelete, "declining leaves the card in place")

	ta.press(t, "d")
	ta.cards.EXPECT().Remove(gomock.Any(), int64(1)).Return(nil)
	cmd := ta.press(t, "y")
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, cardDeletedMsg{}, msg)
	ta.send(t, msg)

	assert.Equal(t, "Card deleted", ta.model.status)
	assert.Empty(t, ta.model.notice)
}

func TestDelete_FailureShowsNotice(t *testing.T) {
	ta := newTestApp(t, sampleCards(1))

	ta.send(t, cardDeletedMsg{id: 1, err: fmt.Errorf("%w: boom", service.ErrDeleteFailed)})
	assert.NotEmpty(t, ta.model.notice)

	// the notice swallows keys until dismissed
	ta.press(t, "right")
	assert.NotEmpty(t, ta.model.notice)
	ta.press(t, "enter")
	assert.Empty(t, ta.model.notice)
}

func TestForm_SubmitAddMovesToNewCard(t *testing.T) {
	cards := sampleCards(3)
	ta := newTestApp(t, cards)

	ta.press(t, "n")
	require.Equal(t, screenForm, ta.model.current)
	token := ta.model.form.token
	require.NotEmpty(t, token)

	ta.send(t, cardSavedMsg{token: token, adding: true, card: cards[2]})

	assert.Equal(t, screenStudy, ta.model.current)
	assert.Equal(t, 2, ta.model.cursor.Index())
	assert.Equal(t, "Card added", ta.model.status)
}

func TestForm_StaleResultIsIgnored(t *testing.T) {
	cards := sampleCards(2)
	ta := newTestApp(t, cards)

	ta.press(t, "n")
	token := ta.model.form.token

	ta.send(t, cardSavedMsg{token: "stale", adding: true, card: cards[1]})

	assert.Equal(t, screenForm, ta.model.current)
	assert.Equal(t, token, ta.model.form.token)
	assert.Equal(t, 0, ta.model.cursor.Index())
}

func TestForm_ErrorKeepsFormOpen(t *testing.T) {
	ta := newTestApp(t, sampleCards(1))

	ta.press(t, "n")
	ta.model.form.submitting = true
	ta.send(t, cardSavedMsg{token: ta.model.form.token, adding: true, err: fmt.Errorf("%w: down", service.ErrCreateFailed)})

	assert.Equal(t, screenForm, ta.model.current)
	assert.False(t, ta.model.form.submitting)
	assert.NotEmpty(t, ta.model.form.err)
}

func TestSettings_ToggleSavesPatch(t *testing.T) {
	ta := newTestApp(t, sampleCards(1))

	ta.press(t, "s")
	require.Equal(t, screenSettings, ta.model.current)

	saved := models.DefaultSettings()
	saved.DefaultCardSide = models.SideBack
	ta.settings.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, patch models.SettingsPatch) models.Settings {
			require.NotNil(t, patch.DefaultCardSide)
			assert.Equal(t, models.SideBack, *patch.DefaultCardSide)
			return saved
		})

	cmd := ta.press(t, " ")
	assert.Equal(t, models.SideBack, ta.model.settings.DefaultCardSide, "applied before persisting")

	require.NotNil(t, cmd)
	ta.send(t, cmd())
	assert.Equal(t, saved, ta.model.settings)
}

func TestExport_NoLanguagesNotice(t *testing.T) {
	ta := newTestApp(t, sampleCards(2))

	ta.press(t, "x")
	require.Equal(t, screenExport, ta.model.current)

	// switch to specific languages and write without picking one
	ta.press(t, " ")
	require.True(t, ta.model.export.specific)

	ta.export.EXPECT().
		Export(gomock.Any(), models.ExportRequest{Type: models.ExportSpecific, FilterMode: models.FilterEither}).
		Return(models.ExportResult{}, service.ErrNoLanguagesSelected)

	cmd := ta.press(t, "w")
	require.NotNil(t, cmd)
	assert.True(t, ta.model.export.running)

	ta.send(t, cmd())
	assert.False(t, ta.model.export.running)
	assert.Equal(t, service.UserMessage(service.ErrNoLanguagesSelected), ta.model.notice)
}

func TestExport_CopyToClipboard(t *testing.T) {
	ta := newTestApp(t, sampleCards(2))

	ta.press(t, "x")
	ta.press(t, " ")
	ta.press(t, "down")
	ta.press(t, " ")

	req := models.ExportRequest{
		Type:       models.ExportSpecific,
		Languages:  []string{models.LanguageOptions[0].Value},
		FilterMode: models.FilterEither,
	}
	ta.export.EXPECT().CopyToClipboard(gomock.Any(), req).Return(models.ExportResult{Count: 2}, nil)

	cmd := ta.press(t, "c")
	require.NotNil(t, cmd)
	ta.send(t, cmd())

	assert.Empty(t, ta.model.notice)
	assert.Equal(t, "Copied 2 cards to clipboard", ta.model.status)
}

func TestImport_Flow(t *testing.T) {
	ta := newTestApp(t, sampleCards(1))

	ta.press(t, "i")
	require.Equal(t, screenImport, ta.model.current)

	for _, r := range "cards.json" {
		ta.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	ta.importer.EXPECT().Import(gomock.Any(), "cards.json").Return(models.ImportResult{Imported: 3, Skipped: 1}, nil)

	cmd := ta.press(t, "enter")
	require.NotNil(t, cmd)
	ta.send(t, cmd())

	assert.Equal(t, screenStudy, ta.model.current)
	assert.Equal(t, "Imported 3 cards, skipped 1", ta.model.status)
}

func TestImport_FailureReportsPartialProgress(t *testing.T) {
	ta := newTestApp(t, sampleCards(1))
	ta.press(t, "i")

	ta.send(t, importDoneMsg{
		result: models.ImportResult{Imported: 2},
		err:    fmt.Errorf("%w: %w", service.ErrImportFailed, errors.New("gateway down")),
	})

	assert.Equal(t, screenImport, ta.model.current)
	assert.Contains(t, ta.model.notice, "2 cards were imported before the failure")
}

func TestLoad_InFlightIsNotAnError(t *testing.T) {
	ta := newTestApp(t, sampleCards(1))
	ta.model.loading = true

	ta.send(t, cardsLoadedMsg{err: service.ErrOperationInFlight})
	assert.False(t, ta.model.loading)
	assert.NoError(t, ta.model.loadErr)

	ta.send(t, cardsLoadedMsg{err: service.ErrLoadFailed})
	assert.ErrorIs(t, ta.model.loadErr, service.ErrLoadFailed)
	assert.Contains(t, ta.model.View(), "Failed to load flashcards")
}

func TestBuildInfoOverlay(t *testing.T) {
	ta := newTestApp(t, nil)

	ta.press(t, "v")
	view := ta.model.View()
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "abc123")

	ta.press(t, "esc")
	assert.False(t, ta.model.showBuildInfo)
}

func TestStatusClearsOnlyLatest(t *testing.T) {
	ta := newTestApp(t, nil)

	ta.model.setStatus("first")
	ta.model.setStatus("second")

	ta.send(t, clearStatusMsg{seq: 1})
	assert.Equal(t, "second", ta.model.status)
	ta.send(t, clearStatusMsg{seq: 2})
	assert.Empty(t, ta.model.status)
}
