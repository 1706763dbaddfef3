package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-flashcards/internal/service"
	"github.com/MKhiriev/go-flashcards/models"
)

type screen int

const (
	screenStudy screen = iota
	screenList
	screenForm
	screenSettings
	screenExport
	screenImport
)

// flipState remembers which card was flipped. A flip only applies while the
// cursor still points at the same index and version.
type flipState struct {
	flipped bool
	index   int
	version int
}

type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	build    models.AppBuildInfo

	current  screen
	cursor   service.NavigationCursor
	settings models.Settings
	flip     flipState

	loading bool
	loadErr error

	list         listModel
	form         formModel
	settingsView settingsModel
	export       exportModel
	importer     importModel

	// overlays, checked in this order before the active screen sees a key
	notice        string
	confirmDelete *models.FlashCard
	showBuildInfo bool

	status    string
	statusSeq int

	styles  styles
	help    help.Model
	spinner spinner.Model
	width   int
}

func newAppModel(ctx context.Context, services *service.ClientServices, build models.AppBuildInfo) appModel {
	settings := models.DefaultSettings()

	return appModel{
		ctx:      ctx,
		services: services,
		build:    build,
		current:  screenStudy,
		settings: settings,
		loading:  true,
		export:   newExportModel(),
		styles:   newStyles(settings.Theme),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadSettings(), m.cmdLoadCards())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case settingsLoadedMsg:
		m.applySettings(msg.settings)
		return m, nil

	case settingsSavedMsg:
		m.applySettings(msg.settings)
		return m, nil

	case cardsLoadedMsg:
		m.loading = false
		switch {
		case msg.err == nil:
			m.loadErr = nil
		case errors.Is(msg.err, service.ErrOperationInFlight):
			// a refresh is already running and will report through the change hook
		default:
			m.loadErr = msg.err
		}
		m.cursor.Clamp(m.services.CardStore.Len())
		return m, nil

	case cardsChangedMsg:
		m.cursor.Clamp(m.services.CardStore.Len())
		return m, nil

	case cardSavedMsg:
		return m.handleCardSaved(msg)

	case cardDeletedMsg:
		if msg.err != nil {
			m.notice = errorText(msg.err)
			return m, nil
		}
		m.cursor.Clamp(m.services.CardStore.Len())
		m.list.clamp(m.services.CardStore.Len())
		return m, m.setStatus("Card deleted")

	case exportDoneMsg:
		return m.handleExportDone(msg)

	case importDoneMsg:
		return m.handleImportDone(msg)

	case copiedMsg:
		if msg.err != nil {
			m.notice = errorText(msg.err)
			return m, nil
		}
		return m, m.setStatus("Copied to clipboard")

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if handled, next, cmd := m.updateOverlays(msg); handled {
			return next, cmd
		}
	}

	switch m.current {
	case screenList:
		return m.updateList(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenExport:
		return m.updateExport(msg)
	case screenImport:
		return m.updateImport(msg)
	default:
		return m.updateStudy(msg)
	}
}

// updateOverlays routes a key to the topmost overlay, if any is open.
func (m appModel) updateOverlays(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch {
	case m.notice != "":
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.notice = ""
		}
		return true, m, nil

	case m.confirmDelete != nil:
		switch {
		case key.Matches(msg, keys.yes):
			card := *m.confirmDelete
			m.confirmDelete = nil
			return true, m, m.cmdDeleteCard(card.ID)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.confirmDelete = nil
		}
		return true, m, nil

	case m.showBuildInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			m.showBuildInfo = false
		}
		return true, m, nil
	}

	return false, m, nil
}

func (m appModel) View() string {
	var body string
	switch {
	case m.showBuildInfo:
		body = m.viewBuildInfo()
	case m.current == screenList:
		body = m.viewList()
	case m.current == screenForm:
		body = m.viewForm()
	case m.current == screenSettings:
		body = m.viewSettings()
	case m.current == screenExport:
		body = m.viewExport()
	case m.current == screenImport:
		body = m.viewImport()
	default:
		body = m.viewStudy()
	}

	if m.confirmDelete != nil {
		body += "\n\n" + m.styles.overlay.Render(
			"Delete \""+fitText(m.confirmDelete.Front, 30)+"\"?\n\n"+renderHelp(m.help, []key.Binding{keys.yes, keys.no}))
	}
	if m.notice != "" {
		body += "\n\n" + m.styles.overlay.Render(
			m.styles.err.Render(m.notice)+"\n\n"+renderHelp(m.help, []key.Binding{keys.enter, keys.esc}))
	}

	return m.styles.app.Render(body)
}

func (m *appModel) applySettings(settings models.Settings) {
	m.settings = settings
	m.styles = newStyles(settings.Theme)
}

func (m appModel) currentCard() (models.FlashCard, bool) {
	return m.services.CardStore.Get(m.cursor.Index())
}

// showingSide returns the side of the current card that is face up.
func (m appModel) showingSide() models.CardSide {
	side := m.settings.DefaultCardSide
	if !side.Valid() {
		side = models.SideFront
	}
	if m.flip.flipped && m.flip.index == m.cursor.Index() && m.flip.version == m.cursor.Version() {
		return side.Opposite()
	}
	return side
}

func (m *appModel) toggleFlip() {
	if m.flip.index == m.cursor.Index() && m.flip.version == m.cursor.Version() {
		m.flip.flipped = !m.flip.flipped
		return
	}
	m.flip = flipState{flipped: true, index: m.cursor.Index(), version: m.cursor.Version()}
}

func (m appModel) handleCardSaved(msg cardSavedMsg) (tea.Model, tea.Cmd) {
	active := m.current == screenForm && m.form.token == msg.token
	length := m.services.CardStore.Len()

	if msg.err != nil {
		if active {
			m.form.submitting = false
			m.form.err = errorText(msg.err)
		}
		return m, nil
	}

	switch {
	case msg.adding && active:
		if idx := m.services.CardStore.IndexOf(msg.card.ID); idx >= 0 {
			m.cursor.GoTo(idx, length)
		}
	case msg.adding:
		m.cursor.Clamp(length)
	default:
		if cur, ok := m.currentCard(); ok && cur.ID == msg.card.ID {
			m.cursor.BumpVersion()
		}
	}

	if !active {
		return m, nil
	}

	m.current = m.form.returnTo
	m.form = formModel{}
	if msg.adding {
		m.current = screenStudy
		return m, m.setStatus("Card added")
	}
	return m, m.setStatus("Card updated")
}
