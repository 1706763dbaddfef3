package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-flashcards/models"
)

func (m appModel) updateStudy(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	cards := m.services.CardStore
	card, hasCard := m.currentCard()

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.flip):
		if hasCard {
			m.toggleFlip()
		}
	case key.Matches(keyMsg, keys.prev):
		m.cursor.Previous(cards.Len())
	case key.Matches(keyMsg, keys.next):
		m.cursor.Next(cards.Len())
	case key.Matches(keyMsg, keys.edit):
		if !hasCard {
			return m, nil
		}
		if !m.settings.RightClickEditEnabled {
			return m, m.setStatus("Quick edit is turned off in settings")
		}
		m.form = newFormModel(&card, screenStudy)
		m.current = screenForm
		return m, m.form.focusCmd()
	case key.Matches(keyMsg, keys.add):
		m.form = newFormModel(nil, screenStudy)
		m.current = screenForm
		return m, m.form.focusCmd()
	case key.Matches(keyMsg, keys.delete):
		if hasCard {
			m.confirmDelete = &card
		}
	case key.Matches(keyMsg, keys.list):
		m.list = listModel{idx: m.cursor.Index()}
		m.current = screenList
	case key.Matches(keyMsg, keys.settings):
		m.settingsView = settingsModel{}
		m.current = screenSettings
	case key.Matches(keyMsg, keys.export):
		m.current = screenExport
	case key.Matches(keyMsg, keys.imports):
		m.importer = newImportModel()
		m.current = screenImport
		return m, m.importer.input.Focus()
	case key.Matches(keyMsg, keys.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.loadErr = nil
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadCards())
	case key.Matches(keyMsg, keys.bulk):
		return m, m.setStatus("Add multiple cards: coming soon")
	case key.Matches(keyMsg, keys.copy):
		if hasCard {
			return m, cmdCopyText(sideText(card, m.showingSide()))
		}
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m appModel) viewStudy() string {
	bindings := []key.Binding{keys.flip, keys.prev, keys.next, keys.add, keys.edit, keys.delete,
		keys.list, keys.settings, keys.export, keys.imports, keys.reload, keys.quit}

	if m.loading && m.services.CardStore.Len() == 0 {
		return m.renderPage("Flashcards", m.spinner.View()+" Loading cards...", bindings)
	}

	var b strings.Builder
	if m.loadErr != nil {
		b.WriteString(m.styles.err.Render("Failed to load flashcards. Press r to retry."))
		b.WriteString("\n\n")
	}

	card, ok := m.currentCard()
	if !ok {
		b.WriteString("No cards yet. Press n to add one.")
		return m.renderPage("Flashcards", b.String(), bindings)
	}

	side := m.showingSide()
	style := m.styles.card
	if side == models.SideBack {
		style = m.styles.cardBack
	}

	b.WriteString(style.Render(sideLabel(card, side) + "\n\n" + sideText(card, side)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d / %d", m.cursor.Index()+1, m.services.CardStore.Len()))
	if card.Category != nil {
		b.WriteString("  ·  " + *card.Category)
	}
	if m.loading {
		b.WriteString("  " + m.spinner.View())
	}

	return m.renderPage("Flashcards", b.String(), bindings)
}

func sideText(card models.FlashCard, side models.CardSide) string {
	if side == models.SideBack {
		return card.Back
	}
	return card.Front
}

func sideLabel(card models.FlashCard, side models.CardSide) string {
	if side == models.SideBack {
		return card.BackLang
	}
	return card.FrontLang
}
