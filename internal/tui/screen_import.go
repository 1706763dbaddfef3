package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-flashcards/models"
)

type importModel struct {
	input   textinput.Model
	running bool
}

func newImportModel() importModel {
	input := textinput.New()
	input.Placeholder = models.ExportFileName
	input.Width = 50
	input.Prompt = "File: "
	return importModel{input: input}
}

func (m appModel) updateImport(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.current = screenStudy
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			path := strings.TrimSpace(m.importer.input.Value())
			if path == "" || m.importer.running {
				return m, nil
			}
			m.importer.running = true
			return m, m.cmdImport(path)
		}
	}

	var cmd tea.Cmd
	m.importer.input, cmd = m.importer.input.Update(msg)
	return m, cmd
}

func (m appModel) handleImportDone(msg importDoneMsg) (tea.Model, tea.Cmd) {
	m.importer.running = false
	m.cursor.Clamp(m.services.CardStore.Len())

	if msg.err != nil {
		text := errorText(msg.err)
		if msg.result.Imported > 0 {
			text = fmt.Sprintf("%s (%d cards were imported before the failure)", text, msg.result.Imported)
		}
		m.notice = text
		return m, nil
	}

	m.current = screenStudy
	return m, m.setStatus(fmt.Sprintf("Imported %d cards, skipped %d", msg.result.Imported, msg.result.Skipped))
}

func (m appModel) viewImport() string {
	body := "Import cards from a JSON export document (up to 5MB).\n\n" + m.importer.input.View()
	if m.importer.running {
		body += "\n\nImporting..."
	}
	return m.renderPage("Import cards", body,
		[]key.Binding{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "import")), keys.esc})
}
