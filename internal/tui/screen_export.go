package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-flashcards/internal/service"
	"github.com/MKhiriev/go-flashcards/models"
)

var filterModes = []models.FilterMode{models.FilterEither, models.FilterFront, models.FilterBack}

// exportModel rows: 0 export type, 1..n languages, n+1 filter mode.
type exportModel struct {
	idx       int
	specific  bool
	languages map[string]bool
	filter    int
	running   bool
}

func newExportModel() exportModel {
	return exportModel{languages: make(map[string]bool, len(models.LanguageOptions))}
}

func (e exportModel) rows() int {
	return len(models.LanguageOptions) + 2
}

func (e exportModel) request() models.ExportRequest {
	if !e.specific {
		return models.ExportRequest{Type: models.ExportAll}
	}

	req := models.ExportRequest{Type: models.ExportSpecific, FilterMode: filterModes[e.filter]}
	for _, opt := range models.LanguageOptions {
		if e.languages[opt.Value] {
			req.Languages = append(req.Languages, opt.Value)
		}
	}
	return req
}

func (m appModel) updateExport(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.current = screenStudy
	case key.Matches(keyMsg, keys.up):
		if m.export.idx > 0 {
			m.export.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.export.idx < m.export.rows()-1 {
			m.export.idx++
		}
	case key.Matches(keyMsg, keys.toggle):
		m.export = m.export.toggle()
	case key.Matches(keyMsg, keys.write), key.Matches(keyMsg, keys.copy):
		if m.export.running {
			return m, nil
		}
		m.export.running = true
		return m, m.cmdExport(m.export.request(), key.Matches(keyMsg, keys.copy))
	}

	return m, nil
}

func (e exportModel) toggle() exportModel {
	languages := make(map[string]bool, len(e.languages))
	for k, v := range e.languages {
		languages[k] = v
	}
	e.languages = languages

	switch {
	case e.idx == 0:
		e.specific = !e.specific
	case e.idx <= len(models.LanguageOptions):
		value := models.LanguageOptions[e.idx-1].Value
		e.languages[value] = !e.languages[value]
	default:
		e.filter = (e.filter + 1) % len(filterModes)
	}
	return e
}

func (m appModel) handleExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	m.export.running = false

	if msg.err != nil {
		switch {
		case errors.Is(msg.err, service.ErrNoLanguagesSelected), errors.Is(msg.err, service.ErrEmptyResult):
			m.notice = service.UserMessage(msg.err)
		default:
			m.notice = errorText(msg.err)
		}
		return m, nil
	}

	if msg.clipboard {
		return m, m.setStatus(fmt.Sprintf("Copied %d cards to clipboard", msg.result.Count))
	}
	return m, m.setStatus(fmt.Sprintf("Exported %d cards to %s", msg.result.Count, msg.result.Path))
}

func (m appModel) viewExport() string {
	e := m.export
	var b strings.Builder

	row := func(i int, text string) {
		line := cursorMark(i == e.idx) + text
		if i == e.idx {
			line = m.styles.selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	mode := "all cards"
	if e.specific {
		mode = "specific languages"
	}
	row(0, "Export: "+mode)

	for i, opt := range models.LanguageOptions {
		text := checkbox(e.languages[opt.Value]) + " " + opt.Label
		if !e.specific {
			text = m.styles.help.Render(text)
		}
		row(i+1, text)
	}

	filter := "Match on: " + string(filterModes[e.filter])
	if !e.specific {
		filter = m.styles.help.Render(filter)
	}
	row(e.rows()-1, filter)

	if e.running {
		b.WriteString("\nExporting...")
	}

	return m.renderPage("Export cards", strings.TrimRight(b.String(), "\n"),
		[]key.Binding{keys.up, keys.down, keys.toggle, keys.write, keys.copy, keys.esc})
}
