package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-flashcards/models"
)

type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	danger  lipgloss.Color
	surface lipgloss.Color
}

var (
	lightPalette = palette{text: "#1f2933", muted: "#7b8794", accent: "#3c6ff0", danger: "#c62828", surface: "#f5f7fa"}
	darkPalette  = palette{text: "#e4e7eb", muted: "#9aa5b1", accent: "#7aa2f7", danger: "#f7768e", surface: "#1a1b26"}
)

type styles struct {
	app      lipgloss.Style
	title    lipgloss.Style
	help     lipgloss.Style
	err      lipgloss.Style
	status   lipgloss.Style
	selected lipgloss.Style
	card     lipgloss.Style
	cardBack lipgloss.Style
	overlay  lipgloss.Style
}

// newStyles builds the styles for theme. A nil theme uses the terminal's own
// colours.
func newStyles(theme *models.Theme) styles {
	s := styles{
		app:      lipgloss.NewStyle().Padding(1, 2),
		title:    lipgloss.NewStyle().Bold(true),
		help:     lipgloss.NewStyle().Faint(true),
		err:      lipgloss.NewStyle().Bold(true),
		status:   lipgloss.NewStyle().Italic(true),
		selected: lipgloss.NewStyle().Bold(true),
		card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(2, 4).Width(cardWidth).Align(lipgloss.Center),
		overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
	s.cardBack = s.card.BorderStyle(lipgloss.DoubleBorder())

	if theme == nil {
		return s
	}

	p := lightPalette
	if *theme == models.ThemeDark {
		p = darkPalette
	}

	s.app = s.app.Foreground(p.text).Background(p.surface)
	s.title = s.title.Foreground(p.accent)
	s.help = s.help.Foreground(p.muted)
	s.err = s.err.Foreground(p.danger)
	s.status = s.status.Foreground(p.muted)
	s.selected = s.selected.Foreground(p.accent)
	s.card = s.card.BorderForeground(p.accent)
	s.cardBack = s.cardBack.BorderForeground(p.muted)
	s.overlay = s.overlay.BorderForeground(p.danger)

	return s
}
