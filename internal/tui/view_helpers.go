package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

const (
	uiDivider = "──────────────────────────────────────────────────────"
	cardWidth = 50
)

func (m appModel) renderPage(title, body string, bindings []key.Binding) string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	b.WriteString(body)
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(m.styles.status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(renderHelp(m.help, bindings)))

	return b.String()
}

func renderHelp(h help.Model, bindings []key.Binding) string {
	return h.ShortHelpView(bindings)
}

func valueOrDash(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "-"
	}
	return *v
}

// fitText shortens v to max runes, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func cursorMark(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}
