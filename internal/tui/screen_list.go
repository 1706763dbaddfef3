package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type listModel struct {
	idx int
}

func (l *listModel) clamp(length int) {
	if l.idx >= length {
		l.idx = length - 1
	}
	if l.idx < 0 {
		l.idx = 0
	}
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	length := m.services.CardStore.Len()
	m.list.clamp(length)
	card, hasCard := m.services.CardStore.Get(m.list.idx)

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.current = screenStudy
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < length-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if hasCard {
			m.cursor.GoTo(m.list.idx, length)
			m.current = screenStudy
		}
	case key.Matches(keyMsg, keys.edit):
		if hasCard {
			m.form = newFormModel(&card, screenList)
			m.current = screenForm
			return m, m.form.focusCmd()
		}
	case key.Matches(keyMsg, keys.delete):
		if hasCard {
			m.confirmDelete = &card
		}
	}

	return m, nil
}

func (m appModel) viewList() string {
	cards := m.services.CardStore.Cards()

	var b strings.Builder
	if len(cards) == 0 {
		b.WriteString("No cards")
	}
	for i, c := range cards {
		line := fmt.Sprintf("%s%-22s %-22s %s → %s  [%s]", cursorMark(i == m.list.idx),
			fitText(c.Front, 20), fitText(c.Back, 20), c.FrontLang, c.BackLang, valueOrDash(c.Category))
		if i == m.list.idx {
			line = m.styles.selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return m.renderPage(fmt.Sprintf("All cards (%d)", len(cards)), strings.TrimRight(b.String(), "\n"),
		[]key.Binding{keys.up, keys.down, keys.enter, keys.edit, keys.delete, keys.esc})
}
