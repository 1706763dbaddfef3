package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-flashcards/models"
)

const (
	settingCardSide = iota
	settingQuickEdit
	settingTheme
	settingCount
)

type settingsModel struct {
	idx int
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.current = screenStudy
	case key.Matches(keyMsg, keys.up):
		if m.settingsView.idx > 0 {
			m.settingsView.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.settingsView.idx < settingCount-1 {
			m.settingsView.idx++
		}
	case key.Matches(keyMsg, keys.toggle):
		patch := togglePatch(m.settings, m.settingsView.idx)
		// applied at once; the saved result replaces it when persisted
		m.applySettings(patch.Apply(m.settings))
		return m, m.cmdSaveSettings(patch)
	}

	return m, nil
}

// togglePatch flips the setting at row idx.
func togglePatch(current models.Settings, idx int) models.SettingsPatch {
	switch idx {
	case settingCardSide:
		side := current.DefaultCardSide.Opposite()
		return models.SettingsPatch{DefaultCardSide: &side}
	case settingQuickEdit:
		enabled := !current.RightClickEditEnabled
		return models.SettingsPatch{RightClickEditEnabled: &enabled}
	default:
		theme := models.ThemeDark
		if current.Theme != nil && *current.Theme == models.ThemeDark {
			theme = models.ThemeLight
		}
		return models.SettingsPatch{Theme: &theme}
	}
}

func (m appModel) viewSettings() string {
	theme := "terminal"
	if m.settings.Theme != nil {
		theme = string(*m.settings.Theme)
	}

	rows := [settingCount]string{
		fmt.Sprintf("Default card side:  %s", m.settings.DefaultCardSide),
		fmt.Sprintf("Quick edit (e):     %s", checkbox(m.settings.RightClickEditEnabled)),
		fmt.Sprintf("Theme:              %s", theme),
	}

	var b strings.Builder
	for i, row := range rows {
		line := cursorMark(i == m.settingsView.idx) + row
		if i == m.settingsView.idx {
			line = m.styles.selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return m.renderPage("Settings", strings.TrimRight(b.String(), "\n"),
		[]key.Binding{keys.up, keys.down, keys.toggle, keys.esc})
}
