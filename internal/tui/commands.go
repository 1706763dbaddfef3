// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-flashcards/models"
)

const statusTTL = 3 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func (m appModel) cmdLoadCards() tea.Cmd {
	ctx, cards := m.ctx, m.services.CardStore
	return func() tea.Msg {
		return cardsLoadedMsg{err: cards.Load(ctx)}
	}
}

func (m appModel) cmdLoadSettings() tea.Cmd {
	ctx, settings := m.ctx, m.services.SettingsStore
	return func() tea.Msg {
		return settingsLoadedMsg{settings: settings.Load(ctx)}
	}
}

func (m appModel) cmdSaveSettings(patch models.SettingsPatch) tea.Cmd {
	ctx, settings := m.ctx, m.services.SettingsStore
	return func() tea.Msg {
		return settingsSavedMsg{settings: settings.Update(ctx, patch)}
	}
}

func (m appModel) cmdSubmitCard(token string, id int64, draft models.CardFields) tea.Cmd {
	ctx, form := m.ctx, m.services.CardForm
	return func() tea.Msg {
		if id == 0 {
			card, err := form.SubmitAdd(ctx, draft)
			return cardSavedMsg{token: token, adding: true, card: card, err: err}
		}
		card, err := form.SubmitUpdate(ctx, id, draft)
		return cardSavedMsg{token: token, card: card, err: err}
	}
}

func (m appModel) cmdDeleteCard(id int64) tea.Cmd {
	ctx, cards := m.ctx, m.services.CardStore
	return func() tea.Msg {
		return cardDeletedMsg{id: id, err: cards.Remove(ctx, id)}
	}
}

func (m appModel) cmdExport(req models.ExportRequest, toClipboard bool) tea.Cmd {
	ctx, svc := m.ctx, m.services.ExportService
	return func() tea.Msg {
		if toClipboard {
			res, err := svc.CopyToClipboard(ctx, req)
			return exportDoneMsg{result: res, clipboard: true, err: err}
		}
		res, err := svc.Export(ctx, req)
		return exportDoneMsg{result: res, err: err}
	}
}

func (m appModel) cmdImport(path string) tea.Cmd {
	ctx, svc := m.ctx, m.services.ImportService
	return func() tea.Msg {
		res, err := svc.Import(ctx, path)
		return importDoneMsg{result: res, err: err}
	}
}

func cmdCopyText(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

// setStatus shows a transient status line and schedules its removal.
func (m *appModel) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
