// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

func (m appModel) viewBuildInfo() string {
	var b strings.Builder

	b.WriteString("Application: go-flashcards\n")
	b.WriteString("Version: " + m.build.Version + "\n")
	b.WriteString("Date: " + m.build.Date + "\n")
	b.WriteString("Commit: " + m.build.Commit)

	return m.renderPage("About", b.String(), []key.Binding{keys.esc})
}
