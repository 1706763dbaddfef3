// Package tui is the terminal View Layer of the flashcard client. It renders
// the current card, the card list, the card form and the settings, export
// and import screens, and turns key presses into calls on the client
// services. Every service call runs as a bubbletea command off the UI
// goroutine.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/service"
	"github.com/MKhiriev/go-flashcards/models"
)

type TUI struct {
	services *service.ClientServices
	build    models.AppBuildInfo
	logger   *logger.Logger
}

func New(services *service.ClientServices, build models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, build: build, logger: logger}
}

// Run shows the application until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(newAppModel(ctx, t.services, t.build), tea.WithAltScreen(), tea.WithContext(ctx))

	// changes made outside the UI (background refresh) trigger a re-render
	t.services.CardStore.OnChange(func() {
		go program.Send(cardsChangedMsg{})
	})

	if _, err := program.Run(); err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui stopped with error")
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
