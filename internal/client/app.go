package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/adapter"
	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/service"
	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/internal/tui"
	"github.com/MKhiriev/go-flashcards/internal/workers"
	"github.com/MKhiriev/go-flashcards/models"
)

var ErrUnknownGateway = errors.New("unknown card gateway")

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp opens the client storages, selects the card gateway named in
// cfg.Adapter.Gateway and builds the services, workers and terminal UI.
func NewApp(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	gateway, err := newGateway(cfg.Adapter, storages, logger)
	if err != nil {
		storages.Close()
		return nil, err
	}

	services := service.NewClientServices(storages, gateway, logger)

	return &App{
		storages: storages,
		services: services,
		workers:  workers.NewClientWorkers(cfg.Workers, services.CardStore, logger),
		tui:      tui.New(services, build, logger),
		logger:   logger,
	}, nil
}

func newGateway(cfg config.ClientAdapter, storages *store.ClientStorages, logger *logger.Logger) (adapter.CardGateway, error) {
	switch cfg.Gateway {
	case config.GatewayRemote:
		gateway, err := adapter.NewHTTPCardGateway(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("create http card gateway: %w", err)
		}
		return gateway, nil
	case config.GatewayLocal:
		return adapter.NewLocalCardGateway(storages.CardRepository, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGateway, cfg.Gateway)
	}
}

// Run starts the background workers and blocks in the terminal UI until the
// user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("error closing client storages")
		}
	}()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Str("func", "App.Run").Msg("client started")

	if err := a.tui.Run(ctx); err != nil {
		return err
	}

	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}
