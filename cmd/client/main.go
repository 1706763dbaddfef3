package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-flashcards/internal/client"
	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		// the terminal is still ours until the UI starts
		logger.NewLogger("flashcards-client").Fatal().Err(err).Msg("error getting configs")
	}

	// the UI owns stdout, so the client logs to a file
	log := logger.NewClientLogger("flashcards-client", cfg.App.LogFile)
	log.Info().Any("build", build).Msg("starting client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
