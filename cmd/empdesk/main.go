package main

import (
	"bufio"
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/api"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/config"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/service"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/session"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/ui"
)

func main() {
	// Structured logger: pretty console in dev, JSON in production
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	store := session.NewStore(cfg.CredentialsPath)
	if err := store.Load(); err != nil {
		log.Fatal().Err(err).Msg("failed to load credentials")
	}

	client := api.New(cfg.APIBaseURL, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second, store)

	in := bufio.NewReader(os.Stdin)
	out := os.Stdout
	confirm := ui.NewConfirmer(in, out)

	// Composition root: all surfaces share one workflow so the per-record
	// in-flight guard holds across them.
	workflow := service.NewWorkflow(client, confirm)
	sessions := service.NewSessionService(client, store)
	directory := service.NewDirectoryService(client, workflow, confirm)
	admin := service.NewAdminService(client, workflow)

	app := ui.New(sessions, directory, admin, cfg.ExportDir, in, out)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("client exited with error")
	}
	log.Info().Msg("goodbye")
}
