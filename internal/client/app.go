package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/events"
	"github.com/MKhiriev/go-notes-keeper/internal/listsync"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/internal/workers"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// screens runs the interactive part of the application until the user quits.
type screens func(ctx context.Context, services *service.LocalServices, bus *events.Bus, notes *listsync.Synchronizer) error

type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	screens   screens
}

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("client config is nil")
	}

	a := &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
	}
	a.screens = a.runTUI
	return a, nil
}

// Run opens the store, seeds the welcome note on first launch, starts the
// background workers and blocks in the terminal UI. On return the workers
// are stopped before the store is closed.
func (a *App) Run(ctx context.Context) error {
	storages, err := store.NewLocalStorages(ctx, a.cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("open local storage: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			a.logger.Err(err).Msg("error closing local storage")
		}
	}()

	services := service.NewLocalServices(storages, a.cfg, a.logger)

	note, seeded, err := services.OnboardingService.SeedWelcomeNote(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("welcome note was not created, retrying on next launch")
	} else if seeded {
		a.logger.Info().Str("note_id", note.ID).Msg("first launch, welcome note created")
	}

	bus := events.NewBus(a.logger)
	notes := listsync.New(nil, listsync.Strictness(a.cfg.App.DeleteStrictness), a.logger)
	unsubscribe := bus.Subscribe(notes)
	defer unsubscribe()

	background := workers.NewWorkers(
		workers.Every(services.AttachmentCleanupJob, a.cfg.Workers.CleanupInterval),
	)
	background.Start(ctx)
	defer background.Stop()

	a.logger.Info().
		Str("db", a.cfg.Storage.DB.DSN).
		Str("commit_policy", a.cfg.App.CommitPolicy).
		Str("delete_strictness", a.cfg.App.DeleteStrictness).
		Msg("notes application started")

	return a.screens(ctx, services, bus, notes)
}

func (a *App) runTUI(ctx context.Context, services *service.LocalServices, bus *events.Bus, notes *listsync.Synchronizer) error {
	ui, err := tui.New(services, bus, notes, a.buildInfo, a.logger)
	if err != nil {
		return fmt.Errorf("create terminal ui: %w", err)
	}
	return ui.Run(ctx)
}
