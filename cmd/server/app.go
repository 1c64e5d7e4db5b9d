package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flashdeck/flashdeck-api/internal/config"
	"github.com/flashdeck/flashdeck-api/internal/export"
	"github.com/flashdeck/flashdeck-api/internal/platform/postgres"
	"github.com/flashdeck/flashdeck-api/internal/platform/sutra"
	"github.com/flashdeck/flashdeck-api/internal/service"
)

// application holds the long-lived dependencies of the server. The storage
// pool is created once at startup, injected into the services, and released
// by cleanup during shutdown.
type application struct {
	config        *config.Config
	logger        *slog.Logger
	pool          *pgxpool.Pool
	deckService   service.DeckService
	statusService service.StatusService
}

// newApplication connects to the database, applies migrations, and builds
// the service graph.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	pool, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := postgres.RunMigrations(ctx, cfg.Database.URL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	deckStore := postgres.NewDeckStore(pool, logger)
	statusStore := postgres.NewStatusStore(pool, logger)

	chatClient := sutra.NewClient(cfg.LLM.BaseURL, logger)
	exporter := export.NewExporter()

	return &application{
		config:        cfg,
		logger:        logger,
		pool:          pool,
		deckService:   service.NewDeckService(deckStore, chatClient, exporter, cfg.LLM, logger),
		statusService: service.NewStatusService(statusStore, logger),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.pool != nil {
		app.pool.Close()
		app.logger.Info("database pool closed")
	}
}
