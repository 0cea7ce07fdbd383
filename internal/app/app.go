// Package app initializes and orchestrates the main components of the
// Review Pilot application.
package app

import (
	"context"
	"log/slog"

	"github.com/deepakkumardewani/review-pilot/internal/config"
	"github.com/deepakkumardewani/review-pilot/internal/server"
)

// App holds the main application components.
type App struct {
	ctx    context.Context
	cfg    *config.Config
	server *server.Server
	logger *slog.Logger
}

// NewApp assembles the application from its already-wired dependencies.
func NewApp(ctx context.Context, cfg *config.Config, srv *server.Server, logger *slog.Logger) *App {
	return &App{
		ctx:    ctx,
		cfg:    cfg,
		server: srv,
		logger: logger,
	}
}

// Start runs the HTTP server and blocks until shutdown.
func (a *App) Start() error {
	a.logger.Info("starting Review Pilot",
		"server_port", a.cfg.Server.Port,
		"llm_provider", a.cfg.AI.Provider,
		"generator_model", a.cfg.AI.GeneratorModel)

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.logger.Info("shutting down Review Pilot services")

	if err := a.server.Stop(); err != nil {
		a.logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}

	a.logger.Info("Review Pilot stopped successfully")
	return nil
}
