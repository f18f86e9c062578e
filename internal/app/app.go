// Package app holds the assembled planner application: configuration,
// planner and HTTP server.
package app

import (
	"log/slog"

	"github.com/sevigo/action-planner/internal/config"
	"github.com/sevigo/action-planner/internal/planner"
	"github.com/sevigo/action-planner/internal/server"
)

// App holds the main application components.
type App struct {
	Cfg     *config.Config
	Planner *planner.ActionPlanner
	server  *server.Server
	logger  *slog.Logger
}

// NewApp bundles the already constructed components.
func NewApp(cfg *config.Config, p *planner.ActionPlanner, srv *server.Server, logger *slog.Logger) *App {
	return &App{
		Cfg:     cfg,
		Planner: p,
		server:  srv,
		logger:  logger,
	}
}

// Start runs the HTTP server and blocks until it stops.
func (a *App) Start() error {
	a.logger.Info("starting action planner",
		"server_port", a.Cfg.ServerPort,
		"llm_provider", a.Cfg.LLMProvider,
		"model", a.Cfg.GeneratorModelName,
		"max_tokens", a.Cfg.Planner.MaxTokens)

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.logger.Info("shutting down action planner")

	if err := a.server.Stop(); err != nil {
		a.logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}

	a.logger.Info("action planner stopped successfully")
	return nil
}
