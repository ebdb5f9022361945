// Package internal contains core application wiring
package internal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"coursepulse/internal/config"
	"coursepulse/internal/database"
	"coursepulse/internal/logging"
)

// Application ties together configuration, logging, storage, and the HTTP
// server.
type Application struct {
	Config    *config.Config
	Logger    *slog.Logger
	DBManager *database.DBManager

	server *fiber.App
}

// NewApp creates a new application instance with default settings
func NewApp() (*Application, error) {
	return NewAppWithConfig(config.GetConfig())
}

// NewAppWithConfig creates a new application with the provided config
func NewAppWithConfig(cfg *config.Config) (*Application, error) {
	logger := logging.NewLogger(cfg)

	dbManager := database.NewDBManager(cfg, logger)
	if err := dbManager.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	server := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		DisableStartupMessage: cfg.IsProduction(),
	})
	MountAppRoutes(server, dbManager.GetConnection(), logger, cfg)

	return &Application{
		Config:    cfg,
		Logger:    logger,
		DBManager: dbManager,
		server:    server,
	}, nil
}

// Server exposes the fiber app, mainly for tests.
func (a *Application) Server() *fiber.App {
	return a.server
}

// StartAsync starts the HTTP listener in the background.
func (a *Application) StartAsync() error {
	addr := ":" + a.Config.AppPort
	a.Logger.Info("Starting HTTP server", slog.String("addr", addr))

	go func() {
		if err := a.server.Listen(addr); err != nil {
			a.Logger.Error("HTTP server stopped", slog.Any("error", err))
		}
	}()
	return nil
}

// Shutdown stops the HTTP server and checkpoints the database WAL.
func (a *Application) Shutdown(ctx context.Context) error {
	if err := a.server.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	if err := a.DBManager.CheckpointWAL("TRUNCATE"); err != nil {
		a.Logger.Warn("Failed to checkpoint WAL on shutdown", slog.Any("error", err))
	}
	return nil
}
