package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/attire-labs/wardrobe-api/internal/config"
	"github.com/attire-labs/wardrobe-api/internal/platform/postgres"
	"github.com/attire-labs/wardrobe-api/internal/service/auth"
	"github.com/attire-labs/wardrobe-api/internal/store"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (interfaces, so tests can substitute in-memory doubles)
	userStore store.UserStore
	itemStore store.ItemStore

	// Services
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// newApplication creates an application instance with all dependencies
// initialized. It accepts the core dependencies that must be established
// before application wiring: configuration, logger, and the database
// connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.userStore = postgres.NewUserStore(db, hasher)
	app.itemStore = postgres.NewItemStore(db)

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
