package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/wingslabs/inventory-api/internal/config"
	"github.com/wingslabs/inventory-api/internal/platform/postgres"
	"github.com/wingslabs/inventory-api/internal/service"
	"github.com/wingslabs/inventory-api/internal/store"
)

// application holds the shared dependencies for the server.
type application struct {
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	productStore store.ProductStore
	userStore    store.UserStore

	// Service interfaces
	productService service.ProductService
	userService    service.UserService
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration, logger, and database connection that
// must be established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.productStore = postgres.NewPostgresProductStore(db, logger)
	app.userStore = postgres.NewPostgresUserStore(db, logger)

	// Initialize services
	app.productService = service.NewProductService(db, app.productStore, logger)
	app.userService = service.NewUserService(app.userStore, logger)

	logger.Info("Application components initialized")
	return app, nil
}

// Run wires up the router and starts the HTTP server. It blocks until the
// server shuts down.
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
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
