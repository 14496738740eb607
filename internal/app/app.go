package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/quotebank/internal/config"
	"github.com/thenoetrevino/quotebank/internal/database"
	quoteservice "github.com/thenoetrevino/quotebank/internal/services/quote"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db     *sql.DB
	ownsDB bool

	// Repository layer (direct database access)
	repo database.DataStore

	Config *config.Config
	Logger *slog.Logger

	// Service layer (business logic)
	QuoteService quoteservice.Service
}

// New creates an App around an already opened database.
// The caller keeps ownership of db.
func New(db *sql.DB, cfg *config.Config, opts ...Option) *App {
	o := resolveOptions(opts)
	if cfg == nil {
		cfg = config.Default()
	}

	repo := o.repo
	if repo == nil {
		repo = database.NewRepository(db)
	}

	return &App{
		db:           db,
		repo:         repo,
		Config:       cfg,
		Logger:       o.logger,
		QuoteService: quoteservice.NewService(repo),
	}
}

// Open opens the database named by cfg (or the default location) and builds
// the App around it. Close releases the database.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	path := cfg.DatabasePath
	if path == "" {
		p, err := database.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
		path = p
	}

	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a := New(db, cfg, opts...)
	a.ownsDB = true
	a.Logger.Debug("database opened", "path", path)
	return a, nil
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the database when the App opened it
func (a *App) Close() error {
	if !a.ownsDB || a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	a.db = nil
	return nil
}
