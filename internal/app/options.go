package app

import (
	"log/slog"

	"github.com/thenoetrevino/quotebank/internal/database"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	repo   database.DataStore
	logger *slog.Logger
}

// WithRepository replaces the SQLite repository, e.g. with a test double
func WithRepository(repo database.DataStore) Option {
	return func(cfg *appConfig) {
		cfg.repo = repo
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

func resolveOptions(opts []Option) appConfig {
	var cfg appConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg
}
