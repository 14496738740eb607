package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quotebank/internal/app"
	"github.com/thenoetrevino/quotebank/internal/config"
	"github.com/thenoetrevino/quotebank/internal/logging"
	"github.com/thenoetrevino/quotebank/internal/tui/core"
)

// Options override configuration for a single launch
type Options struct {
	// DBPath replaces the configured database path when set
	DBPath string
}

// Launch starts the TUI application and blocks until it exits
func Launch(parent context.Context, opts Options) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.DBPath != "" {
		cfg.DatabasePath = opts.DBPath
	}

	// Initialize logging to file before anything else touches the terminal
	logCloser, err := logging.Init(logging.Options{Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logCloser.Close()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := app.Open(ctx, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return err
	}

	// database cleanup
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	slog.Info("starting quotebank", "database", cfg.DatabasePath)

	tuiApp := core.New(ctx, application)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received, cleaning up")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
