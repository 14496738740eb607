package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quotebank/internal/app"
	"github.com/thenoetrevino/quotebank/internal/cli/styles"
	"github.com/thenoetrevino/quotebank/internal/config"
	"github.com/thenoetrevino/quotebank/internal/logging"
)

type contextKey string

const appKey contextKey = "app"

// WithApp returns a context carrying an already built App.
// Commands run with such a context use it instead of opening the database,
// and leave closing it to the caller.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	owned  bool
	logger io.Closer
}

// NewCLI returns the App injected with WithApp, or loads the configuration
// and opens the database. dbPath, when set, overrides the configured path.
func NewCLI(ctx context.Context, dbPath string) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	styles.Init(cfg.ColorScheme)

	closer, err := logging.Init(logging.Options{Level: cfg.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	return &CLI{
		App:    application,
		owned:  true,
		logger: closer,
	}, nil
}

// Close cleans up CLI resources. An injected App is left open.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.logger != nil {
		if cerr := c.logger.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Setup builds the formatter from the global flags and opens the CLI.
// Initialization failures are reported through the formatter.
func Setup(cmd *cobra.Command) (*CLI, *OutputFormatter, error) {
	formatter := FormatterFromCmd(cmd)
	dbPath, _ := cmd.Flags().GetString(FlagDB)

	c, err := NewCLI(cmd.Context(), dbPath)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return nil, nil, &CommandError{Code: ExitError, Err: err}
	}
	return c, formatter, nil
}
