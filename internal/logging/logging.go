package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults
const (
	MaxSizeMB  = 10
	MaxBackups = 3
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Options controls where and how much the application logs
type Options struct {
	// Path is the log file. Empty means ~/.quotebank/logs/quotebank.log.
	Path  string
	Level string
}

// DefaultPath returns ~/.quotebank/logs/quotebank.log
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".quotebank", "logs", "quotebank.log"), nil
}

// ParseLevel maps a config level name to a slog level. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init initializes the logging system, writing logs to a rotating file.
// Uses text format for human readability. The returned closer flushes and
// closes the log file.
func Init(opts Options) (io.Closer, error) {
	path := opts.Path
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
		Compress:   false,
	}

	Logger = New(writer, opts.Level)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(writer)
	log.SetFlags(log.LstdFlags)

	return writer, nil
}

// New builds a text logger writing to w at the named level
func New(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler)
}

// Discard returns a logger that drops everything. Used by tests and quiet CLI runs.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
