package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/quotebank/internal/app"
	"github.com/thenoetrevino/quotebank/internal/config"
	"github.com/thenoetrevino/quotebank/internal/logging"
	"github.com/thenoetrevino/quotebank/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	cfg := config.Default()
	cfg.ExportDir = t.TempDir()

	return db, app.New(db, cfg, app.WithLogger(logging.Discard()))
}

// CreateTestQuote wraps testutil.CreateTestQuote for CLI tests and returns the new ID
func CreateTestQuote(t *testing.T, db *sql.DB, quote, author string) int {
	t.Helper()
	return testutil.CreateTestQuote(t, db, quote, author, "", "").ID
}
