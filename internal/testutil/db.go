package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"testing"

	"github.com/thenoetrevino/quotebank/internal/database"
	"github.com/thenoetrevino/quotebank/internal/models"
	_ "modernc.org/sqlite"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	return <-outC
}

// SetupTestDB creates an in-memory quote database with the full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// CreateTestQuote inserts a quote directly through the repository and returns it
func CreateTestQuote(t *testing.T, db *sql.DB, quote, author, category, source string) *models.Quote {
	t.Helper()
	q, err := database.NewRepository(db).Create(context.Background(), quote, author, category, source)
	if err != nil {
		t.Fatalf("Failed to create test quote: %v", err)
	}
	return q
}

// QuoteCount returns the number of rows in the quotes table
func QuoteCount(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM quotes").Scan(&n); err != nil {
		t.Fatalf("Failed to count quotes: %v", err)
	}
	return n
}
