package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/quotebank/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// :memory: databases are per-connection
	db.SetMaxOpenConns(1)

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile opens a file-based database through InitDB for persistence tests
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "quotes.db")

	db, err := InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to init test database: %v", err)
	}
	return db, path
}

// ============================================================================
// DATA HELPERS
// ============================================================================

// createTestQuote inserts a quote and fails the test on error
func createTestQuote(t *testing.T, repo *Repository, quote, author, category, source string) *models.Quote {
	t.Helper()
	q, err := repo.Create(context.Background(), quote, author, category, source)
	if err != nil {
		t.Fatalf("Failed to create quote %q: %v", quote, err)
	}
	return q
}

// countQuotes counts rows directly, bypassing the repository
func countQuotes(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM quotes").Scan(&n); err != nil {
		t.Fatalf("Failed to count quotes: %v", err)
	}
	return n
}
