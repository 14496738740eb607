package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the quotes table and its index if they do not exist.
// The table definition matches files written by earlier versions of the app,
// so existing databases open unchanged.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS quotes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			quote TEXT NOT NULL,
			author TEXT,
			category TEXT,
			source TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_quotes_created_at
		ON quotes(created_at)
	`)
	return err
}
