package database

import (
	"database/sql"
)

// Repository provides a unified interface to all data operations.
// It composes the quote repository with the exporter using struct embedding.
type Repository struct {
	*QuoteRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		QuoteRepo: NewQuoteRepo(db),
	}
}

var _ DataStore = (*Repository)(nil)
