package database

import (
	"io"

	"github.com/thenoetrevino/quotebank/internal/models"
)

// DataStore defines the unified interface for all data operations needed by the
// services: the quote repository plus exporting records out of the store.
// This interface enables mocking with testify for unit testing.
type DataStore interface {
	QuoteRepository
	Exporter
}

// Exporter writes quote records as delimited text.
type Exporter interface {
	ExportCSV(quotes []*models.Quote, path string) error
	WriteCSV(w io.Writer, quotes []*models.Quote) error
}
