// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/quotebank/internal/models"
)

// QuoteReader defines read operations for quotes.
type QuoteReader interface {
	GetByID(ctx context.Context, id int) (*models.Quote, error)
	GetAll(ctx context.Context) ([]*models.Quote, error)
	Search(ctx context.Context, term string) ([]*models.Quote, error)
	Count(ctx context.Context) (int, error)
}

// QuoteWriter defines write operations for quotes.
type QuoteWriter interface {
	Create(ctx context.Context, quote, author, category, source string) (*models.Quote, error)
	Update(ctx context.Context, id int, quote, author, category, source string) error
	Delete(ctx context.Context, id int) error
}

// QuoteRepository combines all quote-related operations.
type QuoteRepository interface {
	QuoteReader
	QuoteWriter
}
