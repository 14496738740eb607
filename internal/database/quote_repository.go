package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/quotebank/internal/models"
)

const quoteColumns = `id, quote, author, category, source, created_at`

// QuoteRepo handles all quote-related database operations.
type QuoteRepo struct {
	db *sql.DB
}

// NewQuoteRepo creates a QuoteRepo over an open database
func NewQuoteRepo(db *sql.DB) *QuoteRepo {
	return &QuoteRepo{db: db}
}

// Create inserts a new quote. The ID and creation time are assigned here.
func (r *QuoteRepo) Create(ctx context.Context, quote, author, category, source string) (*models.Quote, error) {
	if strings.TrimSpace(quote) == "" {
		return nil, models.ErrEmptyQuote
	}

	createdAt := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO quotes (quote, author, category, source, created_at) VALUES (?, ?, ?, ?, ?)`,
		quote, author, category, source, createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting quote: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted quote id: %w", err)
	}

	return &models.Quote{
		ID:        int(id),
		Quote:     quote,
		Author:    author,
		Category:  category,
		Source:    source,
		CreatedAt: createdAt,
	}, nil
}

// GetByID retrieves a quote by its ID.
// Returns models.ErrQuoteNotFound if no such quote exists.
func (r *QuoteRepo) GetByID(ctx context.Context, id int) (*models.Quote, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+quoteColumns+` FROM quotes WHERE id = ?`, id)

	quote, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("quote %d: %w", id, models.ErrQuoteNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying quote %d: %w", id, err)
	}
	return quote, nil
}

// GetAll retrieves every quote, newest first
func (r *QuoteRepo) GetAll(ctx context.Context) ([]*models.Quote, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+quoteColumns+` FROM quotes ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying quotes: %w", err)
	}
	return collectQuotes(rows)
}

// Search retrieves quotes whose text, author or category contains term,
// ignoring case. Wildcard characters in term match literally.
func (r *QuoteRepo) Search(ctx context.Context, term string) ([]*models.Quote, error) {
	pattern := containsPattern(foldCase(term))
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+quoteColumns+` FROM quotes
		WHERE `+casefoldFunc+`(quote) LIKE ? ESCAPE '\'
		   OR `+casefoldFunc+`(author) LIKE ? ESCAPE '\'
		   OR `+casefoldFunc+`(category) LIKE ? ESCAPE '\'
		ORDER BY created_at DESC, id DESC`,
		pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("searching quotes for %q: %w", term, err)
	}
	return collectQuotes(rows)
}

// Count returns the number of stored quotes
func (r *QuoteRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quotes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting quotes: %w", err)
	}
	return count, nil
}

// Update replaces every mutable field of a quote. created_at is never touched.
// Returns models.ErrQuoteNotFound if no such quote exists.
func (r *QuoteRepo) Update(ctx context.Context, id int, quote, author, category, source string) error {
	if strings.TrimSpace(quote) == "" {
		return models.ErrEmptyQuote
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE quotes SET quote = ?, author = ?, category = ?, source = ? WHERE id = ?`,
		quote, author, category, source, id,
	)
	if err != nil {
		return fmt.Errorf("updating quote %d: %w", id, err)
	}
	return requireAffected(result, id)
}

// Delete removes a quote.
// Returns models.ErrQuoteNotFound if no such quote exists.
func (r *QuoteRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting quote %d: %w", id, err)
	}
	return requireAffected(result, id)
}

func requireAffected(result sql.Result, id int) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows for quote %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("quote %d: %w", id, models.ErrQuoteNotFound)
	}
	return nil
}

func scanQuote(s rowScanner) (*models.Quote, error) {
	var (
		q                        models.Quote
		author, category, source sql.NullString
		createdAt                sql.NullTime
	)
	if err := s.Scan(&q.ID, &q.Quote, &author, &category, &source, &createdAt); err != nil {
		return nil, err
	}
	q.Author = NullStringToString(author)
	q.Category = NullStringToString(category)
	q.Source = NullStringToString(source)
	if createdAt.Valid {
		q.CreatedAt = createdAt.Time
	}
	return &q, nil
}

func collectQuotes(rows *sql.Rows) ([]*models.Quote, error) {
	defer rows.Close()

	quotes := []*models.Quote{}
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning quote row: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quote rows: %w", err)
	}
	return quotes, nil
}
