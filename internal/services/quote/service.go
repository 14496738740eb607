package quote

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/quotebank/internal/database"
	"github.com/thenoetrevino/quotebank/internal/models"
)

// Service defines all quote-related business operations
type Service interface {
	// Read operations
	GetQuote(ctx context.Context, id int) (*models.Quote, error)
	ListQuotes(ctx context.Context) ([]*models.Quote, error)
	SearchQuotes(ctx context.Context, term string) ([]*models.Quote, error)
	CountQuotes(ctx context.Context) (int, error)

	// Write operations
	CreateQuote(ctx context.Context, req CreateQuoteRequest) (*models.Quote, error)
	UpdateQuote(ctx context.Context, req UpdateQuoteRequest) error
	DeleteQuote(ctx context.Context, id int) error

	// Export
	ExportQuotes(ctx context.Context, quotes []*models.Quote, path string) error
	WriteQuotes(ctx context.Context, w io.Writer, quotes []*models.Quote) error
}

// CreateQuoteRequest encapsulates all data needed to create a quote.
// Fields are stored exactly as given.
type CreateQuoteRequest struct {
	Quote    string `json:"quote" validate:"required"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Source   string `json:"source"`
}

// UpdateQuoteRequest encapsulates all data needed to update a quote.
// Every mutable field is replaced.
type UpdateQuoteRequest struct {
	ID       int    `json:"id" validate:"gt=0"`
	Quote    string `json:"quote" validate:"required"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Source   string `json:"source"`
}

// forValidation returns a copy with the quote trimmed, so whitespace-only
// text fails the required check
func (r CreateQuoteRequest) forValidation() CreateQuoteRequest {
	r.Quote = strings.TrimSpace(r.Quote)
	return r
}

func (r UpdateQuoteRequest) forValidation() UpdateQuoteRequest {
	r.Quote = strings.TrimSpace(r.Quote)
	return r
}

// service implements Service interface
type service struct {
	repo     database.DataStore
	validate *validator.Validate
}

// NewService creates a new quote service
func NewService(repo database.DataStore) Service {
	return &service{
		repo:     repo,
		validate: newValidator(),
	}
}

// ValidateCreate checks a create request without touching the store.
// Interfaces call it to reject input before submitting.
func ValidateCreate(req CreateQuoteRequest) error {
	return validateStruct(newValidator(), req.forValidation())
}

// CreateQuote validates the request and stores a new quote
func (s *service) CreateQuote(ctx context.Context, req CreateQuoteRequest) (*models.Quote, error) {
	if err := validateStruct(s.validate, req.forValidation()); err != nil {
		return nil, err
	}

	q, err := s.repo.Create(ctx, req.Quote, req.Author, req.Category, req.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote: %w", err)
	}

	slog.Debug("quote created", "id", q.ID)
	return q, nil
}

// GetQuote retrieves a single quote
func (s *service) GetQuote(ctx context.Context, id int) (*models.Quote, error) {
	if id <= 0 {
		return nil, ErrInvalidQuoteID
	}
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return q, nil
}

// ListQuotes retrieves all quotes, newest first
func (s *service) ListQuotes(ctx context.Context) ([]*models.Quote, error) {
	quotes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

// SearchQuotes retrieves quotes matching term. A blank term lists everything.
func (s *service) SearchQuotes(ctx context.Context, term string) ([]*models.Quote, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.ListQuotes(ctx)
	}
	quotes, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search quotes: %w", err)
	}
	return quotes, nil
}

// CountQuotes returns the number of stored quotes
func (s *service) CountQuotes(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count quotes: %w", err)
	}
	return n, nil
}

// UpdateQuote validates the request and replaces the quote's mutable fields
func (s *service) UpdateQuote(ctx context.Context, req UpdateQuoteRequest) error {
	if req.ID <= 0 {
		return ErrInvalidQuoteID
	}
	if err := validateStruct(s.validate, req.forValidation()); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, req.ID, req.Quote, req.Author, req.Category, req.Source); err != nil {
		return fmt.Errorf("failed to update quote: %w", err)
	}

	slog.Debug("quote updated", "id", req.ID)
	return nil
}

// DeleteQuote removes a quote
func (s *service) DeleteQuote(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidQuoteID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
	}

	slog.Debug("quote deleted", "id", id)
	return nil
}

// ExportQuotes writes quotes to a CSV file at path. When quotes is nil every
// stored quote is exported.
func (s *service) ExportQuotes(ctx context.Context, quotes []*models.Quote, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrEmptyExportPath
	}

	quotes, err := s.resolveExport(ctx, quotes)
	if err != nil {
		return err
	}

	if err := s.repo.ExportCSV(quotes, path); err != nil {
		return fmt.Errorf("failed to export quotes: %w", err)
	}
	return nil
}

// WriteQuotes writes quotes as CSV to w. When quotes is nil every stored quote is written.
func (s *service) WriteQuotes(ctx context.Context, w io.Writer, quotes []*models.Quote) error {
	quotes, err := s.resolveExport(ctx, quotes)
	if err != nil {
		return err
	}

	if err := s.repo.WriteCSV(w, quotes); err != nil {
		return fmt.Errorf("failed to write quotes: %w", err)
	}
	return nil
}

func (s *service) resolveExport(ctx context.Context, quotes []*models.Quote) ([]*models.Quote, error) {
	if quotes != nil {
		return quotes, nil
	}
	return s.ListQuotes(ctx)
}
