package state

import (
	"github.com/thenoetrevino/quotebank/internal/models"
)

// ListState holds the quotes currently shown in the table.
// Every refresh replaces Quotes with a fresh store query.
type ListState struct {
	quotes []*models.Quote
	total  int
	cursor int
}

// NewListState creates an empty ListState.
func NewListState() *ListState {
	return &ListState{
		quotes: []*models.Quote{},
	}
}

// Quotes returns the listed quotes.
func (s *ListState) Quotes() []*models.Quote {
	return s.quotes
}

// SetQuotes replaces the listed quotes and keeps the cursor in range.
func (s *ListState) SetQuotes(quotes []*models.Quote) {
	if quotes == nil {
		quotes = []*models.Quote{}
	}
	s.quotes = quotes
	s.clampCursor()
}

// Total returns the number of stored quotes, regardless of filtering.
func (s *ListState) Total() int {
	return s.total
}

// SetTotal updates the stored quote count.
func (s *ListState) SetTotal(n int) {
	s.total = n
}

// Len returns the number of listed quotes.
func (s *ListState) Len() int {
	return len(s.quotes)
}

// Cursor returns the selected row index.
func (s *ListState) Cursor() int {
	return s.cursor
}

// SetCursor selects a row, clamped to the list.
func (s *ListState) SetCursor(i int) {
	s.cursor = i
	s.clampCursor()
}

// Selected returns the selected quote, or nil when the list is empty.
func (s *ListState) Selected() *models.Quote {
	if len(s.quotes) == 0 {
		return nil
	}
	return s.quotes[s.cursor]
}

// IndexOf returns the row holding the quote with id, or -1.
func (s *ListState) IndexOf(id int) int {
	for i, q := range s.quotes {
		if q.ID == id {
			return i
		}
	}
	return -1
}

func (s *ListState) clampCursor() {
	if s.cursor >= len(s.quotes) {
		s.cursor = len(s.quotes) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}
