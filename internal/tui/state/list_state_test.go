package state

import (
	"testing"

	"github.com/thenoetrevino/quotebank/internal/models"
)

func quotes(ids ...int) []*models.Quote {
	out := make([]*models.Quote, len(ids))
	for i, id := range ids {
		out[i] = &models.Quote{ID: id, Quote: "q"}
	}
	return out
}

// TestListState_EmptySelection ensures an empty list has no selection.
func TestListState_EmptySelection(t *testing.T) {
	s := NewListState()
	if s.Selected() != nil {
		t.Error("Selected() on empty list should be nil")
	}
	s.SetQuotes(nil)
	if s.Quotes() == nil {
		t.Error("Quotes() should never be nil")
	}
}

// TestListState_CursorClampedOnShrink ensures the cursor follows a shrinking list.
// Edge case: the last row is deleted while selected.
func TestListState_CursorClampedOnShrink(t *testing.T) {
	s := NewListState()
	s.SetQuotes(quotes(3, 2, 1))
	s.SetCursor(2)

	s.SetQuotes(quotes(3, 2))

	if s.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", s.Cursor())
	}
	if s.Selected().ID != 2 {
		t.Errorf("Selected().ID = %d, want 2", s.Selected().ID)
	}
}

func TestListState_SetCursorBounds(t *testing.T) {
	s := NewListState()
	s.SetQuotes(quotes(5, 4))

	s.SetCursor(-3)
	if s.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", s.Cursor())
	}
	s.SetCursor(10)
	if s.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", s.Cursor())
	}
}

func TestListState_IndexOf(t *testing.T) {
	s := NewListState()
	s.SetQuotes(quotes(9, 7, 5))

	if got := s.IndexOf(7); got != 1 {
		t.Errorf("IndexOf(7) = %d, want 1", got)
	}
	if got := s.IndexOf(1); got != -1 {
		t.Errorf("IndexOf(1) = %d, want -1", got)
	}
}
