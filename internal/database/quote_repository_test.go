package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/quotebank/internal/models"
)

// TestCreateAndReadQuote verifies a created quote reads back with identical fields
func TestCreateAndReadQuote(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Stay hungry, stay foolish.", "Steve Jobs", "Inspiration", "Stanford 2005")
	if err != nil {
		t.Fatalf("Failed to create quote: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Created quote should have a valid ID")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("Created quote should have a creation time")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("Failed to read quote: %v", err)
	}

	if got.ID != created.ID {
		t.Errorf("ID = %d, want %d", got.ID, created.ID)
	}
	if got.Quote != "Stay hungry, stay foolish." {
		t.Errorf("Quote = %q", got.Quote)
	}
	if got.Author != "Steve Jobs" {
		t.Errorf("Author = %q, want Steve Jobs", got.Author)
	}
	if got.Category != "Inspiration" {
		t.Errorf("Category = %q, want Inspiration", got.Category)
	}
	if got.Source != "Stanford 2005" {
		t.Errorf("Source = %q, want Stanford 2005", got.Source)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created.CreatedAt)
	}
}

// TestCreateQuote_OptionalFieldsEmpty verifies metadata may be omitted
func TestCreateQuote_OptionalFieldsEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	created := createTestQuote(t, repo, "Just text", "", "", "")

	got, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Failed to read quote: %v", err)
	}
	if got.Author != "" || got.Category != "" || got.Source != "" {
		t.Errorf("Optional fields should be empty, got %+v", got)
	}
}

// TestCreateQuote_EmptyRejected verifies empty and blank quotes are rejected and nothing is stored
func TestCreateQuote_EmptyRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := repo.Create(context.Background(), text, "Someone", "", "")
		if !errors.Is(err, models.ErrEmptyQuote) {
			t.Errorf("Create(%q) error = %v, want ErrEmptyQuote", text, err)
		}
	}

	if n := countQuotes(t, db); n != 0 {
		t.Errorf("Expected no quotes persisted, found %d", n)
	}
}

// TestGetByID_NotFound verifies missing IDs return ErrQuoteNotFound
func TestGetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	if !errors.Is(err, models.ErrQuoteNotFound) {
		t.Errorf("GetByID(999) error = %v, want ErrQuoteNotFound", err)
	}
}

// TestUpdateQuote verifies all mutable fields change and id/created_at do not
func TestUpdateQuote(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	original := createTestQuote(t, repo, "Old text", "Old author", "Old category", "Old source")

	err := repo.Update(ctx, original.ID, "New text", "New author", "New category", "New source")
	if err != nil {
		t.Fatalf("Failed to update quote: %v", err)
	}

	got, err := repo.GetByID(ctx, original.ID)
	if err != nil {
		t.Fatalf("Failed to read quote: %v", err)
	}

	if got.ID != original.ID {
		t.Errorf("ID changed: %d -> %d", original.ID, got.ID)
	}
	if !got.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("CreatedAt changed: %v -> %v", original.CreatedAt, got.CreatedAt)
	}
	if got.Quote != "New text" || got.Author != "New author" ||
		got.Category != "New category" || got.Source != "New source" {
		t.Errorf("Update did not replace all fields: %+v", got)
	}
}

// TestUpdateQuote_ClearsOptionalFields verifies optional fields can be blanked
func TestUpdateQuote_ClearsOptionalFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	original := createTestQuote(t, repo, "Text", "Author", "Category", "Source")

	if err := repo.Update(ctx, original.ID, "Text", "", "", ""); err != nil {
		t.Fatalf("Failed to update quote: %v", err)
	}

	got, err := repo.GetByID(ctx, original.ID)
	if err != nil {
		t.Fatalf("Failed to read quote: %v", err)
	}
	if got.Author != "" || got.Category != "" || got.Source != "" {
		t.Errorf("Optional fields should be cleared, got %+v", got)
	}
}

// TestUpdateQuote_NotFound verifies updating a missing quote returns ErrQuoteNotFound
func TestUpdateQuote_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	err := repo.Update(context.Background(), 42, "Text", "", "", "")
	if !errors.Is(err, models.ErrQuoteNotFound) {
		t.Errorf("Update(42) error = %v, want ErrQuoteNotFound", err)
	}
}

// TestUpdateQuote_EmptyRejected verifies an update cannot blank the quote text
func TestUpdateQuote_EmptyRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	original := createTestQuote(t, repo, "Keep me", "", "", "")

	err := repo.Update(ctx, original.ID, "  ", "", "", "")
	if !errors.Is(err, models.ErrEmptyQuote) {
		t.Fatalf("Update with blank quote error = %v, want ErrEmptyQuote", err)
	}

	got, err := repo.GetByID(ctx, original.ID)
	if err != nil {
		t.Fatalf("Failed to read quote: %v", err)
	}
	if got.Quote != "Keep me" {
		t.Errorf("Quote = %q, want unchanged", got.Quote)
	}
}

// TestDeleteQuote verifies a deleted quote can no longer be read
func TestDeleteQuote(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	q := createTestQuote(t, repo, "Ephemeral", "", "", "")

	if err := repo.Delete(ctx, q.ID); err != nil {
		t.Fatalf("Failed to delete quote: %v", err)
	}

	_, err := repo.GetByID(ctx, q.ID)
	if !errors.Is(err, models.ErrQuoteNotFound) {
		t.Errorf("GetByID after delete error = %v, want ErrQuoteNotFound", err)
	}

	// A second delete reports not-found
	if err := repo.Delete(ctx, q.ID); !errors.Is(err, models.ErrQuoteNotFound) {
		t.Errorf("Second Delete error = %v, want ErrQuoteNotFound", err)
	}
}

// TestGetAll_NewestFirst verifies list ordering by creation time descending
func TestGetAll_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first := createTestQuote(t, repo, "First", "", "", "")
	time.Sleep(5 * time.Millisecond)
	second := createTestQuote(t, repo, "Second", "", "", "")
	time.Sleep(5 * time.Millisecond)
	third := createTestQuote(t, repo, "Third", "", "", "")

	quotes, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to list quotes: %v", err)
	}
	if len(quotes) != 3 {
		t.Fatalf("Expected 3 quotes, got %d", len(quotes))
	}

	wantOrder := []int{third.ID, second.ID, first.ID}
	for i, id := range wantOrder {
		if quotes[i].ID != id {
			t.Errorf("quotes[%d].ID = %d, want %d", i, quotes[i].ID, id)
		}
	}
}

// TestGetAll_Empty verifies an empty table yields an empty, non-nil slice
func TestGetAll_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	quotes, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("Failed to list quotes: %v", err)
	}
	if quotes == nil || len(quotes) != 0 {
		t.Errorf("Expected empty slice, got %v", quotes)
	}
}

// TestSearch covers matching on each searchable field and case-insensitivity
func TestSearch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	einstein := createTestQuote(t, repo, "Imagination is more important than knowledge.", "Albert Einstein", "Science", "Interview")
	seneca := createTestQuote(t, repo, "Luck is what happens when preparation meets opportunity.", "Seneca", "Philosophy", "Letters")
	anon := createTestQuote(t, repo, "Be kind.", "", "Ethics", "Science Digest")

	tests := []struct {
		name    string
		term    string
		wantIDs []int
	}{
		{"author substring", "einst", []int{einstein.ID}},
		{"author case-insensitive", "SENECA", []int{seneca.ID}},
		{"quote text", "preparation", []int{seneca.ID}},
		{"category", "ethic", []int{anon.ID}},
		{"category shared with source is not matched by source", "science", []int{einstein.ID}},
		{"no match", "zzz-nothing", []int{}},
		{"empty term matches everything", "", []int{anon.ID, seneca.ID, einstein.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := repo.Search(ctx, tt.term)
			if err != nil {
				t.Fatalf("Search(%q) failed: %v", tt.term, err)
			}
			if len(results) != len(tt.wantIDs) {
				t.Fatalf("Search(%q) returned %d results, want %d", tt.term, len(results), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if results[i].ID != id {
					t.Errorf("Search(%q)[%d].ID = %d, want %d", tt.term, i, results[i].ID, id)
				}
			}
		})
	}
}

// TestSearch_UnicodeCaseInsensitive verifies case folding beyond ASCII
func TestSearch_UnicodeCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	zola := createTestQuote(t, repo, "A vida é bela", "Émile Zola", "Ficção", "")
	createTestQuote(t, repo, "Plain ascii", "Someone", "Other", "")

	for _, term := range []string{"émile", "ÉMILE", "FICÇÃO", "ficção", "É BELA", "VIDA"} {
		results, err := repo.Search(ctx, term)
		if err != nil {
			t.Fatalf("Search(%q) failed: %v", term, err)
		}
		if len(results) != 1 || results[0].ID != zola.ID {
			t.Errorf("Search(%q) = %v, want only quote %d", term, results, zola.ID)
		}
	}

	if got := foldCase("ÉMILE Straße"); got != foldCase("émile STRASSE") {
		t.Errorf("foldCase mismatch: %q vs %q", got, foldCase("émile STRASSE"))
	}
}

// TestSearch_WildcardsMatchLiterally verifies % and _ in the term are not LIKE wildcards
func TestSearch_WildcardsMatchLiterally(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	percent := createTestQuote(t, repo, "Give 100% every day", "", "", "")
	createTestQuote(t, repo, "Give 1000 every day", "", "", "")
	underscore := createTestQuote(t, repo, "snake_case forever", "", "", "")
	createTestQuote(t, repo, "snakeXcase never", "", "", "")

	results, err := repo.Search(ctx, "100%")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != percent.ID {
		t.Errorf("Search(100%%) = %v, want only quote %d", results, percent.ID)
	}

	results, err = repo.Search(ctx, "e_c")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != underscore.ID {
		t.Errorf("Search(e_c) = %v, want only quote %d", results, underscore.ID)
	}
}

// TestCount verifies Count tracks inserts and deletes
func TestCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	createTestQuote(t, repo, "One", "", "", "")
	two := createTestQuote(t, repo, "Two", "", "", "")

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}

	if err := repo.Delete(ctx, two.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	n, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Count after delete = %d, want 1", n)
	}
}

// TestReadsNullColumns verifies rows written with NULL metadata read back as empty strings
func TestReadsNullColumns(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	res, err := db.Exec(`INSERT INTO quotes (quote) VALUES ('Legacy row')`)
	if err != nil {
		t.Fatalf("Failed to insert legacy row: %v", err)
	}
	id, _ := res.LastInsertId()

	got, err := repo.GetByID(context.Background(), int(id))
	if err != nil {
		t.Fatalf("Failed to read legacy row: %v", err)
	}
	if got.Author != "" || got.Category != "" || got.Source != "" {
		t.Errorf("NULL columns should read as empty strings, got %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("Default created_at should be populated")
	}
}
