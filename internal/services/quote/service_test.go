package quote

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quotebank/internal/database"
	"github.com/thenoetrevino/quotebank/internal/models"
	"github.com/thenoetrevino/quotebank/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newTestService(t *testing.T) (Service, func() int) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db))
	return svc, func() int { return testutil.QuoteCount(t, db) }
}

// mockStore is a testify mock of database.DataStore
type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetByID(ctx context.Context, id int) (*models.Quote, error) {
	args := m.Called(ctx, id)
	q, _ := args.Get(0).(*models.Quote)
	return q, args.Error(1)
}

func (m *mockStore) GetAll(ctx context.Context) ([]*models.Quote, error) {
	args := m.Called(ctx)
	qs, _ := args.Get(0).([]*models.Quote)
	return qs, args.Error(1)
}

func (m *mockStore) Search(ctx context.Context, term string) ([]*models.Quote, error) {
	args := m.Called(ctx, term)
	qs, _ := args.Get(0).([]*models.Quote)
	return qs, args.Error(1)
}

func (m *mockStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockStore) Create(ctx context.Context, quote, author, category, source string) (*models.Quote, error) {
	args := m.Called(ctx, quote, author, category, source)
	q, _ := args.Get(0).(*models.Quote)
	return q, args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, id int, quote, author, category, source string) error {
	return m.Called(ctx, id, quote, author, category, source).Error(0)
}

func (m *mockStore) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStore) ExportCSV(quotes []*models.Quote, path string) error {
	return m.Called(quotes, path).Error(0)
}

func (m *mockStore) WriteCSV(w io.Writer, quotes []*models.Quote) error {
	return m.Called(w, quotes).Error(0)
}

var _ database.DataStore = (*mockStore)(nil)

// ============================================================================
// CREATE
// ============================================================================

func TestCreateQuote_RoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateQuote(ctx, CreateQuoteRequest{
		Quote:    "The unexamined life is not worth living.",
		Author:   "Socrates",
		Category: "Philosophy",
		Source:   "Apology",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetQuote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "The unexamined life is not worth living.", got.Quote)
	assert.Equal(t, "Socrates", got.Author)
	assert.Equal(t, "Philosophy", got.Category)
	assert.Equal(t, "Apology", got.Source)
	assert.True(t, got.CreatedAt.Equal(created.CreatedAt))
}

func TestCreateQuote_StoresFieldsAsGiven(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateQuote(ctx, CreateQuoteRequest{
		Quote:  "  padded  ",
		Author: "\tAuthor\n",
	})
	require.NoError(t, err)

	got, err := svc.GetQuote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "  padded  ", got.Quote)
	assert.Equal(t, "\tAuthor\n", got.Author)
}

func TestCreateQuote_EmptyRejectedBeforeStore(t *testing.T) {
	store := &mockStore{}
	svc := NewService(store)

	for _, text := range []string{"", "   "} {
		_, err := svc.CreateQuote(context.Background(), CreateQuoteRequest{Quote: text, Author: "A"})
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrEmptyQuote)
		assert.ErrorIs(t, err, ErrValidation)
	}

	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateQuote_EmptyNotPersisted(t *testing.T) {
	svc, count := newTestService(t)

	_, err := svc.CreateQuote(context.Background(), CreateQuoteRequest{Quote: ""})
	require.Error(t, err)
	assert.Equal(t, 0, count())
}

func TestCreateQuote_NoLengthLimits(t *testing.T) {
	svc, count := newTestService(t)
	ctx := context.Background()

	long := strings.Repeat("q", 20000)
	created, err := svc.CreateQuote(ctx, CreateQuoteRequest{
		Quote:    long,
		Author:   strings.Repeat("a", 1000),
		Category: strings.Repeat("c", 1000),
		Source:   strings.Repeat("s", 1000),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count())

	err = svc.UpdateQuote(ctx, UpdateQuoteRequest{
		ID:     created.ID,
		Quote:  long + "!",
		Author: strings.Repeat("é", 300),
	})
	require.NoError(t, err)

	got, err := svc.GetQuote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, long+"!", got.Quote)
	assert.Equal(t, strings.Repeat("é", 300), got.Author)
}

func TestValidateCreate(t *testing.T) {
	assert.NoError(t, ValidateCreate(CreateQuoteRequest{Quote: "fine"}))

	err := ValidateCreate(CreateQuoteRequest{Quote: " "})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrEmptyQuote)
	assert.Equal(t, models.ErrEmptyQuote.Error(), err.Error())
}

func TestCreateQuote_StoreErrorWrapped(t *testing.T) {
	store := &mockStore{}
	boom := errors.New("disk full")
	store.On("Create", mock.Anything, "text", "", "", "").Return(nil, boom)

	svc := NewService(store)
	_, err := svc.CreateQuote(context.Background(), CreateQuoteRequest{Quote: "text"})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	store.AssertExpectations(t)
}

// ============================================================================
// READ / SEARCH
// ============================================================================

func TestGetQuote_InvalidAndMissing(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetQuote(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidQuoteID)

	_, err = svc.GetQuote(ctx, 12345)
	assert.ErrorIs(t, err, models.ErrQuoteNotFound)
}

func TestSearchQuotes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	twain, err := svc.CreateQuote(ctx, CreateQuoteRequest{Quote: "The secret of getting ahead is getting started.", Author: "Mark Twain"})
	require.NoError(t, err)
	_, err = svc.CreateQuote(ctx, CreateQuoteRequest{Quote: "Less is more.", Author: "Ludwig Mies van der Rohe", Category: "Design"})
	require.NoError(t, err)

	results, err := svc.SearchQuotes(ctx, "twa")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, twain.ID, results[0].ID)

	results, err = svc.SearchQuotes(ctx, "no-such-author")
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = svc.SearchQuotes(ctx, "   ")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestCountQuotes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	n, err := svc.CountQuotes(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = svc.CreateQuote(ctx, CreateQuoteRequest{Quote: "one"})
	require.NoError(t, err)

	n, err = svc.CountQuotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// ============================================================================
// UPDATE / DELETE
// ============================================================================

func TestUpdateQuote_ReplacesMutableFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	original, err := svc.CreateQuote(ctx, CreateQuoteRequest{Quote: "v1", Author: "a1", Category: "c1", Source: "s1"})
	require.NoError(t, err)

	err = svc.UpdateQuote(ctx, UpdateQuoteRequest{ID: original.ID, Quote: "v2", Author: "a2", Category: "c2", Source: "s2"})
	require.NoError(t, err)

	got, err := svc.GetQuote(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, original.ID, got.ID)
	assert.True(t, got.CreatedAt.Equal(original.CreatedAt))
	assert.Equal(t, "v2", got.Quote)
	assert.Equal(t, "a2", got.Author)
	assert.Equal(t, "c2", got.Category)
	assert.Equal(t, "s2", got.Source)
}

func TestUpdateQuote_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	err := svc.UpdateQuote(ctx, UpdateQuoteRequest{ID: 0, Quote: "x"})
	assert.ErrorIs(t, err, ErrInvalidQuoteID)

	err = svc.UpdateQuote(ctx, UpdateQuoteRequest{ID: 99, Quote: "x"})
	assert.ErrorIs(t, err, models.ErrQuoteNotFound)

	err = svc.UpdateQuote(ctx, UpdateQuoteRequest{ID: 99, Quote: ""})
	assert.ErrorIs(t, err, models.ErrEmptyQuote)
}

func TestDeleteQuote(t *testing.T) {
	svc, count := newTestService(t)
	ctx := context.Background()

	q, err := svc.CreateQuote(ctx, CreateQuoteRequest{Quote: "bye"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteQuote(ctx, q.ID))
	assert.Equal(t, 0, count())

	_, err = svc.GetQuote(ctx, q.ID)
	assert.ErrorIs(t, err, models.ErrQuoteNotFound)

	assert.ErrorIs(t, svc.DeleteQuote(ctx, q.ID), models.ErrQuoteNotFound)
	assert.ErrorIs(t, svc.DeleteQuote(ctx, -1), ErrInvalidQuoteID)
}

// ============================================================================
// EXPORT
// ============================================================================

func TestExportQuotes_AllWhenNil(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, text := range []string{"a", "b", "c"} {
		_, err := svc.CreateQuote(ctx, CreateQuoteRequest{Quote: text})
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "all.csv")
	require.NoError(t, svc.ExportQuotes(ctx, nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "ID,Quote,Author,Category,Source,Created At", lines[0])
}

func TestExportQuotes_GivenRecordsOnly(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateQuote(ctx, CreateQuoteRequest{Quote: "keep", Author: "Match"})
	require.NoError(t, err)
	_, err = svc.CreateQuote(ctx, CreateQuoteRequest{Quote: "skip"})
	require.NoError(t, err)

	results, err := svc.SearchQuotes(ctx, "match")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteQuotes(ctx, &buf, results))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], ",keep,Match,")
}

func TestExportQuotes_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.ExportQuotes(ctx, nil, "  "), ErrEmptyExportPath)

	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "out.csv")
	err := svc.ExportQuotes(ctx, []*models.Quote{}, missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to export quotes")
}
