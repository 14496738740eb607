package tui

import (
	"context"
	"database/sql"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quotebank/internal/app"
	"github.com/thenoetrevino/quotebank/internal/config"
	"github.com/thenoetrevino/quotebank/internal/logging"
	"github.com/thenoetrevino/quotebank/internal/models"
	"github.com/thenoetrevino/quotebank/internal/testutil"
)

// setupTestModel builds a sized model over an in-memory store seeded with quotes.
// Quotes are inserted in order, so the last one is listed first.
func setupTestModel(t *testing.T, seed ...[4]string) (Model, *sql.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	for _, q := range seed {
		testutil.CreateTestQuote(t, db, q[0], q[1], q[2], q[3])
	}

	cfg := config.Default()
	cfg.ExportDir = t.TempDir()

	application := app.New(db, cfg, app.WithLogger(logging.Discard()))
	m := InitialModel(context.Background(), application)
	m.resize(120, 40)
	return m, db
}

// twoQuotes seeds a listing of "Simplicity..." above "Stay hungry..."
var twoQuotes = [][4]string{
	{"Stay hungry, stay foolish.", "Steve Jobs", "Motivation", "Stanford speech"},
	{"Simplicity is the ultimate sophistication.", "Leonardo da Vinci", "Design", ""},
}

func key(s string) tea.KeyPressMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Text: s, Code: r})
}

var (
	enterKey = tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	escKey   = tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	downKey  = tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	ctrlS    = tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
)

// send runs one message through Update and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next
}

func latestNotice(m Model) string {
	n, ok := m.NotificationState.Latest()
	if !ok {
		return ""
	}
	return n.Message
}

func getQuote(t *testing.T, m Model, id int) (*models.Quote, error) {
	t.Helper()
	return m.App.QuoteService.GetQuote(context.Background(), id)
}
