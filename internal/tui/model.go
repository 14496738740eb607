package tui

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/table"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quotebank/internal/app"
	"github.com/thenoetrevino/quotebank/internal/config"
	"github.com/thenoetrevino/quotebank/internal/tui/components"
	"github.com/thenoetrevino/quotebank/internal/tui/state"
)

// dbTimeout bounds every store call made from an update handler
const dbTimeout = 5 * time.Second

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UIState           *state.UIState
	FormState         *state.FormState
	SearchState       *state.SearchState
	NotificationState *state.NotificationState
	ListState         *state.ListState

	Table  table.Model
	Detail viewport.Model
}

// InitialModel creates and initializes the TUI model with data from the store
func InitialModel(ctx context.Context, application *app.App) Model {
	cfg := application.Config
	components.InitStyles(cfg.ColorScheme)

	t := table.New(
		table.WithColumns(components.QuoteColumns(0)),
		table.WithFocused(true),
		table.WithStyles(components.TableStyles()),
	)

	m := Model{
		Ctx:               ctx,
		App:               application,
		Config:            cfg,
		UIState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		SearchState:       state.NewSearchState(),
		NotificationState: state.NewNotificationState(),
		ListState:         state.NewListState(),
		Table:             t,
		Detail:            viewport.New(),
	}
	m.FormState.ExportPath = cfg.DefaultExportPath()

	m.reload()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// DBContext returns a context for a single store call
func (m Model) DBContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, dbTimeout)
}

// reload re-queries the store for the listed quotes and the total count.
// The active search term, if any, filters the list.
func (m *Model) reload() {
	ctx, cancel := m.DBContext()
	defer cancel()

	svc := m.App.QuoteService
	query := ""
	if m.SearchState.IsActive {
		query = m.SearchState.Query
	}

	quotes, err := svc.SearchQuotes(ctx, query)
	if err != nil {
		slog.Error("Error loading quotes", "error", err)
		m.NotificationState.Error("Failed to load quotes")
		return
	}

	total, err := svc.CountQuotes(ctx)
	if err != nil {
		slog.Error("Error counting quotes", "error", err)
		total = len(quotes)
	}

	m.ListState.SetQuotes(quotes)
	m.ListState.SetTotal(total)
	m.Table.SetRows(components.QuoteRows(quotes, m.Config.PreviewLength))
	m.Table.SetCursor(m.ListState.Cursor())
}

// reloadAndSelect reloads and moves the cursor to the quote with id when it is listed
func (m *Model) reloadAndSelect(id int) {
	m.reload()
	if i := m.ListState.IndexOf(id); i >= 0 {
		m.setCursor(i)
	}
}

// setCursor moves the table and list selection together
func (m *Model) setCursor(i int) {
	m.ListState.SetCursor(i)
	m.Table.SetCursor(m.ListState.Cursor())
}

// syncCursor copies the table cursor into the list state after table navigation
func (m *Model) syncCursor() {
	m.ListState.SetCursor(m.Table.Cursor())
}

// resize applies terminal dimensions to every sized component
func (m *Model) resize(width, height int) {
	m.UIState.SetWidth(width)
	m.UIState.SetHeight(height)

	m.Table.SetColumns(components.QuoteColumns(width))
	m.Table.SetWidth(max(width-2, 1))
	m.Table.SetHeight(m.UIState.TableHeight())
	m.SearchState.Input.SetWidth(max(width-4, 10))

	w, h := m.detailSize()
	m.Detail.SetWidth(w)
	m.Detail.SetHeight(h)
}
