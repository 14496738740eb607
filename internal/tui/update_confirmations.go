package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quotebank/internal/tui/state"
)

// openDeleteConfirm asks before deleting the selected quote.
func (m Model) openDeleteConfirm() (tea.Model, tea.Cmd) {
	q := m.ListState.Selected()
	if q == nil {
		return m, nil
	}
	m.UIState.SetTargetQuoteID(q.ID)
	m.UIState.SetMode(state.DeleteConfirmMode)
	return m, nil
}

// handleDeleteConfirm handles y/n in the delete confirmation dialog.
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDelete()
	case "n", "N", "esc", "q":
		m.UIState.ReturnToNormal()
		return m, nil
	}
	return m, nil
}

// confirmDelete deletes the target quote and re-queries the list.
func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	id := m.UIState.TargetQuoteID()
	m.UIState.ReturnToNormal()

	ctx, cancel := m.DBContext()
	defer cancel()

	if err := m.App.QuoteService.DeleteQuote(ctx, id); err != nil {
		m.notifyStoreError("delete", err)
		m.reload()
		return m, nil
	}

	m.NotificationState.Info("Quote deleted")
	m.reload()
	return m, nil
}
