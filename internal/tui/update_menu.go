package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quotebank/internal/tui/state"
)

// openContextMenu opens the per-row menu for the selected quote.
func (m Model) openContextMenu() (tea.Model, tea.Cmd) {
	q := m.ListState.Selected()
	if q == nil {
		return m, nil
	}
	m.UIState.SetTargetQuoteID(q.ID)
	m.UIState.ResetMenuCursor()
	m.UIState.SetMode(state.ContextMenuMode)
	return m, nil
}

// handleContextMenu moves through the menu and runs the chosen action.
func (m Model) handleContextMenu(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case "up", km.PrevQuote:
		m.UIState.MoveMenuCursor(-1)
	case "down", km.NextQuote:
		m.UIState.MoveMenuCursor(1)
	case "enter":
		return m.runMenuItem(m.UIState.SelectedMenuItem())
	case km.EditQuote:
		return m.runMenuItem(state.MenuEdit)
	case km.DeleteQuote:
		return m.runMenuItem(state.MenuDelete)
	case "esc", km.ContextMenu, km.Quit:
		m.UIState.ReturnToNormal()
	}
	return m, nil
}

func (m Model) runMenuItem(item state.MenuItem) (tea.Model, tea.Cmd) {
	id := m.UIState.TargetQuoteID()
	switch item {
	case state.MenuEdit:
		return m.openEditForm(id)
	case state.MenuDelete:
		m.UIState.SetMode(state.DeleteConfirmMode)
	}
	return m, nil
}
