package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quotebank/internal/tui/state"
)

// handleNormalMode handles keys while the list is idle.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// Notifications stay up until the user acts again
	m.NotificationState.Clear()

	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.UIState.SetMode(state.HelpMode)
		return m, nil
	case km.AddQuote:
		return m.openCreateForm()
	case km.Search:
		return m.handleEnterSearch()
	case km.ClearSearch, "esc":
		if m.SearchState.IsActive {
			return m.handleSearchCancel()
		}
		return m, nil
	case km.ViewQuote:
		return m.openDetail()
	case km.ContextMenu:
		return m.openContextMenu()
	case km.EditQuote:
		return m.openEditSelected()
	case km.DeleteQuote:
		return m.openDeleteConfirm()
	case km.Export:
		return m.openExportForm()
	case km.NextQuote:
		m.Table.MoveDown(1)
		m.syncCursor()
		return m, nil
	case km.PrevQuote:
		m.Table.MoveUp(1)
		m.syncCursor()
		return m, nil
	}

	// Everything else is table navigation (arrows, page keys, home/end)
	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	m.syncCursor()
	return m, cmd
}

// handleHelpMode closes the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit:
		m.UIState.ReturnToNormal()
	}
	return m, nil
}
