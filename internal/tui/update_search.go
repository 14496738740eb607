package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quotebank/internal/tui/state"
)

// handleEnterSearch focuses the search box, keeping the current term for editing.
func (m Model) handleEnterSearch() (tea.Model, tea.Cmd) {
	m.UIState.SetMode(state.SearchMode)
	m.SearchState.Input.SetValue(m.SearchState.Query)
	m.SearchState.Input.CursorEnd()
	return m, m.SearchState.Input.Focus()
}

// updateSearch handles messages while the search box has focus.
func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return m.handleSearchConfirm()
		case "esc":
			return m.handleSearchCancel()
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.SearchState.Input, cmd = m.SearchState.Input.Update(msg)
	return m, cmd
}

// handleSearchConfirm runs the typed search and returns to normal mode.
// A blank term lists every quote.
func (m Model) handleSearchConfirm() (tea.Model, tea.Cmd) {
	m.SearchState.Commit()
	m.SearchState.Input.Blur()
	m.UIState.SetMode(state.NormalMode)
	return m.executeSearch()
}

// handleSearchCancel clears the search term and reloads every quote.
func (m Model) handleSearchCancel() (tea.Model, tea.Cmd) {
	m.SearchState.Clear()
	m.SearchState.Input.Blur()
	m.UIState.SetMode(state.NormalMode)
	return m.executeSearch()
}

// executeSearch re-queries the store with the committed term and resets the selection.
func (m Model) executeSearch() (tea.Model, tea.Cmd) {
	m.setCursor(0)
	m.reload()
	return m, nil
}
