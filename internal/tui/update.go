package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quotebank/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(size.Width, size.Height)
		return m, nil
	}

	// Forms need ALL messages, not only key presses
	switch m.UIState.Mode() {
	case state.QuoteFormMode, state.EditFormMode:
		return m.updateQuoteForm(msg)
	case state.ExportFormMode:
		return m.updateExportForm(msg)
	case state.SearchMode:
		return m.updateSearch(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	return m.handleKeyMsg(keyMsg)
}

// handleKeyMsg dispatches key presses to the handler for the current mode.
func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.UIState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(msg)
	case state.ContextMenuMode:
		return m.handleContextMenu(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.DetailMode:
		return m.handleDetailMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	}
	return m, nil
}
