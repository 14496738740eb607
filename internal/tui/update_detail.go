package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quotebank/internal/tui/components"
	"github.com/thenoetrevino/quotebank/internal/tui/state"
)

// openDetail shows the full record of the selected quote.
// The quote is re-read so the view never shows a stale row.
func (m Model) openDetail() (tea.Model, tea.Cmd) {
	sel := m.ListState.Selected()
	if sel == nil {
		return m, nil
	}

	ctx, cancel := m.DBContext()
	defer cancel()

	q, err := m.App.QuoteService.GetQuote(ctx, sel.ID)
	if err != nil {
		m.notifyStoreError("load", err)
		m.reload()
		return m, nil
	}

	w, h := m.detailSize()
	m.Detail.SetWidth(w)
	m.Detail.SetHeight(h)
	m.Detail.SetContent(components.RenderQuoteDetail(q, w))
	m.Detail.GotoTop()

	m.UIState.SetTargetQuoteID(q.ID)
	m.UIState.SetMode(state.DetailMode)
	return m, nil
}

// handleDetailMode closes the detail view or scrolls it.
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case "esc", "enter", km.Quit, km.ViewQuote:
		m.UIState.ReturnToNormal()
		return m, nil
	case km.EditQuote:
		return m.openEditForm(m.UIState.TargetQuoteID())
	}

	var cmd tea.Cmd
	m.Detail, cmd = m.Detail.Update(msg)
	return m, cmd
}
