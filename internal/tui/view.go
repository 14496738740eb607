package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quotebank/internal/tui/components"
	"github.com/thenoetrevino/quotebank/internal/tui/layers"
	"github.com/thenoetrevino/quotebank/internal/tui/notifications"
	"github.com/thenoetrevino/quotebank/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UIState.Width() == 0 {
		view.SetContent("Loading...")
		return view
	}

	base := m.viewList()

	var modal *lipgloss.Layer
	switch m.UIState.Mode() {
	case state.QuoteFormMode, state.EditFormMode:
		modal = m.renderQuoteFormLayer()
	case state.ExportFormMode:
		modal = m.renderExportFormLayer()
	case state.DeleteConfirmMode:
		modal = m.renderDeleteConfirmLayer()
	case state.ContextMenuMode:
		modal = m.renderContextMenuLayer()
	case state.DetailMode:
		modal = m.renderDetailLayer()
	case state.HelpMode:
		modal = m.renderHelpLayer()
	}

	overlays := []*lipgloss.Layer{modal}
	// Floating notifications would cover a modal, so they only float over the list
	if modal == nil {
		overlays = append(overlays, m.NotificationState.Layers(
			m.UIState.Width(), m.UIState.Height(), notifications.RenderFromState)...)
	}

	view.SetContent(layers.Compose(base, overlays...))
	return view
}

// viewList renders the base screen: title, search line, table, preview and status bar.
func (m Model) viewList() string {
	width := m.UIState.Width()

	title := components.TitleStyle.Render("quotebank")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.viewSearchLine(),
		"",
		components.TableBoxStyle.Render(m.Table.View()),
		components.RenderSelectionPreview(components.SelectionPreviewProps{
			Quote:         m.ListState.Selected(),
			PreviewLength: m.Config.PreviewLength,
			Width:         width,
			Height:        state.PreviewLines,
		}),
		m.viewStatusBar(),
	)
}

func (m Model) viewSearchLine() string {
	km := m.Config.KeyMappings
	switch {
	case m.UIState.Mode() == state.SearchMode:
		return m.SearchState.Input.View()
	case m.SearchState.IsActive:
		return components.SearchActiveStyle.Render("/ "+m.SearchState.Query) +
			components.SubtleStyle.Render(fmt.Sprintf("  (%s to clear)", km.ClearSearch))
	default:
		return components.SubtleStyle.Render(fmt.Sprintf("%s to search", km.Search))
	}
}

func (m Model) viewStatusBar() string {
	props := components.StatusBarProps{
		Width: m.UIState.Width(),
		Mode:  strings.ToUpper(m.UIState.Mode().String()),
		Shown: m.ListState.Len(),
		Total: m.ListState.Total(),
	}
	if m.SearchState.IsActive {
		props.Query = m.SearchState.Query
	}
	// Under a modal the latest notification goes inline instead of floating
	if m.UIState.Mode().IsModal() {
		if n, ok := m.NotificationState.Latest(); ok {
			props.Notice = notifications.RenderInline(notifications.FromLevel(n.Level), n.Message)
		}
	}
	return components.RenderStatusBar(props)
}

// ============================================================================
// MODAL LAYERS
// ============================================================================

func (m Model) renderQuoteFormLayer() *lipgloss.Layer {
	if m.FormState.QuoteForm == nil {
		return nil
	}

	box := components.FormBoxStyle
	title := "New Quote"
	if m.FormState.IsEditing() {
		box = components.EditFormBoxStyle
		title = "Edit Quote"
	}

	help := components.SubtleStyle.Render(
		fmt.Sprintf("%s: save  esc: cancel  tab: next field", m.Config.KeyMappings.SaveForm))

	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(title),
		"",
		m.FormState.QuoteForm.View(),
		"",
		help,
	)

	width := layers.ModalWidth(m.UIState.Width(), layers.FormMinWidth, layers.FormMaxWidth)
	return layers.CreateCenteredLayer(box.Width(width).Render(content), m.UIState.Width(), m.UIState.Height())
}

func (m Model) renderExportFormLayer() *lipgloss.Layer {
	if m.FormState.ExportForm == nil {
		return nil
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.FormState.ExportForm.View(),
		"",
		components.SubtleStyle.Render("enter: export  esc: cancel"),
	)

	width := layers.ModalWidth(m.UIState.Width(), layers.FormMinWidth, layers.FormMaxWidth)
	return layers.CreateCenteredLayer(components.ExportBoxStyle.Width(width).Render(content), m.UIState.Width(), m.UIState.Height())
}

func (m Model) renderDeleteConfirmLayer() *lipgloss.Layer {
	preview := ""
	if i := m.ListState.IndexOf(m.UIState.TargetQuoteID()); i >= 0 {
		preview = components.TruncatePreview(m.ListState.Quotes()[i].Quote, 60)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Delete this quote?"),
		"",
		fmt.Sprintf("%q", preview),
		"",
		components.SubtleStyle.Render("[y]es  [n]o"),
	)

	box := components.DeleteConfirmBoxStyle.Width(min(layers.ConfirmWidth, m.UIState.Width()))
	return layers.CreateCenteredLayer(box.Render(content), m.UIState.Width(), m.UIState.Height())
}

func (m Model) renderContextMenuLayer() *lipgloss.Layer {
	rows := make([]string, 0, len(state.MenuItems))
	for i, item := range state.MenuItems {
		style := components.MenuItemStyle
		if i == m.UIState.MenuCursor() {
			style = components.MenuSelectedStyle
		}
		rows = append(rows, style.Width(layers.MenuWidth-4).Render(item.Label()))
	}

	box := components.MenuBoxStyle.Width(layers.MenuWidth).Render(strings.Join(rows, "\n"))
	return layers.CreateCenteredLayer(box, m.UIState.Width(), m.UIState.Height())
}

func (m Model) renderDetailLayer() *lipgloss.Layer {
	help := components.SubtleStyle.Render(fmt.Sprintf("↑/↓: scroll  %s: edit  esc: close", m.Config.KeyMappings.EditQuote))
	content := lipgloss.JoinVertical(lipgloss.Left, m.Detail.View(), help)

	w, _ := m.detailSize()
	box := components.DetailBoxStyle.Width(w + 4).Render(content)
	return layers.CreateCenteredLayer(box, m.UIState.Width(), m.UIState.Height())
}

func (m Model) renderHelpLayer() *lipgloss.Layer {
	box := components.HelpBoxStyle.Width(min(layers.HelpWidth, m.UIState.Width())).Render(m.helpContent())
	return layers.CreateCenteredLayer(box, m.UIState.Width(), m.UIState.Height())
}

// helpContent lists the configured key mappings
func (m Model) helpContent() string {
	km := m.Config.KeyMappings
	bindings := []struct{ key, desc string }{
		{km.AddQuote, "add a quote"},
		{km.ViewQuote, "view the selected quote"},
		{km.EditQuote, "edit the selected quote"},
		{km.DeleteQuote, "delete the selected quote"},
		{km.ContextMenu, "open the quote menu"},
		{km.Search, "search quotes"},
		{km.ClearSearch, "clear the search"},
		{km.Export, "export listed quotes to CSV"},
		{km.NextQuote + "/" + km.PrevQuote, "move down/up"},
		{km.SaveForm, "save a form"},
		{km.ShowHelp, "toggle this help"},
		{km.Quit + ", ctrl+c", "quit"},
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, kb := range bindings {
		b.WriteString(components.LabelStyle.Render(fmt.Sprintf("%-12s", kb.key)))
		b.WriteString(kb.desc)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(components.SubtleStyle.Render("esc: close"))
	return b.String()
}

// detailSize returns the viewport dimensions for the detail modal
func (m Model) detailSize() (int, int) {
	w := layers.ModalWidth(m.UIState.Width(), layers.DetailMinWidth, layers.DetailMaxWidth) - 4 // border + padding
	h := max(m.UIState.Height()*2/3, 5)
	return max(w, 10), h
}
