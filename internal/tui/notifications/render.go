package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quotebank/internal/tui/state"
)

// maxWidth keeps long error messages from covering the table
const maxWidth = 50

// Render renders a notification banner based on severity level
func Render(severity Severity, message string) string {
	st := severity.style()

	headerText := st.icon + " " + st.title
	width := min(max(lipgloss.Width(headerText), lipgloss.Width(message)), maxWidth)

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Bold(true).
		Width(width).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Width(width).
		Render(message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.background)).
		Background(lipgloss.Color(st.background)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderFromState renders a notification banner from a state.Notification
func RenderFromState(n state.Notification) string {
	return Render(FromLevel(n.Level), n.Message)
}

// RenderInline renders a compact single-line notification (for the status bar)
func RenderInline(severity Severity, message string) string {
	st := severity.style()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Background(lipgloss.Color(st.background)).
		Padding(0, 1).
		Render(st.icon + " " + message)
}
