package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps configures RenderStatusBar
type StatusBarProps struct {
	Width  int
	Mode   string
	Shown  int
	Total  int
	Query  string // active search term, empty when unfiltered
	Notice string // pre-rendered inline notification
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: mode badge and quote counts
// Right side: latest notification or "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	mode := StatusModeStyle.Render(props.Mode)

	counts := fmt.Sprintf(" %d quotes", props.Total)
	if props.Query != "" {
		counts = fmt.Sprintf(" %d of %d quotes matching %q", props.Shown, props.Total, props.Query)
	}
	left := mode + StatusBarStyle.Render(counts)

	right := props.Notice
	if right == "" {
		right = StatusBarStyle.Render("press ? for help ")
	}

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	gap := StatusBarStyle.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}
