// Package components provides reusable UI components and styles.
// Styles start with the default scheme; call InitStyles to apply the configured one.
package components

import (
	"charm.land/bubbles/v2/table"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quotebank/internal/config/colors"
	"github.com/thenoetrevino/quotebank/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle defines the app header
	TitleStyle lipgloss.Style

	// SubtleStyle is used for hints and placeholders
	SubtleStyle lipgloss.Style

	// LabelStyle renders field labels in the detail view and preview
	LabelStyle lipgloss.Style

	// TableBoxStyle wraps the quote table
	TableBoxStyle lipgloss.Style

	// PreviewBoxStyle wraps the full text of a truncated quote
	PreviewBoxStyle lipgloss.Style

	// FormBoxStyle defines the new quote form (green border)
	FormBoxStyle lipgloss.Style

	// EditFormBoxStyle defines the edit form (blue border)
	EditFormBoxStyle lipgloss.Style

	// ExportBoxStyle defines the export dialog
	ExportBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// MenuBoxStyle frames the context menu
	MenuBoxStyle lipgloss.Style

	// MenuItemStyle and MenuSelectedStyle render context menu rows
	MenuItemStyle     lipgloss.Style
	MenuSelectedStyle lipgloss.Style

	// DetailBoxStyle frames the detail viewport
	DetailBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen (blue border)
	HelpBoxStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// StatusModeStyle highlights the mode badge in the status bar
	StatusModeStyle lipgloss.Style

	// SearchActiveStyle marks a committed search term
	SearchActiveStyle lipgloss.Style
)

func init() {
	InitStyles(*colors.Default())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	theme.Init(scheme)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	TableBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.TableBorder))

	PreviewBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.PreviewBorder)).
		Padding(0, 1)

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Create)).
		Padding(1, 2)

	EditFormBoxStyle = FormBoxStyle.
		BorderForeground(lipgloss.Color(scheme.Edit))

	ExportBoxStyle = FormBoxStyle.
		BorderForeground(lipgloss.Color(scheme.Accent))

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Delete)).
		Padding(1)

	MenuBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(0, 1)

	MenuItemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal)).
		Padding(0, 1)

	MenuSelectedStyle = MenuItemStyle.
		Foreground(lipgloss.Color(scheme.SelectedFg)).
		Background(lipgloss.Color(scheme.SelectedBg)).
		Bold(true)

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(0, 1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Edit)).
		Padding(1, 2)

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(scheme.StatusBarBg)).
		Foreground(lipgloss.Color(scheme.StatusBarText))

	StatusModeStyle = StatusBarStyle.
		Bold(true).
		Padding(0, 1)

	SearchActiveStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true)
}

// TableStyles returns bubbles table styles for the current scheme
func TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.TableBorder)).
		BorderBottom(true).
		Foreground(lipgloss.Color(theme.HeaderFg))
	s.Cell = s.Cell.Foreground(lipgloss.Color(theme.Normal))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(theme.SelectedFg)).
		Background(lipgloss.Color(theme.SelectedBg))
	return s
}
