package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quotebank/internal/config/colors"
)

// Purpose selects the accent a form is drawn with
type Purpose int

const (
	PurposeCreate Purpose = iota
	PurposeEdit
	PurposeExport
)

func (p Purpose) accent(scheme colors.ColorScheme) string {
	switch p {
	case PurposeEdit:
		return scheme.Edit
	case PurposeExport:
		return scheme.Accent
	default:
		return scheme.Create
	}
}

// CreateTheme creates a huh theme from the color scheme, accented for the form's purpose
func CreateTheme(scheme colors.ColorScheme, purpose Purpose) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		accent := lipgloss.Color(purpose.accent(scheme))
		title := lipgloss.Color(scheme.Title)
		subtle := lipgloss.Color(scheme.Subtle)
		normal := lipgloss.Color(scheme.Normal)
		errorColor := lipgloss.Color(scheme.Delete)

		t.Focused.Base = t.Focused.Base.BorderForeground(accent)
		t.Focused.Title = t.Focused.Title.Foreground(title).Bold(true)
		t.Focused.Description = t.Focused.Description.Foreground(subtle)
		t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errorColor)
		t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errorColor)
		t.Focused.FocusedButton = t.Focused.FocusedButton.
			Foreground(lipgloss.Color(scheme.SelectedFg)).
			Background(accent).
			Bold(true)
		t.Focused.BlurredButton = t.Focused.BlurredButton.
			Foreground(normal).
			Background(subtle)

		t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(accent)
		t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(subtle)
		t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)
		t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(normal)

		// Blurred fields keep the layout but hide the border
		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle).Bold(false)

		return t
	})
}
