package theme

import "github.com/thenoetrevino/quotebank/internal/config"

// Colors holds the current theme colors, initialized by Init.
// Defaults match the default preset so tests render without Init.
var (
	Highlight     = "#874BFD"
	Title         = "#D75FD7"
	Subtle        = "#585858"
	Normal        = "#D0D0D0"
	Create        = "#5FD75F"
	Edit          = "#5F87D7"
	Delete        = "#FF0000"
	TableBorder   = "#585858"
	HeaderFg      = "#D75FD7"
	SelectedFg    = "#FFFFFF"
	SelectedBg    = "#5F00AF"
	PreviewBorder = "#5F87D7"
	InfoFg        = "#00AFFF"
	InfoBg        = "#00005F"
	WarningFg     = "#FFD700"
	WarningBg     = "#875F00"
	ErrorFg       = "#FF0000"
	ErrorBg       = "#5F0000"
	StatusBarBg   = "#874BFD"
	StatusBarText = "#D0D0D0"
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	TableBorder = colors.TableBorder
	HeaderFg = colors.HeaderFg
	SelectedFg = colors.SelectedFg
	SelectedBg = colors.SelectedBg
	PreviewBorder = colors.PreviewBorder
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
}
