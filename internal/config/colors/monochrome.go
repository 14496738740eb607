package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Create: "#FFFFFF",
		Edit:   "#D0D0D0",
		Delete: "#FFFFFF",

		TableBorder:   "#585858",
		HeaderFg:      "#FFFFFF",
		SelectedFg:    "#000000",
		SelectedBg:    "#D0D0D0",
		PreviewBorder: "#808080",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#303030",
		WarningFg: "#FFFFFF",
		WarningBg: "#585858",
		ErrorFg:   "#000000",
		ErrorBg:   "#FFFFFF",

		StatusBarBg:   "#303030",
		StatusBarText: "#FFFFFF",
	}
}
