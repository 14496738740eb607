package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Quotes
	AddQuote    string `yaml:"add_quote"`
	EditQuote   string `yaml:"edit_quote"`
	DeleteQuote string `yaml:"delete_quote"`
	ViewQuote   string `yaml:"view_quote"`
	ContextMenu string `yaml:"context_menu"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// List
	Search      string `yaml:"search"`
	Export      string `yaml:"export"`
	ClearSearch string `yaml:"clear_search"`
	PrevQuote   string `yaml:"prev_quote"`
	NextQuote   string `yaml:"next_quote"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Quotes
		AddQuote:    "a",
		EditQuote:   "e",
		DeleteQuote: "d",
		ViewQuote:   "enter",
		ContextMenu: "m",
		SaveForm:    "ctrl+s",

		// List
		Search:      "/",
		Export:      "x",
		ClearSearch: "c",
		PrevQuote:   "k",
		NextQuote:   "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddQuote == "" {
		k.AddQuote = defaults.AddQuote
	}
	if k.EditQuote == "" {
		k.EditQuote = defaults.EditQuote
	}
	if k.DeleteQuote == "" {
		k.DeleteQuote = defaults.DeleteQuote
	}
	if k.ViewQuote == "" {
		k.ViewQuote = defaults.ViewQuote
	}
	if k.ContextMenu == "" {
		k.ContextMenu = defaults.ContextMenu
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.Export == "" {
		k.Export = defaults.Export
	}
	if k.ClearSearch == "" {
		k.ClearSearch = defaults.ClearSearch
	}
	if k.PrevQuote == "" {
		k.PrevQuote = defaults.PrevQuote
	}
	if k.NextQuote == "" {
		k.NextQuote = defaults.NextQuote
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
