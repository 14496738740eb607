package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode (idle)
	SearchMode                    // Typing into the search box (/)
	QuoteFormMode                 // New quote form
	EditFormMode                  // Editing an existing quote
	DeleteConfirmMode             // Confirming quote deletion
	ContextMenuMode               // Per-row Edit/Delete menu
	DetailMode                    // Full quote in a scrollable viewport
	ExportFormMode                // Export path form
	HelpMode                      // Displaying help screen
)

// String returns a short label for the mode, shown in the status bar
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case SearchMode:
		return "SEARCH"
	case QuoteFormMode:
		return "NEW"
	case EditFormMode:
		return "EDIT"
	case DeleteConfirmMode:
		return "DELETE"
	case ContextMenuMode:
		return "MENU"
	case DetailMode:
		return "VIEW"
	case ExportFormMode:
		return "EXPORT"
	case HelpMode:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// IsModal reports whether the mode draws an overlay above the list
func (m Mode) IsModal() bool {
	return m != NormalMode && m != SearchMode
}

// MenuItem is one entry of the context menu
type MenuItem int

const (
	MenuEdit MenuItem = iota
	MenuDelete
)

// MenuItems lists context menu entries in display order
var MenuItems = []MenuItem{MenuEdit, MenuDelete}

// Label returns the menu text for the item
func (i MenuItem) Label() string {
	if i == MenuDelete {
		return "Delete"
	}
	return "Edit"
}

// UIState manages the user interface state.
// This includes terminal dimensions, the current interaction mode,
// the context menu cursor and the quote targeted by edit/delete.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// menuCursor is the highlighted context menu entry
	menuCursor int

	// targetQuoteID is the quote a pending delete or edit applies to
	targetQuoteID int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode: NormalMode,
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// PreviewLines is the text height of the selection preview pane
const PreviewLines = 3

// TableHeight returns the rows available to the quote table.
// This is terminal height minus the title, search line, table border,
// preview pane and status bar, ensuring a minimum of 3.
func (s *UIState) TableHeight() int {
	const titleHeight = 2     // title + gap line
	const searchHeight = 2    // search box + gap line
	const tableBorder = 2
	const previewHeight = PreviewLines + 2
	const statusBarHeight = 1
	return max(s.height-titleHeight-searchHeight-tableBorder-previewHeight-statusBarHeight, 3)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// MenuCursor returns the highlighted context menu index.
func (s *UIState) MenuCursor() int {
	return s.menuCursor
}

// SelectedMenuItem returns the highlighted context menu entry.
func (s *UIState) SelectedMenuItem() MenuItem {
	return MenuItems[s.menuCursor]
}

// MoveMenuCursor moves the context menu highlight by delta, wrapping around.
func (s *UIState) MoveMenuCursor(delta int) {
	n := len(MenuItems)
	s.menuCursor = ((s.menuCursor+delta)%n + n) % n
}

// ResetMenuCursor highlights the first context menu entry.
func (s *UIState) ResetMenuCursor() {
	s.menuCursor = 0
}

// TargetQuoteID returns the quote a pending delete or edit applies to.
func (s *UIState) TargetQuoteID() int {
	return s.targetQuoteID
}

// SetTargetQuoteID records the quote a pending delete or edit applies to.
func (s *UIState) SetTargetQuoteID(id int) {
	s.targetQuoteID = id
}

// ReturnToNormal leaves any modal and forgets the pending target.
func (s *UIState) ReturnToNormal() {
	s.mode = NormalMode
	s.targetQuoteID = 0
	s.menuCursor = 0
}
