package state

import (
	"charm.land/huh/v2"
)

// FormState manages all form-related state for the application.
// Form fields are bound by pointer to the huh forms, so FormState must
// always be used through a pointer.
type FormState struct {
	// Quote form (new and edit)
	QuoteForm      *huh.Form
	EditingQuoteID int // 0 for a new quote
	FormQuote      string
	FormAuthor     string
	FormCategory   string
	FormSource     string
	FormConfirm    bool

	// Export form
	ExportForm *huh.Form
	ExportPath string
}

// NewFormState creates a new FormState with default values.
func NewFormState() *FormState {
	return &FormState{
		FormConfirm: true,
	}
}

// ResetQuoteForm clears the quote form and its values.
func (s *FormState) ResetQuoteForm() {
	s.QuoteForm = nil
	s.EditingQuoteID = 0
	s.FormQuote = ""
	s.FormAuthor = ""
	s.FormCategory = ""
	s.FormSource = ""
	s.FormConfirm = true
}

// LoadQuote prefills the quote form values for editing.
func (s *FormState) LoadQuote(id int, quote, author, category, source string) {
	s.EditingQuoteID = id
	s.FormQuote = quote
	s.FormAuthor = author
	s.FormCategory = category
	s.FormSource = source
	s.FormConfirm = true
}

// IsEditing reports whether the quote form edits an existing quote.
func (s *FormState) IsEditing() bool {
	return s.EditingQuoteID != 0
}

// ResetExportForm clears the export form. The last path is kept as the next default.
func (s *FormState) ResetExportForm() {
	s.ExportForm = nil
}
