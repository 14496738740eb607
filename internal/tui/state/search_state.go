package state

import (
	"charm.land/bubbles/v2/textinput"
)

// maxQueryLength bounds the search box input
const maxQueryLength = 100

// SearchState manages the search box.
// Input holds what the user is typing; Query is the term the list was last
// filtered by.
type SearchState struct {
	Input textinput.Model

	// Query is the committed search term
	Query string

	// IsActive indicates whether the list is filtered by Query
	IsActive bool
}

// NewSearchState creates a new SearchState with default values.
func NewSearchState() *SearchState {
	ti := textinput.New()
	ti.Placeholder = "Search quote, author or category..."
	ti.Prompt = "/ "
	ti.CharLimit = maxQueryLength

	return &SearchState{
		Input: ti,
	}
}

// Commit stores the typed text as the active query.
// A blank term deactivates the filter.
func (s *SearchState) Commit() string {
	s.Query = s.Input.Value()
	s.IsActive = s.Query != ""
	return s.Query
}

// Clear resets the typed text and the active query.
func (s *SearchState) Clear() {
	s.Input.SetValue("")
	s.Query = ""
	s.IsActive = false
}
