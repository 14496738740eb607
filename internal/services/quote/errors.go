package quote

import "errors"

// Quote-related errors
var (
	// ErrValidation is matched by every ValidationErrors value
	ErrValidation = errors.New("invalid quote")

	ErrInvalidQuoteID  = errors.New("invalid quote ID")
	ErrEmptyExportPath = errors.New("export path cannot be empty")
)
