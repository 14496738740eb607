package models

import "errors"

// Domain-specific errors shared by the store, services and interfaces
var (
	// ErrQuoteNotFound indicates that no quote exists with the requested ID
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrEmptyQuote indicates an attempt to store a quote without text
	ErrEmptyQuote = errors.New("quote text cannot be empty")
)
