package huhforms

import (
	"charm.land/huh/v2"
	quoteservice "github.com/thenoetrevino/quotebank/internal/services/quote"
)

// QuoteFormValues are the fields a quote form edits in place
type QuoteFormValues struct {
	Quote    *string
	Author   *string
	Category *string
	Source   *string
	Confirm  *bool
}

// ValidateQuoteText rejects empty quotes before anything reaches the store
func ValidateQuoteText(s string) error {
	return quoteservice.ValidateCreate(quoteservice.CreateQuoteRequest{Quote: s})
}

// CreateQuoteForm creates a huh form for adding/editing a quote
// The form uses pointers to update values in place
func CreateQuoteForm(values QuoteFormValues, editing bool, quoteLines int) *huh.Form {
	confirmTitle := "Save this quote?"
	if editing {
		confirmTitle = "Save changes?"
	}

	fields := []huh.Field{
		huh.NewText().
			Key("quote").
			Title("Quote").
			Placeholder("Enter the quote...").
			Lines(quoteLines).
			Validate(ValidateQuoteText).
			Value(values.Quote),

		huh.NewInput().
			Key("author").
			Title("Author").
			Placeholder("Who said it?").
			Value(values.Author),

		huh.NewInput().
			Key("category").
			Title("Category").
			Placeholder("e.g. Philosophy").
			Value(values.Category),

		huh.NewInput().
			Key("source").
			Title("Source").
			Placeholder("Book, speech, film...").
			Value(values.Source),

		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle).
			Affirmative("Yes").
			Negative("No").
			Value(values.Confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
