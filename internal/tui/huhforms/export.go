package huhforms

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/huh/v2"
)

// ValidateExportPath rejects a blank export path
func ValidateExportPath(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("export path cannot be empty")
	}
	return nil
}

// CreateExportForm creates a single-field form asking where to write the CSV file
func CreateExportForm(path *string, count int) *huh.Form {
	title := "Export quotes to CSV"
	description := fmt.Sprintf("Writes the %d quotes currently listed", count)
	if count == 1 {
		description = "Writes the quote currently listed"
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("path").
			Title(title).
			Description(description).
			Placeholder("quotes_export.csv").
			Validate(ValidateExportPath).
			Value(path),
	))
	return form.WithShowHelp(false)
}
