package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quotebank/internal/models"
	quoteservice "github.com/thenoetrevino/quotebank/internal/services/quote"
)

// Global flag names
const (
	FlagDB    = "db"
	FlagJSON  = "json"
	FlagQuiet = "quiet"
)

// AddGlobalFlags registers the flags every command accepts
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(FlagDB, "", "Path to the quotes database (default ~/.quotebank/quotes.db)")
	cmd.PersistentFlags().Bool(FlagJSON, false, "Output in JSON format")
	cmd.PersistentFlags().Bool(FlagQuiet, false, "Minimal output (IDs only)")
	cmd.MarkFlagsMutuallyExclusive(FlagJSON, FlagQuiet)
}

// FormatterFromCmd reads the output flags of cmd
func FormatterFromCmd(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool(FlagJSON)
	quietMode, _ := cmd.Flags().GetBool(FlagQuiet)
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// ParseID parses a positive quote ID argument
func ParseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid quote ID %q (must be a positive integer)", arg)
	}
	return id, nil
}

// UsageError reports a usage problem and returns the matching CommandError
func UsageError(formatter *OutputFormatter, err error, suggestion string) error {
	if fmtErr := formatter.ErrorWithSuggestion("USAGE_ERROR", err.Error(), suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &CommandError{Code: ExitUsage, Err: err}
}

// ExactArgs is cobra.ExactArgs reporting through the formatter with ExitUsage
func ExactArgs(n int) cobra.PositionalArgs {
	return usageArgs(cobra.ExactArgs(n))
}

// NoArgs is cobra.NoArgs reporting through the formatter with ExitUsage
func NoArgs(cmd *cobra.Command, args []string) error {
	return usageArgs(cobra.NoArgs)(cmd, args)
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return UsageError(FormatterFromCmd(cmd), err, "Usage: "+cmd.UseLine())
		}
		return nil
	}
}

// FlagError reports a flag parsing failure with ExitUsage.
// Install it with SetFlagErrorFunc on the root command; subcommands inherit it.
func FlagError(cmd *cobra.Command, err error) error {
	return UsageError(FormatterFromCmd(cmd), err, fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath()))
}

// Fail reports err with a code derived from its kind and returns the matching CommandError.
// Not-found errors exit with ExitNotFound and validation errors with ExitValidation.
func Fail(formatter *OutputFormatter, id int, err error) error {
	code, exit, suggestion := classify(err)

	message := err.Error()
	if exit == ExitNotFound && id > 0 {
		message = fmt.Sprintf("quote %d not found", id)
	}

	if fmtErr := formatter.ErrorWithSuggestion(code, message, suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	if exit == ExitError {
		slog.Error("command failed", "error", err)
	}
	return &CommandError{Code: exit, Err: err}
}

func classify(err error) (code string, exit int, suggestion string) {
	switch {
	case errors.Is(err, models.ErrQuoteNotFound):
		return "QUOTE_NOT_FOUND", ExitNotFound, "Use 'quotebank list' to see available quotes"
	case errors.Is(err, quoteservice.ErrValidation),
		errors.Is(err, models.ErrEmptyQuote),
		errors.Is(err, quoteservice.ErrInvalidQuoteID),
		errors.Is(err, quoteservice.ErrEmptyExportPath):
		return "VALIDATION_ERROR", ExitValidation, ""
	default:
		return "INTERNAL_ERROR", ExitError, ""
	}
}
