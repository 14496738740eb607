package quote

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quotebank/internal/cli"
	quoteservice "github.com/thenoetrevino/quotebank/internal/services/quote"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new quote",
		Long: `Add a new quote with optional metadata.

Examples:
  # Simple quote (human-readable output)
  quotebank add --quote="Stay hungry, stay foolish." --author="Steve Jobs"

  # JSON output for scripts
  quotebank add --quote="Less is more." --json

  # Quiet mode for bash capture
  ID=$(quotebank add --quote="Less is more." --quiet)

  # Read the quote from stdin
  fortune | quotebank add --quote=- --category=fortune
`,
		Args: cli.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("quote", "", "Quote text (required, use - for stdin)")
	cmd.Flags().String("author", "", "Who said it")
	cmd.Flags().String("category", "", "Category, e.g. Philosophy")
	cmd.Flags().String("source", "", "Book, speech, film...")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	text, _ := cmd.Flags().GetString("quote")
	author, _ := cmd.Flags().GetString("author")
	category, _ := cmd.Flags().GetString("category")
	source, _ := cmd.Flags().GetString("source")

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cliInstance.Close()

	text, err = readQuoteText(cmd, text)
	if err != nil {
		return cli.Fail(formatter, 0, err)
	}

	q, err := cliInstance.App.QuoteService.CreateQuote(ctx, quoteservice.CreateQuoteRequest{
		Quote:    text,
		Author:   author,
		Category: category,
		Source:   source,
	})
	if err != nil {
		return cli.Fail(formatter, 0, err)
	}

	return formatter.Quote(q, fmt.Sprintf("Quote added (ID: %d)", q.ID))
}

// readQuoteText returns stdin when text is "-"
func readQuoteText(cmd *cobra.Command, text string) (string, error) {
	if text != "-" {
		return text, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read quote from stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
