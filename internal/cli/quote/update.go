package quote

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/quotebank/internal/cli"
	quoteservice "github.com/thenoetrevino/quotebank/internal/services/quote"
)

// UpdateCmd returns the update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a quote",
		Long: `Update a quote in place. Only the flags given are changed;
the creation time never changes.

Examples:
  quotebank update 12 --author="Mark Twain"
  quotebank update 12 --source="" --json
`,
		Args: cli.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("quote", "", "New quote text (use - for stdin)")
	cmd.Flags().String("author", "", "New author")
	cmd.Flags().String("category", "", "New category")
	cmd.Flags().String("source", "", "New source")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cliInstance.Close()

	id, err := cli.ParseID(args[0])
	if err != nil {
		return cli.UsageError(formatter, err, "Usage: quotebank update <id> [--quote --author --category --source]")
	}

	svc := cliInstance.App.QuoteService
	current, err := svc.GetQuote(ctx, id)
	if err != nil {
		return cli.Fail(formatter, id, err)
	}

	req := quoteservice.UpdateQuoteRequest{
		ID:       id,
		Quote:    current.Quote,
		Author:   current.Author,
		Category: current.Category,
		Source:   current.Source,
	}

	flags := cmd.Flags()
	if flags.Changed("quote") {
		text, _ := flags.GetString("quote")
		if req.Quote, err = readQuoteText(cmd, text); err != nil {
			return cli.Fail(formatter, id, err)
		}
	}
	applyChanged(flags, "author", &req.Author)
	applyChanged(flags, "category", &req.Category)
	applyChanged(flags, "source", &req.Source)

	if err := svc.UpdateQuote(ctx, req); err != nil {
		return cli.Fail(formatter, id, err)
	}

	updated, err := svc.GetQuote(ctx, id)
	if err != nil {
		return cli.Fail(formatter, id, err)
	}
	return formatter.Quote(updated, fmt.Sprintf("Quote %d updated", id))
}

// applyChanged overwrites dst with the flag value only when the flag was given,
// so an explicit empty value clears the field.
func applyChanged(flags *pflag.FlagSet, name string, dst *string) {
	if !flags.Changed(name) {
		return
	}
	if v, err := flags.GetString(name); err == nil {
		*dst = v
	}
}
