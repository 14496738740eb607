package quote

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quotebank/internal/cli"
)

// SearchCmd returns the search subcommand
func SearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search quotes by text, author or category",
		Long: `Search quotes by a case-insensitive substring of the quote text,
author or category. Wildcard characters (% and _) match literally.`,
		Args: cli.ExactArgs(1),
		RunE: runSearch,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cliInstance.Close()

	quotes, err := cliInstance.App.QuoteService.SearchQuotes(cmd.Context(), args[0])
	if err != nil {
		return cli.Fail(formatter, 0, err)
	}
	return formatter.Quotes(quotes)
}
