package quote

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quotebank/internal/cli"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all quotes, newest first",
		Args:    cli.NoArgs,
		RunE:    runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cliInstance.Close()

	quotes, err := cliInstance.App.QuoteService.ListQuotes(cmd.Context())
	if err != nil {
		return cli.Fail(formatter, 0, err)
	}
	return formatter.Quotes(quotes)
}
