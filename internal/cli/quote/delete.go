package quote

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quotebank/internal/cli"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a quote",
		Args:    cli.ExactArgs(1),
		RunE:    runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cliInstance.Close()

	id, err := cli.ParseID(args[0])
	if err != nil {
		return cli.UsageError(formatter, err, "Usage: quotebank delete <id>")
	}

	if err := cliInstance.App.QuoteService.DeleteQuote(cmd.Context(), id); err != nil {
		return cli.Fail(formatter, id, err)
	}

	return formatter.Message(fmt.Sprintf("Quote %d deleted", id), map[string]any{"id": id})
}
