package quote

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quotebank/internal/cli"
)

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show every field of a quote",
		Args:  cli.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cliInstance.Close()

	id, err := cli.ParseID(args[0])
	if err != nil {
		return cli.UsageError(formatter, err, "Usage: quotebank show <id>")
	}

	q, err := cliInstance.App.QuoteService.GetQuote(cmd.Context(), id)
	if err != nil {
		return cli.Fail(formatter, id, err)
	}
	return formatter.Quote(q, "")
}
