package quote

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quotebank/internal/cli"
)

// stdoutPath writes the export to standard output
const stdoutPath = "-"

// ExportCmd returns the export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export quotes to CSV",
		Long: `Export quotes to a CSV file with the header
ID, Quote, Author, Category, Source, Created At.

Examples:
  # Everything, to the configured export directory
  quotebank export

  # Search results to a file
  quotebank export --search=stoic --output=stoic.csv

  # Pipe to another tool
  quotebank export --output=- | csvlook
`,
		Args: cli.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "", "Output file, or - for stdout (default <export_dir>/quotes_export.csv)")
	cmd.Flags().String("search", "", "Only export quotes matching this term")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	output, _ := cmd.Flags().GetString("output")
	term, _ := cmd.Flags().GetString("search")

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cliInstance.Close()

	svc := cliInstance.App.QuoteService
	quotes, err := svc.SearchQuotes(ctx, term)
	if err != nil {
		return cli.Fail(formatter, 0, err)
	}

	if output == stdoutPath {
		if err := svc.WriteQuotes(ctx, cmd.OutOrStdout(), quotes); err != nil {
			return cli.Fail(formatter, 0, err)
		}
		return nil
	}

	if output == "" {
		output = cliInstance.App.Config.DefaultExportPath()
	}

	if err := svc.ExportQuotes(ctx, quotes, output); err != nil {
		return cli.Fail(formatter, 0, err)
	}

	return formatter.Message(
		fmt.Sprintf("Exported %d quotes to %s", len(quotes), output),
		map[string]any{"path": output, "count": len(quotes)},
	)
}
