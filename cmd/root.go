package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quotebank/internal/cli"
	"github.com/thenoetrevino/quotebank/internal/cli/configure"
	"github.com/thenoetrevino/quotebank/internal/cli/quote"
	"github.com/thenoetrevino/quotebank/internal/launcher"
)

// NewRootCmd builds the quotebank command tree.
// Without a subcommand it launches the TUI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quotebank",
		Short: "quotebank - a terminal journal for quotes",
		Long: `quotebank records, browses, edits and exports quotes with their
author, category and source. Run it without arguments for the
interactive interface, or use the subcommands from scripts.`,
		Args:          cli.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString(cli.FlagDB)
			return launcher.Launch(cmd.Context(), launcher.Options{DBPath: dbPath})
		},
	}

	cli.AddGlobalFlags(rootCmd)
	rootCmd.SetFlagErrorFunc(cli.FlagError)
	rootCmd.AddCommand(quote.Commands()...)
	rootCmd.AddCommand(configure.ConfigCmd())

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := NewRootCmd().Execute()
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
