// Package configure implements the config subcommands.
package configure

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quotebank/internal/cli"
	"github.com/thenoetrevino/quotebank/internal/config"
)

// ConfigCmd returns the config command and its subcommands
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(pathCmd(), initCmd())
	return cmd
}

func pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		Args:  cli.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.FormatterFromCmd(cmd)

			path, err := config.Path()
			if err != nil {
				return cli.Fail(formatter, 0, err)
			}

			_, statErr := os.Stat(path)
			exists := statErr == nil

			if formatter.Quiet {
				_, err := fmt.Fprintln(formatter.Out, path)
				return err
			}
			return formatter.Message(path, map[string]any{"path": path, "exists": exists})
		},
	}
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Long: `Write the effective configuration (file, environment and defaults
merged) to the config file, so it can be edited by hand.

Examples:
  quotebank config init
  QUOTEBANK_PREVIEW_LENGTH=80 quotebank config init --force
`,
		Args: cli.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromCmd(cmd)
	force, _ := cmd.Flags().GetBool("force")

	path, err := config.Path()
	if err != nil {
		return cli.Fail(formatter, 0, err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return cli.UsageError(formatter,
			fmt.Errorf("config file already exists at %s", path),
			"Use --force to overwrite it")
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cli.Fail(formatter, 0, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return cli.Fail(formatter, 0, err)
	}
	if err := cfg.Save(); err != nil {
		return cli.Fail(formatter, 0, fmt.Errorf("failed to write config: %w", err))
	}

	return formatter.Message(fmt.Sprintf("Wrote config to %s", path), map[string]any{"path": path})
}
