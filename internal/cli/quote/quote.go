// Package quote implements the quote subcommands of the command line interface.
package quote

import "github.com/spf13/cobra"

// Commands returns every quote subcommand, registered at the top level
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		ListCmd(),
		SearchCmd(),
		ShowCmd(),
		UpdateCmd(),
		DeleteCmd(),
		ExportCmd(),
	}
}
