package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	pathnavigator "github.com/philip928lin/PathNavigator"
)

// NewScaffoldCmd creates and returns the scaffold subcommand for the pathnav
// CLI. It creates a directory skeleton under the navigated root.
func NewScaffoldCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaffold [NAME...]",
		Short: "Create a project skeleton under the root",
		Long: `Create one directory per NAME under the root. Names may nest with
slashes ("data/raw"); existing directories are reused.

With no arguments the default research-project layout is created:
  ` + strings.Join(pathnavigator.DefaultProjectLayout, ", "),
		RunE: func(cmd *cobra.Command, args []string) error {
			nav, logger, err := opts.newNavigator()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			names := args
			if len(names) == 0 {
				names = pathnavigator.DefaultProjectLayout
			}
			if err := nav.Scaffold(names...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scaffolded %d directories under %s\n", len(names), nav.RootPath())
			return nil
		},
	}

	return cmd
}
