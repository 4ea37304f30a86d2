package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFindCmd creates and returns the find subcommand for the pathnav CLI.
// It searches the filesystem below a folder.
func NewFindCmd(opts *rootOptions) *cobra.Command {
	var useGlob bool

	cmd := &cobra.Command{
		Use:   "find PATTERN [PATH]",
		Short: "Find files below a folder",
		Long: `Find files whose base name matches PATTERN below the root, or below
PATH when given. Results are printed as paths relative to the searched
folder.

The scan runs on the filesystem, so files beyond the tracked tree's
bounds are found too. With --glob the pattern matches whole relative
paths using doublestar syntax ("**/*.csv").`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nav, logger, err := opts.newNavigator()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			node := nav.Root()
			if len(args) > 1 {
				if node, err = resolveFolder(nav, args[1]); err != nil {
					return err
				}
			}

			var matches []string
			if useGlob {
				matches, err = node.Glob(args[0])
			} else {
				matches, err = node.Find(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, m := range matches {
				fmt.Fprintln(w, m)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&useGlob, "glob", false, "Match whole relative paths with doublestar syntax")

	return cmd
}
