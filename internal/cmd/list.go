package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCmd creates and returns the list subcommand for the pathnav CLI.
// It lists one folder's tracked children and their canonical keys.
func NewListCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [PATH]",
		Short: "List one folder's tracked children",
		Long: `List the tracked children of the root, or of PATH when given.

Each line shows the entry kind, the canonical key entries are resolved
by, and the original filesystem name the key maps back to.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nav, logger, err := opts.newNavigator()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			node := nav.Root()
			if len(args) > 0 {
				if node, err = resolveFolder(nav, args[0]); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			folders, files := node.List()
			for _, c := range folders {
				fmt.Fprintf(w, "dir   %-24s %s\n", c.Key, c.Name)
			}
			for _, c := range files {
				fmt.Fprintf(w, "file  %-24s %s\n", c.Key, c.Name)
			}
			if len(folders)+len(files) == 0 {
				fmt.Fprintf(w, "nothing tracked under %s\n", node.Path())
			}
			return nil
		},
	}

	return cmd
}
