package cmd

import (
	"github.com/spf13/cobra"

	pathnavigator "github.com/philip928lin/PathNavigator"
)

// NewTreeCmd creates and returns the tree subcommand for the pathnav CLI.
// It renders the tracked tree in box-drawing form.
func NewTreeCmd(opts *rootOptions) *cobra.Command {
	var (
		level         int
		dirsOnly      bool
		lineLimit     int
		perLevelLimit int
	)

	cmd := &cobra.Command{
		Use:   "tree [PATH]",
		Short: "Print the tracked tree",
		Long: `Print the tracked tree below the root, or below PATH when given.

PATH is a slash-separated chain of keys from the root; each segment may
be a canonical key or an original entry name. Entries are printed with
their original filesystem names, subfolders before files, closed by a
summary line with directory and file counts.`,
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
			return node.Tree(cmd.OutOrStdout(), pathnavigator.TreeOptions{
				MaxLevel:      level,
				DirsOnly:      dirsOnly,
				LineLimit:     lineLimit,
				PerLevelLimit: perLevelLimit,
			})
		},
	}

	cmd.Flags().IntVarP(&level, "level", "L", 0, "Depth bound (0 = unlimited)")
	cmd.Flags().BoolVarP(&dirsOnly, "dirs-only", "d", false, "Omit files")
	cmd.Flags().IntVar(&lineLimit, "line-limit", 0, "Maximum entry lines (0 = default 1000)")
	cmd.Flags().IntVar(&perLevelLimit, "per-level-limit", 0, "Entries shown per directory (0 = unlimited)")

	return cmd
}
