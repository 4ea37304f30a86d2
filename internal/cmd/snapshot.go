package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	pathnavigator "github.com/philip928lin/PathNavigator"
)

// NewSnapshotCmd creates and returns the snapshot subcommand for the pathnav
// CLI. It archives a subtree into a tar file.
func NewSnapshotCmd(opts *rootOptions) *cobra.Command {
	var compression string

	cmd := &cobra.Command{
		Use:   "snapshot OUTPUT [PATH]",
		Short: "Archive a subtree into a tar snapshot",
		Long: `Write a tar archive of the root's subtree, or of PATH's when given,
to OUTPUT. Entry names are stored relative to the archived folder;
symlinks are skipped.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := parseCompression(compression)
			if err != nil {
				return err
			}
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
			info, err := node.Snapshot(cmd.Context(), args[0], comp)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d files, %s\n",
				info.Output, info.Files, pathnavigator.FormatBytes(info.Bytes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&compression, "compression", "c", "none", "Compression layer (none, gzip, zstd)")

	return cmd
}

// parseCompression maps a flag value onto a Compression.
func parseCompression(s string) (pathnavigator.Compression, error) {
	switch s {
	case "", "none":
		return pathnavigator.CompressNone, nil
	case "gzip", "gz":
		return pathnavigator.CompressGzip, nil
	case "zstd", "zst":
		return pathnavigator.CompressZstd, nil
	}
	return pathnavigator.CompressNone, fmt.Errorf("unknown compression %q", s)
}
