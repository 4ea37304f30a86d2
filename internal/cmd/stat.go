package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	pathnavigator "github.com/philip928lin/PathNavigator"
)

// NewStatCmd creates and returns the stat subcommand for the pathnav CLI.
// It describes tracked entries: identity, size, mode, and MIME type.
func NewStatCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat KEY...",
		Short: "Describe tracked entries",
		Long: `Describe one or more tracked entries.

Each KEY is a slash-separated chain from the root ("data/report_csv");
segments may be canonical keys or original entry names. Files include a
content-sniffed MIME type.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nav, logger, err := opts.newNavigator()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			w := cmd.OutOrStdout()
			for i, arg := range args {
				info, err := describeArg(nav, arg)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(w)
				}
				printInfo(w, arg, info)
			}
			return nil
		},
	}

	return cmd
}

// NewSizeCmd creates and returns the size subcommand for the pathnav CLI.
// It sums file sizes below a folder by scanning the filesystem.
func NewSizeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size [PATH]",
		Short: "Sum file sizes below a folder",
		Long: `Sum the sizes of every file below the root, or below PATH when given.

The scan runs on the filesystem, so files beyond the tracked tree's
depth and count bounds are included.`,
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
			total, count, err := node.TotalSize(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes) across %d files\n",
				pathnavigator.FormatBytes(total), total, count)
			return nil
		},
	}

	return cmd
}

// describeArg resolves a slash-separated key chain and describes its final
// segment.
func describeArg(nav *pathnavigator.Navigator, arg string) (pathnavigator.Info, error) {
	keys := splitKeyPath(arg)
	if len(keys) == 0 {
		return pathnavigator.Info{}, fmt.Errorf("empty key %q", arg)
	}
	node := nav.Root()
	for _, key := range keys[:len(keys)-1] {
		ent := node.Resolve(key)
		if ent.Kind != pathnavigator.KindFolder {
			return pathnavigator.Info{}, fmt.Errorf("%q is not a tracked folder under %s", key, node.Path())
		}
		node = ent.Folder
	}
	return node.Describe(keys[len(keys)-1])
}

func printInfo(w io.Writer, arg string, info pathnavigator.Info) {
	fmt.Fprintln(w, arg)
	fmt.Fprintf(w, "  name      %s\n", info.Name)
	fmt.Fprintf(w, "  key       %s\n", info.Key)
	fmt.Fprintf(w, "  path      %s\n", info.Path)
	fmt.Fprintf(w, "  size      %s (%d bytes)\n", info.SizeHuman, info.Size)
	fmt.Fprintf(w, "  mode      %s\n", info.Mode)
	fmt.Fprintf(w, "  modified  %s\n", info.Modified.Format(time.RFC3339))
	if info.IsDir {
		fmt.Fprintln(w, "  type      directory")
	} else if info.MIME != "" {
		fmt.Fprintf(w, "  type      file (%s)\n", info.MIME)
	} else {
		fmt.Fprintln(w, "  type      file")
	}
}
