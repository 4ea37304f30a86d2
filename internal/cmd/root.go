package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	pathnavigator "github.com/philip928lin/PathNavigator"
	"github.com/philip928lin/PathNavigator/internal/config"
	"github.com/philip928lin/PathNavigator/internal/logging"
)

// rootOptions carries the persistent flag values every subcommand reads.
// Flag defaults are seeded from the environment (PN_*), so an explicit flag
// always wins over env.
type rootOptions struct {
	root        string
	autoRefresh bool
	maxDepth    int
	maxFiles    int
	maxSubdirs  int
	include     []string
	exclude     []string
	logLevel    string
	dev         bool
}

// NewRootCmd creates and returns the root cobra command for the pathnav CLI.
// It sets up all subcommands, command groups, and the persistent flags.
func NewRootCmd() *cobra.Command {
	cfg := config.LoadOrDefault()
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "pathnav",
		Short: "pathnav - navigate a directory tree through canonical keys",
		Long: `pathnav mirrors a directory subtree into a navigable tree whose entries
are reachable by identifier-safe canonical keys while the original
filesystem names stay recoverable.

Use subcommands to inspect and manipulate the tree:
  - tree: print the tracked tree with original names
  - list: list one folder's children with their canonical keys
  - scaffold: create a project directory skeleton
  - stat: describe entries (size, mode, MIME type)
  - size: sum file sizes below a folder
  - find: search the filesystem below a folder
  - snapshot: archive a subtree into a tar file
  - sc: manage a persistent shortcut registry`,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.root, "root", "r", cfg.Navigator.Root, "Root directory to navigate")
	pf.BoolVar(&opts.autoRefresh, "auto-refresh", cfg.Navigator.AutoRefresh, "Re-walk the tree before lookups")
	pf.IntVar(&opts.maxDepth, "max-depth", cfg.Navigator.MaxDepth, "Traversal depth bound (0 = unlimited)")
	pf.IntVar(&opts.maxFiles, "max-files", cfg.Navigator.MaxFiles, "Tracked files per directory (0 = unlimited)")
	pf.IntVar(&opts.maxSubdirs, "max-subdirs", cfg.Navigator.MaxSubdirs, "Tracked subdirectories per directory (0 = unlimited)")
	pf.StringSliceVar(&opts.include, "include", cfg.Navigator.Include, "Glob patterns tracked files must match")
	pf.StringSliceVar(&opts.exclude, "exclude", cfg.Navigator.Exclude, "Glob patterns to skip (matching directories are pruned)")
	pf.StringVar(&opts.logLevel, "log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	pf.BoolVar(&opts.dev, "dev", cfg.Logging.Development, "Console log encoding with debug detail")

	groupNavigation := "navigation"
	groupShortcuts := "shortcuts"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupNavigation,
		Title: "Navigation Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupShortcuts,
		Title: "Shortcut Registry",
	})

	navigationCmds := []*cobra.Command{
		NewTreeCmd(opts),
		NewListCmd(opts),
		NewScaffoldCmd(opts),
		NewStatCmd(opts),
		NewSizeCmd(opts),
		NewFindCmd(opts),
		NewSnapshotCmd(opts),
	}
	for _, c := range navigationCmds {
		c.GroupID = groupNavigation
		rootCmd.AddCommand(c)
	}

	shortcutCmd := NewShortcutCmd(opts)
	shortcutCmd.GroupID = groupShortcuts
	rootCmd.AddCommand(shortcutCmd)

	return rootCmd
}

// newLogger builds the logger the persistent flags specify. Callers own
// syncing it.
func (o *rootOptions) newLogger() (*logging.Logger, error) {
	logger, err := logging.New(logging.Config{
		Level:       o.logLevel,
		Development: o.dev,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// newNavigator builds the logger and navigator the persistent flags specify.
func (o *rootOptions) newNavigator() (*pathnavigator.Navigator, *logging.Logger, error) {
	logger, err := o.newLogger()
	if err != nil {
		return nil, nil, err
	}

	nav, err := pathnavigator.NewWithConfig(o.root, pathnavigator.Config{
		AutoRefresh:      o.autoRefresh,
		MaxDepth:         o.maxDepth,
		MaxFilesPerDir:   o.maxFiles,
		MaxSubdirsPerDir: o.maxSubdirs,
		Include:          o.include,
		Exclude:          o.exclude,
		Logger:           logger.Logger,
	})
	if err != nil {
		return nil, nil, err
	}
	return nav, logger, nil
}

// resolveFolder follows a slash-separated chain of keys down from the root.
// Segments may be canonical keys or original entry names.
func resolveFolder(nav *pathnavigator.Navigator, path string) (*pathnavigator.Folder, error) {
	node := nav.Root()
	for _, key := range splitKeyPath(path) {
		ent := node.Resolve(key)
		if ent.Kind != pathnavigator.KindFolder {
			return nil, fmt.Errorf("%q is not a tracked folder under %s", key, node.Path())
		}
		node = ent.Folder
	}
	return node, nil
}

// splitKeyPath splits a slash-separated key chain, dropping empty and "."
// segments.
func splitKeyPath(path string) []string {
	var keys []string
	for _, part := range strings.Split(path, "/") {
		if part != "" && part != "." {
			keys = append(keys, part)
		}
	}
	return keys
}
