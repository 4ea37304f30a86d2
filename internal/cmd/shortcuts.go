package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	pathnavigator "github.com/philip928lin/PathNavigator"
	"github.com/philip928lin/PathNavigator/internal/logging"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// scOptions carries the registry file settings shared by the sc subcommands.
type scOptions struct {
	*rootOptions
	file   string
	format string
}

// NewShortcutCmd creates and returns the sc command group for the pathnav
// CLI. Subcommands operate on a persistent registry file: load, mutate,
// save back.
func NewShortcutCmd(opts *rootOptions) *cobra.Command {
	sc := &scOptions{rootOptions: opts}

	cmd := &cobra.Command{
		Use:     "sc",
		Aliases: []string{"shortcut", "shortcuts"},
		Short:   "Manage the shortcut registry",
		Long: `Manage a persistent registry of named path shortcuts.

The registry lives in the file named by --file. Its encoding follows
the file extension (.json, .yaml/.yml, .toml) unless --format forces
one for every file the command touches. Mutating subcommands load the
file when it exists, apply the change, and write the file back.`,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&sc.file, "file", "f", "shortcuts.json", "Registry file")
	pf.StringVar(&sc.format, "format", "", "Registry encoding (json, yaml, toml); default from the file extension")

	cmd.AddCommand(
		newShortcutAddCmd(sc),
		newShortcutListCmd(sc),
		newShortcutRemoveCmd(sc),
		newShortcutExportCmd(sc),
		newShortcutImportCmd(sc),
	)

	return cmd
}

func newShortcutAddCmd(sc *scOptions) *cobra.Command {
	var (
		overwrite bool
		fromDir   string
		mode      string
		prefix    string
		include   string
		exclude   string
	)

	cmd := &cobra.Command{
		Use:   "add [NAME PATH]",
		Short: "Register a shortcut",
		Long: `Register PATH under NAME in the registry file. Registering a taken
name for a different path fails unless --overwrite is set.

With --from-dir, register every immediate child of a directory instead:
names are the entry names with --prefix prepended, filtered by --mode
and the --include/--exclude regular expressions.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromDir == "" && len(args) != 2 {
				return fmt.Errorf("need NAME and PATH, or --from-dir")
			}
			if fromDir != "" && len(args) != 0 {
				return fmt.Errorf("--from-dir takes no positional arguments")
			}
			m, err := parseImportMode(mode)
			if err != nil {
				return err
			}
			logger, err := sc.newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			reg, err := sc.openRegistry(logger)
			if err != nil {
				return err
			}
			if fromDir != "" {
				err = reg.AddFromDirectory(fromDir, pathnavigator.DirImport{
					Mode:      m,
					Overwrite: overwrite,
					Prefix:    prefix,
					Include:   include,
					Exclude:   exclude,
				})
			} else {
				err = reg.Add(args[0], args[1], overwrite)
			}
			if err != nil {
				return err
			}
			if err := sc.save(reg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d shortcuts in %s\n", reg.Len(), sc.file)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing targets instead of failing")
	cmd.Flags().StringVar(&fromDir, "from-dir", "", "Register every immediate child of this directory")
	cmd.Flags().StringVar(&mode, "mode", "all", "Entries to import with --from-dir (all, files, folders)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Name prefix for --from-dir imports")
	cmd.Flags().StringVar(&include, "include", "", "Regexp entry names must match with --from-dir")
	cmd.Flags().StringVar(&exclude, "exclude", "", "Regexp entry names must not match with --from-dir")

	return cmd
}

func newShortcutListCmd(sc *scOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List registered shortcuts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := sc.newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			reg, err := sc.openRegistry(logger)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			entries := reg.Entries()
			if len(entries) == 0 {
				fmt.Fprintf(w, "no shortcuts in %s\n", sc.file)
				return nil
			}
			for _, e := range entries {
				if e.Key == e.Name {
					fmt.Fprintf(w, "%-24s %s\n", e.Name, e.Path)
				} else {
					fmt.Fprintf(w, "%-24s %s (key %s)\n", e.Name, e.Path, e.Key)
				}
			}
			return nil
		},
	}

	return cmd
}

func newShortcutRemoveCmd(sc *scOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm NAME...",
		Aliases: []string{"remove"},
		Short:   "Remove shortcuts",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := sc.newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			reg, err := sc.openRegistry(logger)
			if err != nil {
				return err
			}
			for _, name := range args {
				if err := reg.Remove(name); err != nil {
					return err
				}
			}
			if err := sc.save(reg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d shortcuts in %s\n", reg.Len(), sc.file)
			return nil
		},
	}

	return cmd
}

func newShortcutExportCmd(sc *scOptions) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "export OUTPUT",
		Short: "Export the registry to another file",
		Long: `Write the registry to OUTPUT. The encoding follows OUTPUT's extension
unless --format forces one, so export converts between encodings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := sc.newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			reg, err := sc.openRegistry(logger)
			if err != nil {
				return err
			}
			if err := sc.saveTo(reg, args[0], overwrite); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d shortcuts to %s\n", reg.Len(), args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace OUTPUT if it exists")

	return cmd
}

func newShortcutImportCmd(sc *scOptions) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "import INPUT",
		Short: "Merge shortcuts from another file",
		Long: `Merge the shortcuts stored in INPUT into the registry file. A name
colliding with a different target fails the merge unless --overwrite
lets INPUT win.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := sc.newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			reg, err := sc.openRegistry(logger)
			if err != nil {
				return err
			}
			if err := sc.load(reg, args[0], overwrite); err != nil {
				return err
			}
			if err := sc.save(reg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d shortcuts in %s\n", reg.Len(), sc.file)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Let INPUT win name collisions")

	return cmd
}

// openRegistry returns the registry stored in the --file target. A missing
// file yields an empty registry rather than an error, so the first add
// creates it.
func (s *scOptions) openRegistry(logger *logging.Logger) (*pathnavigator.Registry, error) {
	reg := pathnavigator.NewRegistry(logger.Logger)
	if _, err := os.Stat(s.file); errors.Is(err, fs.ErrNotExist) {
		return reg, nil
	} else if err != nil {
		return nil, fmt.Errorf("registry file: %w", err)
	}
	if err := s.load(reg, s.file, false); err != nil {
		return nil, err
	}
	return reg, nil
}

// load merges the registry document at path into reg.
func (s *scOptions) load(reg *pathnavigator.Registry, path string, overwrite bool) error {
	format, err := registryFormat(path, s.format)
	if err != nil {
		return err
	}
	switch format {
	case formatYAML:
		return reg.LoadYAML(path, overwrite)
	case formatTOML:
		return reg.LoadTOML(path, overwrite)
	default:
		return reg.LoadJSON(path, overwrite)
	}
}

// save rewrites the registry file in place.
func (s *scOptions) save(reg *pathnavigator.Registry) error {
	return s.saveTo(reg, s.file, true)
}

func (s *scOptions) saveTo(reg *pathnavigator.Registry, path string, overwrite bool) error {
	format, err := registryFormat(path, s.format)
	if err != nil {
		return err
	}
	switch format {
	case formatYAML:
		return reg.SaveYAML(path, overwrite)
	case formatTOML:
		return reg.SaveTOML(path, overwrite)
	default:
		return reg.SaveJSON(path, overwrite)
	}
}

// registryFormat resolves the encoding for path: an explicit format wins,
// otherwise the file extension decides, defaulting to JSON.
func registryFormat(path, explicit string) (string, error) {
	switch explicit {
	case formatJSON, formatYAML, formatTOML:
		return explicit, nil
	case "":
	default:
		return "", fmt.Errorf("unknown format %q", explicit)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", "":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".toml":
		return formatTOML, nil
	}
	return "", fmt.Errorf("cannot infer registry format from %q", path)
}

// parseImportMode maps a flag value onto an ImportMode.
func parseImportMode(s string) (pathnavigator.ImportMode, error) {
	switch s {
	case "", "all":
		return pathnavigator.ImportAll, nil
	case "files":
		return pathnavigator.ImportFiles, nil
	case "folders", "dirs":
		return pathnavigator.ImportFolders, nil
	}
	return pathnavigator.ImportAll, fmt.Errorf("unknown import mode %q", s)
}
