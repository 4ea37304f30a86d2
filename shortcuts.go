package pathnavigator

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"go.uber.org/zap"
)

// ImportMode restricts which directory entries AddFromDirectory registers.
type ImportMode int

const (
	// ImportAll registers both files and folders.
	ImportAll ImportMode = iota
	// ImportFiles registers regular files only.
	ImportFiles
	// ImportFolders registers directories only.
	ImportFolders
)

func (m ImportMode) String() string {
	switch m {
	case ImportFiles:
		return "files"
	case ImportFolders:
		return "folders"
	default:
		return "all"
	}
}

// DirImport configures a bulk import of a directory's immediate children.
// Include and Exclude are regular expressions matched against entry names;
// an empty pattern imposes no constraint, and Exclude wins when both match.
type DirImport struct {
	Mode      ImportMode
	Overwrite bool
	Prefix    string
	Include   string
	Exclude   string
}

// ShortcutEntry is one registered shortcut for listing: the original name
// the caller supplied, the canonical key it is stored under, and the target
// path.
type ShortcutEntry struct {
	Name string
	Key  string
	Path string
}

// Registry is a flat namespace of shortcut names to absolute paths,
// independent of any mirrored tree. Names pass through the registry's own
// canonicalizer, so the registry accepts the same arbitrary names the tree
// does and keeps them recoverable for export.
type Registry struct {
	entries map[string]string
	canon   *Canonicalizer
	log     *zap.Logger
}

// NewRegistry returns an empty registry. A nil logger keeps it silent.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		entries: make(map[string]string),
		canon:   newRegistryCanonicalizer(),
		log:     logger,
	}
}

// Add registers path under name. Registering the same path twice is a
// no-op; registering a different path under a taken name fails with a
// *CollisionError unless overwrite is set. The stored path is absolutized.
func (r *Registry) Add(name, path string, overwrite bool) error {
	key, err := r.canon.Canonical(name)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if existing, ok := r.entries[key]; ok && existing != abs && !overwrite {
		return &CollisionError{Name: name, Key: key, Existing: existing, Proposed: abs}
	}
	r.entries[key] = abs
	r.log.Debug("shortcut added", zap.String("name", name), zap.String("path", abs))
	return nil
}

// AddFromDirectory registers dir's immediate children as shortcuts named
// opts.Prefix plus the entry name. Entries are filtered by opts.Mode and
// the Include/Exclude expressions before registration; the first failing
// Add aborts the import.
func (r *Registry) AddFromDirectory(dir string, opts DirImport) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("import %s: %w", abs, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("import %s: %w", abs, ErrNotDirectory)
	}

	var include, exclude *regexp.Regexp
	if opts.Include != "" {
		if include, err = regexp.Compile(opts.Include); err != nil {
			return fmt.Errorf("include pattern: %w", err)
		}
	}
	if opts.Exclude != "" {
		if exclude, err = regexp.Compile(opts.Exclude); err != nil {
			return fmt.Errorf("exclude pattern: %w", err)
		}
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return fmt.Errorf("import %s: %w", abs, err)
	}
	for _, e := range entries {
		name := e.Name()
		if exclude != nil && exclude.MatchString(name) {
			continue
		}
		if include != nil && !include.MatchString(name) {
			continue
		}
		switch opts.Mode {
		case ImportFiles:
			if !e.Type().IsRegular() {
				continue
			}
		case ImportFolders:
			if !e.IsDir() {
				continue
			}
		default:
			if !e.IsDir() && !e.Type().IsRegular() {
				continue
			}
		}
		if err := r.Add(opts.Prefix+name, filepath.Join(abs, name), opts.Overwrite); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the path registered under name. The name may be the original
// shortcut name or its canonical key.
func (r *Registry) Get(name string) (string, error) {
	if path, ok := r.entries[r.canon.keyFor(name)]; ok {
		return path, nil
	}
	return "", fmt.Errorf("shortcut %q: %w", name, ErrNotFound)
}

// Remove drops the shortcut registered under name. Removing an unknown
// name logs a warning and returns nil, removal is idempotent.
func (r *Registry) Remove(name string) error {
	key := r.canon.keyFor(name)
	if _, ok := r.entries[key]; !ok {
		r.log.Warn("shortcut not tracked", zap.String("name", name))
		return nil
	}
	delete(r.entries, key)
	r.log.Debug("shortcut removed", zap.String("name", name))
	return nil
}

// Clear drops every shortcut. Recorded name mappings survive, so keys stay
// stable if the same names are added again.
func (r *Registry) Clear() {
	r.entries = make(map[string]string)
}

// Len returns the number of registered shortcuts.
func (r *Registry) Len() int { return len(r.entries) }

// Entries lists every shortcut sorted by original name.
func (r *Registry) Entries() []ShortcutEntry {
	list := make([]ShortcutEntry, 0, len(r.entries))
	for key, path := range r.entries {
		list = append(list, ShortcutEntry{Name: r.canon.OriginalOf(key), Key: key, Path: path})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Export renders the registry as a flat original-name to path mapping, the
// shape Import and the persistence helpers round-trip.
func (r *Registry) Export() map[string]string {
	out := make(map[string]string, len(r.entries))
	for key, path := range r.entries {
		out[r.canon.OriginalOf(key)] = path
	}
	return out
}

// Import registers every name/path pair from m, re-canonicalizing names on
// the way in. Pairs are applied in name order so collision failures are
// deterministic; the first failure aborts.
func (r *Registry) Import(m map[string]string, overwrite bool) error {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.Add(name, m[name], overwrite); err != nil {
			return err
		}
	}
	return nil
}
