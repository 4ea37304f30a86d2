package pathnavigator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Folder mirrors one directory of the navigated tree. Children live in
// canonical-keyed maps; the original entry names stay recoverable through
// the tree's shared canonicalizer. Folders are created by walks and by
// MakeDir, never constructed directly.
type Folder struct {
	name       string
	parentPath string
	subs       map[string]*Folder
	files      map[string]string
	nav        *Navigator
}

func newFolder(name, parentPath string, nav *Navigator) *Folder {
	return &Folder{
		name:       name,
		parentPath: parentPath,
		subs:       make(map[string]*Folder),
		files:      make(map[string]string),
		nav:        nav,
	}
}

// Name returns the raw filesystem entry name of this folder.
func (f *Folder) Name() string { return f.name }

// ParentPath returns the absolute path of the containing directory.
func (f *Folder) ParentPath() string { return f.parentPath }

// Path returns the absolute path of this folder.
func (f *Folder) Path() string { return filepath.Join(f.parentPath, f.name) }

// Join joins this folder's path with additional components.
func (f *Folder) Join(parts ...string) string {
	return filepath.Join(append([]string{f.Path()}, parts...)...)
}

// Resolve looks up key among this folder's children, subfolders before
// files. With auto-refresh enabled the tree is re-walked first, so entries
// created on disk since the last walk are visible. Callers distinguish the
// outcomes through Entry.Kind; a miss is a value, not an error.
func (f *Folder) Resolve(key string) Entry {
	f.nav.maybeRefresh()
	return f.lookup(key)
}

// lookup accepts a canonical key or a recorded original name. Key space
// wins when a string is live in both.
func (f *Folder) lookup(key string) Entry {
	_, ent := f.resolveKey(key)
	return ent
}

func (f *Folder) resolveKey(key string) (string, Entry) {
	if sub, ok := f.subs[key]; ok {
		return key, Entry{Kind: KindFolder, Folder: sub}
	}
	if path, ok := f.files[key]; ok {
		return key, Entry{Kind: KindFile, Path: path}
	}
	if alt := f.nav.canon.keyFor(key); alt != key {
		if sub, ok := f.subs[alt]; ok {
			return alt, Entry{Kind: KindFolder, Folder: sub}
		}
		if path, ok := f.files[alt]; ok {
			return alt, Entry{Kind: KindFile, Path: path}
		}
	}
	return key, Entry{Kind: KindNotFound}
}

// List enumerates tracked children sorted by display name, subfolders and
// files separately. Display names are the original entry names; each Child
// carries the canonical key needed for Resolve.
func (f *Folder) List() (folders, files []Child) {
	for key, sub := range f.subs {
		folders = append(folders, Child{Name: sub.name, Key: key, IsDir: true})
	}
	for key, path := range f.files {
		files = append(files, Child{Name: filepath.Base(path), Key: key})
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return folders, files
}

// MakeDir creates a chain of subdirectories under this folder and tracks
// one node per level, canonicalizing each component at the level it
// appears. Existing levels are reused. Returns the deepest node.
func (f *Folder) MakeDir(parts ...string) (*Folder, error) {
	comps := splitComponents(parts)
	if len(comps) == 0 {
		return f, nil
	}

	full := f.Join(comps...)
	if err := os.MkdirAll(full, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", full, err)
	}

	node := f
	for _, part := range comps {
		key, err := f.nav.canon.Canonical(part)
		if err != nil {
			return nil, err
		}
		child, ok := node.subs[key]
		if !ok {
			child = newFolder(part, node.Path(), f.nav)
			node.subs[key] = child
			f.nav.nodes[child.Path()] = child
		}
		node = child
	}
	f.nav.log.Debug("directory created", zap.String("path", full))
	f.nav.maybeRefresh()
	return node, nil
}

// Delete removes the child tracked under key from the filesystem and from
// this folder; deleting a folder removes its whole subtree. An untracked
// key logs a warning and returns nil, removal is idempotent.
func (f *Folder) Delete(key string) error {
	key, ent := f.resolveKey(key)
	switch ent.Kind {
	case KindFolder:
		sub := ent.Folder
		if err := os.RemoveAll(sub.Path()); err != nil {
			return fmt.Errorf("remove %s: %w", sub.Path(), err)
		}
		delete(f.subs, key)
		f.nav.dropSubtree(sub)
		f.nav.log.Debug("folder removed", zap.String("path", sub.Path()))
	case KindFile:
		if err := os.Remove(ent.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", ent.Path, err)
		}
		delete(f.files, key)
		f.nav.log.Debug("file removed", zap.String("path", ent.Path))
	default:
		f.nav.log.Warn("delete target not tracked",
			zap.String("key", key), zap.String("folder", f.Path()))
	}
	f.nav.maybeRefresh()
	return nil
}

// Exists checks the filesystem for key under this folder's path. Canonical
// keys resolve to their original entry name first, so keys of rewritten
// names land on the real entry; raw names stat directly.
func (f *Folder) Exists(key string) bool {
	f.nav.maybeRefresh()
	name := f.nav.canon.OriginalOf(key)
	_, err := os.Stat(filepath.Join(f.Path(), name))
	return err == nil
}

// PathTo returns the absolute path of the child tracked under key. A miss
// triggers one refresh and retry before giving up with ErrNotFound.
func (f *Folder) PathTo(key string) (string, error) {
	ent := f.lookup(key)
	if !ent.Found() {
		if err := f.nav.Refresh(); err != nil {
			return "", fmt.Errorf("refresh: %w", err)
		}
		ent = f.lookup(key)
	}
	switch ent.Kind {
	case KindFolder:
		return ent.Folder.Path(), nil
	case KindFile:
		return ent.Path, nil
	}
	return "", fmt.Errorf("%q in %s: %w", key, f.Path(), ErrNotFound)
}

// AddShortcut registers this folder's own path in the navigator's shortcut
// registry under name.
func (f *Folder) AddShortcut(name string) error {
	return f.nav.Shortcuts.Add(name, f.Path(), false)
}

// AddFileShortcut registers the path of the file tracked under key. A miss
// triggers one refresh and retry; a key that still does not resolve to a
// tracked file fails with ErrNotFound.
func (f *Folder) AddFileShortcut(name, key string) error {
	ent := f.lookup(key)
	if ent.Kind != KindFile {
		if err := f.nav.Refresh(); err != nil {
			return fmt.Errorf("refresh: %w", err)
		}
		ent = f.lookup(key)
	}
	if ent.Kind != KindFile {
		return fmt.Errorf("file %q in %s: %w", key, f.Path(), ErrNotFound)
	}
	return f.nav.Shortcuts.Add(name, ent.Path, false)
}

// ShortcutAllFiles registers every file in this folder as a shortcut named
// prefix plus the file's original name.
func (f *Folder) ShortcutAllFiles(prefix string, overwrite bool) error {
	return f.nav.Shortcuts.AddFromDirectory(f.Path(), DirImport{
		Mode:      ImportFiles,
		Prefix:    prefix,
		Overwrite: overwrite,
	})
}

func splitComponents(parts []string) []string {
	var comps []string
	for _, part := range parts {
		for _, piece := range strings.FieldsFunc(part, func(r rune) bool {
			return r == '/' || r == rune(os.PathSeparator)
		}) {
			if piece != "." {
				comps = append(comps, piece)
			}
		}
	}
	return comps
}
