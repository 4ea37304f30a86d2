package pathnavigator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config controls construction of a Navigator. The zero value walks the
// whole subtree eagerly, unbounded, with a no-op logger.
type Config struct {
	// AutoRefresh re-walks the tree before lookups and after mutations,
	// trading lookup cost for freshness.
	AutoRefresh bool

	// MaxDepth bounds traversal depth. The root's children sit at depth
	// 1; directories at the limit are tracked but not descended into.
	// Zero means unlimited.
	MaxDepth int

	// MaxFilesPerDir caps tracked files per directory, in enumeration
	// order. Zero means unlimited.
	MaxFilesPerDir int

	// MaxSubdirsPerDir caps tracked subdirectories per directory. Zero
	// means unlimited.
	MaxSubdirsPerDir int

	// Include restricts tracked files to names matching at least one
	// glob pattern. Empty includes every file. Directories are only
	// subject to Exclude.
	Include []string

	// Exclude skips entries whose name matches any glob pattern.
	// Matching directories are pruned whole. Exclude wins over Include.
	Exclude []string

	// DeferWalk skips the initial walk; call Walk when ready.
	DeferWalk bool

	// Logger receives structured walk and mutation events. Nil installs
	// a no-op logger, so library use stays silent by default.
	Logger *zap.Logger
}

// Navigator mirrors the subtree rooted at a fixed path into an in-memory
// tree of Folders and owns everything shared across it: the node store,
// the tree-wide canonicalizer, and the shortcut registry. The embedded
// Folder is the tree root, so a Navigator is usable anywhere a Folder is.
type Navigator struct {
	*Folder

	// Shortcuts is the registry owned by this navigator. It keeps its
	// own canonicalizer, separate from the tree's.
	Shortcuts *Registry

	rootPath string
	canon    *Canonicalizer
	nodes    map[string]*Folder

	autoRefresh bool
	maxDepth    int
	maxFiles    int
	maxSubdirs  int
	include     []string
	exclude     []string

	log *zap.Logger
	id  string
}

// New mirrors the subtree rooted at root with default configuration.
func New(root string) (*Navigator, error) {
	return NewWithConfig(root, Config{})
}

// NewWithConfig mirrors the subtree rooted at root. The root must be an
// existing directory; it is pinned for the navigator's lifetime and every
// refresh walks from it.
func NewWithConfig(root string, cfg Config) (*Navigator, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s: %w", abs, ErrNotDirectory)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	n := &Navigator{
		rootPath:    abs,
		canon:       newNodeCanonicalizer(),
		nodes:       make(map[string]*Folder),
		autoRefresh: cfg.AutoRefresh,
		maxDepth:    cfg.MaxDepth,
		maxFiles:    cfg.MaxFilesPerDir,
		maxSubdirs:  cfg.MaxSubdirsPerDir,
		include:     cfg.Include,
		exclude:     cfg.Exclude,
		id:          uuid.New().String(),
	}
	n.log = logger.With(zap.String("nav_id", n.id))
	n.Shortcuts = NewRegistry(n.log)
	n.Folder = newFolder(filepath.Base(abs), filepath.Dir(abs), n)
	n.nodes[abs] = n.Folder

	if !cfg.DeferWalk {
		if err := n.Walk(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// RootPath returns the filesystem root this navigator mirrors. It never
// changes after construction.
func (n *Navigator) RootPath() string { return n.rootPath }

// Root returns the root folder node.
func (n *Navigator) Root() *Folder { return n.Folder }

// Node returns the tracked folder at the given absolute path.
func (n *Navigator) Node(path string) (*Folder, bool) {
	f, ok := n.nodes[path]
	return f, ok
}

// Walk populates the tree with a depth-first traversal from the root.
// Directory entries become folder nodes keyed by canonical name; file
// entries land in their parent's file map. Entries gone from the
// filesystem since the previous walk are pruned, while surviving nodes
// keep their identity. Symlinks are not followed.
func (n *Navigator) Walk() error {
	seen := map[string]struct{}{n.rootPath: {}}
	if err := n.walkDir(n.Folder, 1, seen); err != nil {
		return fmt.Errorf("walk %s: %w", n.rootPath, err)
	}
	n.prune(seen)
	n.log.Debug("walk complete", zap.Int("nodes", len(n.nodes)))
	return nil
}

// Refresh re-walks the whole tree from the root. It is never scoped to a
// descendant.
func (n *Navigator) Refresh() error { return n.Walk() }

func (n *Navigator) maybeRefresh() {
	if !n.autoRefresh {
		return
	}
	if err := n.Walk(); err != nil {
		n.log.Warn("auto refresh failed", zap.Error(err))
	}
}

// walkDir reads one directory and recurses. depth is the depth of the
// entries being enumerated, with the root's children at 1. Unreadable
// subdirectories are skipped with a warning; only the root read fails the
// walk.
func (n *Navigator) walkDir(node *Folder, depth int, seen map[string]struct{}) error {
	dir := node.Path()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var nFiles, nSubs int
	fresh := make(map[string]string)
	for _, e := range entries {
		name := e.Name()
		if n.excluded(name) {
			continue
		}
		switch {
		case e.IsDir():
			if n.maxSubdirs > 0 && nSubs >= n.maxSubdirs {
				continue
			}
			key, err := n.canon.Canonical(name)
			if err != nil {
				n.log.Warn("skipping entry", zap.String("name", name), zap.Error(err))
				continue
			}
			child, ok := node.subs[key]
			if !ok {
				child = newFolder(name, dir, n)
				node.subs[key] = child
			}
			nSubs++
			childPath := child.Path()
			n.nodes[childPath] = child
			seen[childPath] = struct{}{}
			if n.maxDepth == 0 || depth < n.maxDepth {
				if err := n.walkDir(child, depth+1, seen); err != nil {
					n.log.Warn("skipping unreadable directory",
						zap.String("path", childPath), zap.Error(err))
				}
			}
		case e.Type().IsRegular():
			if !n.included(name) {
				continue
			}
			if n.maxFiles > 0 && nFiles >= n.maxFiles {
				continue
			}
			key, err := n.canon.Canonical(name)
			if err != nil {
				n.log.Warn("skipping entry", zap.String("name", name), zap.Error(err))
				continue
			}
			fresh[key] = filepath.Join(dir, name)
			nFiles++
		}
	}
	node.files = fresh
	return nil
}

// prune drops every arena node the walk did not visit, detaching it from
// its parent when the parent survived.
func (n *Navigator) prune(seen map[string]struct{}) {
	for path, node := range n.nodes {
		if _, ok := seen[path]; ok {
			continue
		}
		delete(n.nodes, path)
		if parent, ok := n.nodes[node.parentPath]; ok {
			for key, child := range parent.subs {
				if child == node {
					delete(parent.subs, key)
					break
				}
			}
		}
	}
}

// dropSubtree removes a deleted folder and its descendants from the arena.
func (n *Navigator) dropSubtree(f *Folder) {
	delete(n.nodes, f.Path())
	for _, child := range f.subs {
		n.dropSubtree(child)
	}
}

func (n *Navigator) excluded(name string) bool {
	for _, pat := range n.exclude {
		if ok, _ := doublestar.Match(pat, name); ok {
			return true
		}
	}
	return false
}

func (n *Navigator) included(name string) bool {
	if len(n.include) == 0 {
		return true
	}
	for _, pat := range n.include {
		if ok, _ := doublestar.Match(pat, name); ok {
			return true
		}
	}
	return false
}
