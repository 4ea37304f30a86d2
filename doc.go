// Package pathnavigator mirrors a directory subtree into a navigable
// in-memory tree so callers reach files and folders through stable,
// identifier-safe keys instead of hand-built path strings.
//
// The package is organized around four pieces:
//   - Canonicalizer: turns arbitrary entry names into collision-free,
//     identifier-safe keys with a reversible original-name mapping
//   - Folder: one directory, holding canonical-keyed maps of subfolders
//     and file paths
//   - Navigator: the root folder that walks the filesystem, owns the node
//     store, the tree-wide canonicalizer, and the refresh policy
//   - Registry: a flat shortcut namespace of names to arbitrary paths,
//     with JSON/YAML/TOML persistence
//
// Freshness is explicit: the tree reflects the filesystem as of the last
// walk, and Refresh re-walks with pruning. The AutoRefresh policy trades
// lookup cost for freshness by re-walking before lookups and after
// mutations.
//
// Example Usage:
//
//	nav, err := pathnavigator.New("/path/to/project")
//	if err != nil {
//		return err
//	}
//	if ent := nav.Resolve("data"); ent.Kind == pathnavigator.KindFolder {
//		files, _ := ent.Folder.Glob("**/*.csv")
//		_ = files
//	}
//	nav.Shortcuts.Add("results", "/shared/results", false)
package pathnavigator
