// Command pathnav mirrors a directory subtree into a navigable tree whose
// entries are reachable by identifier-safe canonical keys.
//
// It exposes the tree through subcommands: box-drawing tree rendering,
// folder listing, project scaffolding, entry stats, filesystem search, tar
// snapshots, and a persistent shortcut registry stored as JSON, YAML, or
// TOML. Run "pathnav --help" for the full command surface.
package main
