// Package cmd provides the command-line interface implementation for pathnav.
//
// This package contains all the subcommand implementations for the pathnav
// CLI tool. It uses the Cobra library for command structure and Fang for
// styled execution.
//
// The package is organized into the following commands:
//   - root: main command coordinator and persistent navigator flags
//   - tree: box-drawing rendering of the tracked tree
//   - list: one folder's tracked children with their canonical keys
//   - scaffold: project skeleton creation
//   - stat, size: entry metadata and recursive size accounting
//   - find: filesystem search below a folder
//   - snapshot: tar archiving of a subtree
//   - sc: shortcut registry management backed by a JSON/YAML/TOML file
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The root command wires the
// persistent flags shared by every subcommand; flag defaults come from the
// environment via internal/config, so flags override env values.
package cmd
