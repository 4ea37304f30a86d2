// Package config provides 12-factor configuration management for the
// pathnav CLI.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables for development flexibility.
//
// Configuration Sections:
//   - Navigator: root path, refresh behavior, and traversal bounds
//   - Logging: log level and output format
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("navigating %s\n", cfg.Navigator.Root)
//
// Environment Variables:
//   - PN_ROOT, PN_AUTO_REFRESH
//   - PN_MAX_DEPTH, PN_MAX_FILES, PN_MAX_SUBDIRS
//   - PN_INCLUDE, PN_EXCLUDE (comma-separated glob lists)
//   - PN_LOG_LEVEL, PN_LOG_DEV
package config
