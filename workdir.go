package pathnavigator

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Chdir makes this folder the process working directory.
func (f *Folder) Chdir() error {
	if err := os.Chdir(f.Path()); err != nil {
		return fmt.Errorf("chdir %s: %w", f.Path(), err)
	}
	f.nav.log.Info("working directory changed", zap.String("path", f.Path()))
	return nil
}

// SearchList is an ordered, duplicate-free list of directories in the
// shape of a PATH-style search path. Callers feed it folder paths and
// render it with String.
type SearchList struct {
	paths []string
}

// Prepend puts path at the front of the list. Known paths are left where
// they are.
func (s *SearchList) Prepend(path string) {
	if s.Contains(path) {
		return
	}
	s.paths = append([]string{path}, s.paths...)
}

// Append puts path at the back of the list. Known paths are left where
// they are.
func (s *SearchList) Append(path string) {
	if s.Contains(path) {
		return
	}
	s.paths = append(s.paths, path)
}

// Contains reports whether path is already listed.
func (s *SearchList) Contains(path string) bool {
	for _, p := range s.paths {
		if p == path {
			return true
		}
	}
	return false
}

// Paths returns the listed directories in order.
func (s *SearchList) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// String renders the list with the platform's path list separator, ready
// for a PATH-style environment variable.
func (s *SearchList) String() string {
	return strings.Join(s.paths, string(os.PathListSeparator))
}
