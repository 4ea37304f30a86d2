package pathnavigator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// Glob matches pattern under this folder and returns the relative paths.
// Patterns use doublestar syntax, so "**/*.csv" reaches every depth.
func (f *Folder) Glob(pattern string) ([]string, error) {
	root := f.Path()
	matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	rel := make([]string, 0, len(matches))
	for _, m := range matches {
		if r, err := filepath.Rel(root, m); err == nil {
			rel = append(rel, r)
		}
	}
	return rel, nil
}

// Find walks the subtree below this folder and returns the relative paths
// of files whose base name matches pattern, sorted. The scan runs on the
// filesystem, so untracked entries are found too.
func (f *Folder) Find(ctx context.Context, pattern string) ([]string, error) {
	root := f.Path()
	var mu sync.Mutex
	var matches []string

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil || d.IsDir() {
			return nil
		}
		ok, err := filepath.Match(pattern, filepath.Base(p))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if rel, err := filepath.Rel(root, p); err == nil {
			mu.Lock()
			matches = append(matches, rel)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}
