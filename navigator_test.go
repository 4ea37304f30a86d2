package pathnavigator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := New(file)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotDirectory)

	_, err = New(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestNewPinsAbsoluteRoot(t *testing.T) {
	nav, root := seedTree(t)

	assert.Equal(t, root, nav.RootPath())
	assert.True(t, filepath.IsAbs(nav.RootPath()))
	assert.Equal(t, filepath.Base(root), nav.Name())
	assert.Same(t, nav.Folder, nav.Root())
}

func TestWalkBuildsArena(t *testing.T) {
	nav, root := seedTree(t)

	for _, path := range []string{
		root,
		filepath.Join(root, "data"),
		filepath.Join(root, "data", "raw files"),
		filepath.Join(root, "a-b"),
	} {
		node, ok := nav.Node(path)
		require.True(t, ok, "expected node for %s", path)
		assert.Equal(t, path, node.Path())
	}
}

func TestDeferWalk(t *testing.T) {
	nav, err := NewWithConfig(seedRoot(t), Config{DeferWalk: true})
	require.NoError(t, err)

	folders, files := nav.List()
	assert.Empty(t, folders)
	assert.Empty(t, files)

	require.NoError(t, nav.Walk())
	folders, _ = nav.List()
	assert.NotEmpty(t, folders)
}

func TestRefreshPicksUpNewEntries(t *testing.T) {
	nav, root := seedTree(t)

	require.NoError(t, os.Mkdir(filepath.Join(root, "added"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "added", "f.txt"), []byte("x"), 0o644))
	assert.Equal(t, KindNotFound, nav.Resolve("added").Kind)

	require.NoError(t, nav.Refresh())
	ent := nav.Resolve("added")
	require.Equal(t, KindFolder, ent.Kind)
	assert.Equal(t, KindFile, ent.Folder.Resolve("f.txt").Kind)
}

func TestRefreshPrunesRemovedEntries(t *testing.T) {
	nav, root := seedTree(t)

	dataBefore := nav.Resolve("data").Folder
	require.NotNil(t, dataBefore)

	require.NoError(t, os.RemoveAll(filepath.Join(root, "a-b")))
	require.NoError(t, os.Remove(filepath.Join(root, "notes.txt")))
	require.NoError(t, nav.Refresh())

	// Gone from the tree and the arena.
	assert.Equal(t, KindNotFound, nav.Resolve("a-b").Kind)
	assert.Equal(t, KindNotFound, nav.Resolve("notes.txt").Kind)
	_, ok := nav.Node(filepath.Join(root, "a-b"))
	assert.False(t, ok)

	// Survivors keep their node identity across the refresh.
	assert.Same(t, dataBefore, nav.Resolve("data").Folder)
}

func TestRefreshPrunesNestedSubtree(t *testing.T) {
	nav, root := seedTree(t)

	require.NoError(t, os.RemoveAll(filepath.Join(root, "data")))
	require.NoError(t, nav.Refresh())

	_, ok := nav.Node(filepath.Join(root, "data"))
	assert.False(t, ok)
	_, ok = nav.Node(filepath.Join(root, "data", "raw files"))
	assert.False(t, ok)
}

func TestMaxDepth(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "l1", "l2", "l3"), 0o755))

	nav, err := NewWithConfig(root, Config{MaxDepth: 2})
	require.NoError(t, err)

	l1 := nav.Resolve("l1")
	require.Equal(t, KindFolder, l1.Kind)
	l2 := l1.Folder.Resolve("l2")
	require.Equal(t, KindFolder, l2.Kind)

	// Depth 3 is beyond the bound: tracked nowhere.
	assert.Equal(t, KindNotFound, l2.Folder.Resolve("l3").Kind)
	_, ok := nav.Node(filepath.Join(root, "l1", "l2", "l3"))
	assert.False(t, ok)
}

func TestPerDirectoryCaps(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"d1", "d2", "d3"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, d), 0o755))
	}
	for _, f := range []string{"f1", "f2", "f3", "f4"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte("x"), 0o644))
	}

	nav, err := NewWithConfig(root, Config{MaxFilesPerDir: 2, MaxSubdirsPerDir: 1})
	require.NoError(t, err)

	folders, files := nav.List()
	assert.Len(t, folders, 1)
	assert.Len(t, files, 2)
}

func TestIncludeExcludeFilters(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "keep"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "skipme"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "skipme", "inner.csv"), []byte("x"), 0o644))
	for _, f := range []string{"one.csv", "two.txt", "three.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte("x"), 0o644))
	}

	nav, err := NewWithConfig(root, Config{
		Include: []string{"*.csv"},
		Exclude: []string{"skip*", "three.*"},
	})
	require.NoError(t, err)

	folders, files := nav.List()
	require.Len(t, folders, 1)
	assert.Equal(t, "keep", folders[0].Name)

	require.Len(t, files, 1)
	assert.Equal(t, "one.csv", files[0].Name)

	// An excluded directory is pruned whole, not just hidden.
	_, ok := nav.Node(filepath.Join(root, "skipme"))
	assert.False(t, ok)
}

func TestWalkSkipsSymlinks(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "real.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	if err := os.Symlink(target, filepath.Join(root, "link.txt")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	nav, err := New(root)
	require.NoError(t, err)

	_, files := nav.List()
	require.Len(t, files, 1)
	assert.Equal(t, "real.txt", files[0].Name)
}

func TestNavigatorsKeepSeparateState(t *testing.T) {
	navA, _ := seedTree(t)
	navB, _ := seedTree(t)

	require.NoError(t, navA.Shortcuts.Add("only a", navA.RootPath(), false))
	_, err := navB.Shortcuts.Get("only a")
	assert.ErrorIs(t, err, ErrNotFound)
}

// seedRoot lays out the seedTree fixture without navigating it.
func seedRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "data", "raw files"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "data", "report.csv"), []byte("content"), 0o644))
	return root
}
