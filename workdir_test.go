package pathnavigator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChdir(t *testing.T) {
	nav, root := seedTree(t)

	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(orig) })

	data := nav.Resolve("data").Folder
	require.NotNil(t, data)
	require.NoError(t, data.Chdir())

	wd, err := os.Getwd()
	require.NoError(t, err)
	// Temp dirs may sit behind symlinks; compare resolved paths.
	wantDir, err := filepath.EvalSymlinks(filepath.Join(root, "data"))
	require.NoError(t, err)
	gotDir, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, wantDir, gotDir)
}

func TestSearchListOrder(t *testing.T) {
	var s SearchList
	s.Append("/a")
	s.Append("/b")
	s.Prepend("/c")

	assert.Equal(t, []string{"/c", "/a", "/b"}, s.Paths())
	assert.Equal(t, strings.Join([]string{"/c", "/a", "/b"}, string(os.PathListSeparator)), s.String())
}

func TestSearchListDeduplicates(t *testing.T) {
	var s SearchList
	s.Append("/a")
	s.Append("/a")
	s.Prepend("/a")
	s.Append("/b")
	s.Prepend("/b")

	assert.Equal(t, []string{"/a", "/b"}, s.Paths())
	assert.True(t, s.Contains("/a"))
	assert.False(t, s.Contains("/x"))
}

func TestSearchListPathsIsACopy(t *testing.T) {
	var s SearchList
	s.Append("/a")
	s.Append("/b")

	got := s.Paths()
	got[0] = "/mutated"
	assert.Equal(t, []string{"/a", "/b"}, s.Paths())
}
