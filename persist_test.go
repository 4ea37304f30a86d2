package pathnavigator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRegistry(t *testing.T) (*Registry, map[string]string) {
	t.Helper()
	r := NewRegistry(nil)
	want := map[string]string{
		"project":    t.TempDir(),
		"raw data":   t.TempDir(),
		"2024.plots": t.TempDir(),
	}
	for name, path := range want {
		require.NoError(t, r.Add(name, path, false))
	}
	return r, want
}

func TestSaveLoadJSON(t *testing.T) {
	r, want := seedRegistry(t)
	path := filepath.Join(t.TempDir(), "shortcuts.json")

	require.NoError(t, r.SaveJSON(path, false))

	fresh := NewRegistry(nil)
	require.NoError(t, fresh.LoadJSON(path, false))
	assert.Equal(t, want, fresh.Export())
}

func TestSaveLoadYAML(t *testing.T) {
	r, want := seedRegistry(t)
	path := filepath.Join(t.TempDir(), "shortcuts.yaml")

	require.NoError(t, r.SaveYAML(path, false))

	fresh := NewRegistry(nil)
	require.NoError(t, fresh.LoadYAML(path, false))
	assert.Equal(t, want, fresh.Export())
}

func TestSaveLoadTOML(t *testing.T) {
	r, want := seedRegistry(t)
	path := filepath.Join(t.TempDir(), "shortcuts.toml")

	require.NoError(t, r.SaveTOML(path, false))

	fresh := NewRegistry(nil)
	require.NoError(t, fresh.LoadTOML(path, false))
	assert.Equal(t, want, fresh.Export())
}

func TestSaveRefusesExistingFile(t *testing.T) {
	r, _ := seedRegistry(t)
	path := filepath.Join(t.TempDir(), "shortcuts.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	err := r.SaveJSON(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exists")

	require.NoError(t, r.SaveJSON(path, true))
}

func TestLoadMergesWithOverwritePolicy(t *testing.T) {
	r, _ := seedRegistry(t)
	path := filepath.Join(t.TempDir(), "shortcuts.json")
	require.NoError(t, r.SaveJSON(path, false))

	other := t.TempDir()
	loaded := NewRegistry(nil)
	require.NoError(t, loaded.Add("project", other, false))

	// Colliding entry in the file fails without overwrite...
	err := loaded.LoadJSON(path, false)
	assert.ErrorIs(t, err, ErrCollision)

	// ...and wins with it.
	require.NoError(t, loaded.LoadJSON(path, true))
	got, err := loaded.Get("project")
	require.NoError(t, err)
	assert.NotEqual(t, other, got)
}

func TestLoadMissingFile(t *testing.T) {
	r := NewRegistry(nil)

	assert.Error(t, r.LoadJSON(filepath.Join(t.TempDir(), "none.json"), false))
	assert.Error(t, r.LoadYAML(filepath.Join(t.TempDir(), "none.yaml"), false))
	assert.Error(t, r.LoadTOML(filepath.Join(t.TempDir(), "none.toml"), false))
}
