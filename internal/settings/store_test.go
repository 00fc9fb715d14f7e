package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastRootRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "rgview", "settings.yaml"))

	root, err := store.LastRoot()
	require.NoError(t, err)
	assert.Empty(t, root, "missing file reads as empty")

	require.NoError(t, store.SetLastRoot("/home/user/sdk"))
	require.NoError(t, store.SetLastRoot("/home/user/other sdk"))

	root, err = store.LastRoot()
	require.NoError(t, err)
	assert.Equal(t, "/home/user/other sdk", root)

	// A fresh store over the same file sees the value, as a new process would.
	root, err = NewStore(store.Path()).LastRoot()
	require.NoError(t, err)
	assert.Equal(t, "/home/user/other sdk", root)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(DefaultPath(dir))
	require.NoError(t, store.Save(Settings{LastRootPath: "/x"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "settings.yaml", entries[0].Name())
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("last_root_path: [\n"), 0o644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}
