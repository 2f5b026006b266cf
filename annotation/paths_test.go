package annotation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProjectRoot(t *testing.T) {
	t.Run("finds config in an ancestor", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, ConfigFileName)
		start := filepath.Join(root, "a", "b", "c")
		require.NoError(t, os.MkdirAll(start, 0o755))

		got, err := FindProjectRoot(start)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("gives up beyond the search depth", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, "go.mod")
		start := filepath.Join(root, "1", "2", "3", "4", "5", "6")
		require.NoError(t, os.MkdirAll(start, 0o755))

		got, err := FindProjectRoot(start)
		require.NoError(t, err)
		assert.Equal(t, start, got)
	})

	t.Run("ignores a directory named like a marker", func(t *testing.T) {
		root := t.TempDir()
		start := filepath.Join(root, "x")
		require.NoError(t, os.MkdirAll(filepath.Join(start, ConfigFileName), 0o755))
		writeFiles(t, root, ConfigFileName)

		got, err := FindProjectRoot(start)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})
}

func TestDefaultDatabasePath(t *testing.T) {
	root := t.TempDir()

	got, err := DefaultDatabasePath(root, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "Data", "photo.db"), got)
	assert.DirExists(t, filepath.Join(root, "Data"))

	abs := filepath.Join(t.TempDir(), "elsewhere", "x.db")
	cfg := DefaultConfig()
	cfg.Database = abs
	got, err = DefaultDatabasePath(root, cfg)
	require.NoError(t, err)
	assert.Equal(t, abs, got)
}
