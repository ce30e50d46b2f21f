package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
}

func TestFindFilesByExtension_Directory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.json"))
	touch(t, filepath.Join(root, "a.YAML"))
	touch(t, filepath.Join(root, "nested", "c.yml"))
	touch(t, filepath.Join(root, "notes.txt"))

	// --- Act ---
	files, err := FindFilesByExtension(root, ".json", ".yaml", ".yml")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.YAML"),
		filepath.Join(root, "b.json"),
		filepath.Join(root, "nested", "c.yml"),
	}, files)
}

func TestFindFilesByExtension_SingleFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "request.txt")
	touch(t, path)

	files, err := FindFilesByExtension(path, ".json")

	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestFindFilesByExtension_Empty(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(t.TempDir(), ".json")

	require.ErrorIs(t, err, ErrNoFiles)
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "absent"), ".json")

	require.ErrorIs(t, err, os.ErrNotExist)
}
