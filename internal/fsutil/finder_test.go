package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("payload = []\n"), 0o600))
}

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	t.Run("finds nested files in sorted order", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "b.hcl"))
		writeFile(t, filepath.Join(dir, "sub", "c.hcl"))
		writeFile(t, filepath.Join(dir, "a.hcl"))
		writeFile(t, filepath.Join(dir, "ignored.txt"))

		got, err := FindFilesByExtension(dir, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.hcl"),
			filepath.Join(dir, "b.hcl"),
			filepath.Join(dir, "sub", "c.hcl"),
		}, got)
	})

	t.Run("root may be a single file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		file := filepath.Join(dir, "only.hcl")
		writeFile(t, file)

		got, err := FindFilesByExtension(file, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{file}, got)
	})

	t.Run("missing root returns error", func(t *testing.T) {
		t.Parallel()
		_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "nope"), ".hcl")
		assert.Error(t, err)
	})

	t.Run("empty extension panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			_, _ = FindFilesByExtension(t.TempDir(), "")
		})
	})
}
