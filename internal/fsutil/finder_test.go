package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{
		"b.json",
		"a.yaml",
		"sub/c.hcl",
		"sub/ignore.txt",
		"UPPER.JSON",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o600))
	}

	files, err := FindFilesByExtensions(dir, []string{".json", ".yaml", ".hcl"})

	require.NoError(t, err)
	// Sorted lexically by full path; case-insensitive extension match.
	require.Equal(t, []string{
		filepath.Join(dir, "UPPER.JSON"),
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "b.json"),
		filepath.Join(dir, "sub", "c.hcl"),
	}, files)
}

func TestFindFilesByExtensions_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtensions(filepath.Join(t.TempDir(), "absent"), []string{".json"})

	require.Error(t, err)
}
