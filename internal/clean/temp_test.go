package clean

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// seedTempTree lays out two top-level files plus a nested directory with
// one file: four removable entries in total.
func seedTempTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.tmp"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.log"), []byte("b"), 0o644))
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "c.tmp"), []byte("c"), 0o644))
	return dir
}

func TestTempDirPrefersTempEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEMP", dir)
	require.Equal(t, filepath.Clean(dir), TempDir())
}

func TestTempDryRunCountsWithoutDeleting(t *testing.T) {
	dir := seedTempTree(t)
	t.Setenv("TEMP", dir)

	ok, msg := Temp(true)
	require.True(t, ok)
	require.Contains(t, msg, "Dry-run:")
	require.Contains(t, msg, "4 entries")

	// Nothing was touched.
	require.FileExists(t, filepath.Join(dir, "a.tmp"))
	require.FileExists(t, filepath.Join(dir, "sub", "c.tmp"))
}

func TestTempRemovesFilesAndEmptyDirs(t *testing.T) {
	dir := seedTempTree(t)
	t.Setenv("TEMP", dir)

	ok, msg := Temp(false)
	require.True(t, ok)
	require.Contains(t, msg, "Planned deletions: 4.")
	require.Contains(t, msg, "Failed deletions: 0.")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestTempMissingDirectory(t *testing.T) {
	t.Setenv("TEMP", filepath.Join(t.TempDir(), "definitely-not-here"))
	ok, msg := Temp(false)
	require.False(t, ok)
	require.Contains(t, msg, "does not exist")
}
