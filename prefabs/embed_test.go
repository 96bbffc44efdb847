package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useDiskDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
	return dir
}

func TestModTimeOnlyForDiskCopies(t *testing.T) {
	dir := useDiskDir(t)

	_, ok := ModTime(TuningFile)
	assert.False(t, ok, "embedded copy has no disk mtime")

	path := filepath.Join(dir, TuningFile)
	require.NoError(t, os.WriteFile(path, []byte("spawn: {interval: 60}\n"), 0o644))
	mt, ok := ModTime("prefabs/" + TuningFile)
	require.True(t, ok)
	assert.False(t, mt.IsZero())
}

func TestChangedTracksTuningEdits(t *testing.T) {
	dir := useDiskDir(t)
	path := filepath.Join(dir, TuningFile)

	_, changed := Changed(TuningFile, time.Time{})
	assert.False(t, changed, "no disk copy and nothing seen yet")

	require.NoError(t, os.WriteFile(path, []byte("spawn: {interval: 60}\n"), 0o644))
	first := time.Now().Add(-time.Minute).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, first, first))

	last, changed := Changed(TuningFile, time.Time{})
	require.True(t, changed)
	assert.True(t, last.Equal(first))

	_, changed = Changed(TuningFile, last)
	assert.False(t, changed, "same mtime is not an edit")

	second := first.Add(10 * time.Second)
	require.NoError(t, os.Chtimes(path, second, second))
	last, changed = Changed(TuningFile, last)
	require.True(t, changed)
	assert.True(t, last.Equal(second))

	require.NoError(t, os.Remove(path))
	last, changed = Changed(TuningFile, last)
	assert.True(t, changed, "removal falls back to the embedded copy")
	assert.True(t, last.IsZero())
}
