package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "journal.json")

	j := New(path)
	require.NoError(t, j.Load())
	assert.False(t, j.IsUploaded("trip/a.jpg"))

	j.MarkUploaded("trip/b.jpg", "takeout.zip")
	j.MarkUploaded("trip/a.jpg", "takeout.zip")
	require.NoError(t, j.Flush())

	reloaded := New(path)
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.IsUploaded("trip/a.jpg"))
	assert.True(t, reloaded.IsUploaded("trip/b.jpg"))
	assert.False(t, reloaded.IsUploaded("trip/c.jpg"))
	assert.Equal(t, "takeout.zip", reloaded.Uploads["trip/b.jpg"].Source)
}

func TestJournalSaveIsThrottled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")

	j := New(path)
	j.MarkUploaded("a.jpg", "")
	require.NoError(t, j.Save())
	require.FileExists(t, path)

	require.NoError(t, os.Remove(path))
	j.MarkUploaded("b.jpg", "")
	require.NoError(t, j.Save())
	assert.NoFileExists(t, path, "a second save inside the interval is skipped")
}

func TestJournalLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	assert.Error(t, New(path).Load())
}
