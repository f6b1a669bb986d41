package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/feedsnap/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWriter(t *testing.T, dir string) *SnapshotWriter {
	t.Helper()
	writer := NewSnapshotWriter(dir, testLogger())
	writer.now = func() time.Time { return time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC) }
	return writer
}

func TestSnapshotWriterSave(t *testing.T) {
	dir := t.TempDir()
	writer := newTestWriter(t, dir)

	entries := []data.Entry{
		{
			Title:     "Café & Croissants",
			Link:      "https://example.org/cafe",
			Published: "Sat, 09 Mar 2024 08:00:00 GMT",
			Summary:   "<p>Breakfast</p>",
		},
		{Title: "Second"},
	}

	path, err := writer.Save(entries)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "news_20240309.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []data.Entry
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, entries, got)

	s := string(raw)
	assert.Contains(t, s, "Café & Croissants")
	assert.Contains(t, s, "<p>Breakfast</p>")
	assert.Contains(t, s, "\n    {")
	assert.Contains(t, s, "\n        \"title\":")
}

func TestSnapshotWriterCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	writer := newTestWriter(t, dir)

	path, err := writer.Save([]data.Entry{{Title: "A"}})
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestSnapshotWriterOverwritesSameDate(t *testing.T) {
	dir := t.TempDir()
	writer := newTestWriter(t, dir)

	_, err := writer.Save([]data.Entry{{Title: "A"}, {Title: "B"}})
	require.NoError(t, err)

	path, err := writer.Save([]data.Entry{{Title: "Only"}})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []data.Entry
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, []data.Entry{{Title: "Only"}}, got)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestSnapshotWriterDirectoryCreationFails(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocked")
	writeFile(t, blocker, "x")
	writer := newTestWriter(t, filepath.Join(blocker, "data"))

	_, err := writer.Save([]data.Entry{{Title: "A"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unable to create directory")
}
