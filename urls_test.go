package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadFeedURLs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.txt")
	writeFile(t, path, `# BBC feeds
https://example.org/a.xml

   https://example.org/b.xml
  # indented comment
https://example.org/a.xml
`)

	urls, err := loadFeedURLs(path, testLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://example.org/a.xml",
		"https://example.org/b.xml",
		"https://example.org/a.xml",
	}, urls)
}

func TestLoadFeedURLsAllCommentsAndBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.txt")
	writeFile(t, path, "# one\n\n# two\n   \n")

	urls, err := loadFeedURLs(path, testLogger())
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestLoadFeedURLsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := loadFeedURLs(path, testLogger())
	require.EqualError(t, err, fmt.Sprintf("Feeds file %q not found", path))
}

func TestLoadFeedURLsDirectory(t *testing.T) {
	path := t.TempDir()

	_, err := loadFeedURLs(path, testLogger())
	require.EqualError(t, err, fmt.Sprintf("%q is not a file", path))
}
