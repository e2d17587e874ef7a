package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestDir creates a temporary directory holding a words file with
// SampleDictionary and a .spellbee/config.yaml pointing at it with no dwell.
// Returns the directory and the words file path.
func SetupTestDir(t *testing.T) (string, string) {
	t.Helper()

	tmpDir := t.TempDir()
	wordsPath := WriteTestFile(t, tmpDir, "words", SampleDictionary)

	configContent := "dictionary:\n  path: " + wordsPath + "\ndisplay:\n  dwell_ms: 0\n  clear_screen: false\n  color: false\n"
	WriteTestFile(t, tmpDir, filepath.Join(".spellbee", "config.yaml"), configContent)

	return tmpDir, wordsPath
}

// WriteTestFile writes content to base/path, creating parent directories,
// and returns the full path.
func WriteTestFile(t *testing.T, base, path, content string) string {
	t.Helper()

	fullPath := filepath.Join(base, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	return fullPath
}

// ReadFile returns the contents of path as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
