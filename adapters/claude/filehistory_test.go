package claude

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFileHistory_MissingDirectory(t *testing.T) {
	reader := NewReaderWithDir(t.TempDir(), "/home/u")

	history, err := reader.ListFileHistory()

	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestListFileHistory_WalksNestedPaths(t *testing.T) {
	claudeDir := t.TempDir()
	sessionDir := filepath.Join(claudeDir, "file-history", "sess1")
	require.NoError(t, os.MkdirAll(filepath.Join(sessionDir, "src", "pkg"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sessionDir, "main.go"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(sessionDir, "src", "pkg", "util.go"), []byte("x"), 0644))

	reader := NewReaderWithDir(claudeDir, "/home/u")

	history, err := reader.ListFileHistory()

	require.NoError(t, err)
	require.Contains(t, history, "sess1")
	assert.Equal(t, []string{"main.go", filepath.Join("src", "pkg", "util.go")}, history["sess1"])
}

func TestListFileHistory_OmitsEmptySessions(t *testing.T) {
	claudeDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(claudeDir, "file-history", "empty"), 0755))

	reader := NewReaderWithDir(claudeDir, "/home/u")

	history, err := reader.ListFileHistory()

	require.NoError(t, err)
	assert.NotContains(t, history, "empty")
}
