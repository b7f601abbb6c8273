package claude

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverProjects_MissingDirectory(t *testing.T) {
	reader := NewReaderWithDir(t.TempDir(), "/home/u")

	projects, err := reader.DiscoverProjects()

	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestDiscoverProjects_BuildsSessionStubs(t *testing.T) {
	claudeDir := t.TempDir()
	projectDir := filepath.Join(claudeDir, "projects", "-home-u-Projects-myapp")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "abc123.jsonl"), []byte(`{"type":"user"}`), 0644))

	reader := NewReaderWithDir(claudeDir, "/home/u")

	projects, err := reader.DiscoverProjects()

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "myapp", projects[0].DisplayName)
	assert.Equal(t, "-home-u-Projects-myapp", projects[0].DirName)
	require.Len(t, projects[0].Sessions, 1)

	session := projects[0].Sessions[0]
	assert.Equal(t, "abc123", session.SessionID)
	assert.Equal(t, "myapp", session.ProjectDisplayName)
	assert.Equal(t, int64(15), session.TranscriptSize)
	assert.False(t, session.LastActivity.IsZero())
	assert.True(t, session.FirstActivity.IsZero())
	assert.Zero(t, session.PromptCount)
}

func TestDiscoverProjects_SessionsSortedByModTime(t *testing.T) {
	claudeDir := t.TempDir()
	projectDir := filepath.Join(claudeDir, "projects", "-home-u-Projects-myapp")
	require.NoError(t, os.MkdirAll(projectDir, 0755))

	oldPath := filepath.Join(projectDir, "old.jsonl")
	newPath := filepath.Join(projectDir, "new.jsonl")
	require.NoError(t, os.WriteFile(oldPath, []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(newPath, []byte("{}"), 0644))

	older := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, older, older))

	reader := NewReaderWithDir(claudeDir, "/home/u")

	projects, err := reader.DiscoverProjects()

	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Len(t, projects[0].Sessions, 2)
	assert.Equal(t, "new", projects[0].Sessions[0].SessionID)
	assert.Equal(t, "old", projects[0].Sessions[1].SessionID)
}

func TestDiscoverProjects_SortedByTotalSizeDescending(t *testing.T) {
	claudeDir := t.TempDir()

	small := filepath.Join(claudeDir, "projects", "small")
	big := filepath.Join(claudeDir, "projects", "big")
	require.NoError(t, os.MkdirAll(small, 0755))
	require.NoError(t, os.MkdirAll(big, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(small, "s.jsonl"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(big, "b.jsonl"), make([]byte, 4096), 0644))

	reader := NewReaderWithDir(claudeDir, "/home/u")

	projects, err := reader.DiscoverProjects()

	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "big", projects[0].DirName)
	assert.Equal(t, int64(4096), projects[0].TotalSize)
}

func TestDiscoverProjects_IgnoresNonJSONLFiles(t *testing.T) {
	claudeDir := t.TempDir()
	projectDir := filepath.Join(claudeDir, "projects", "p")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "notes.txt"), []byte("x"), 0644))

	reader := NewReaderWithDir(claudeDir, "/home/u")

	projects, err := reader.DiscoverProjects()

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Empty(t, projects[0].Sessions)
	assert.Zero(t, projects[0].SessionCount)
}
