package application

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clx/adapters/claude"
)

// TestExplorer_FullDirectoryScan exercises the whole read path against a
// realistic on-disk layout: history referencing one of two discovered
// transcripts, plus an unreferenced session that still shows up.
func TestExplorer_FullDirectoryScan(t *testing.T) {
	claudeDir := t.TempDir()

	history := `{"display":"add dark mode","timestamp":1709290800000,"project":"/home/u/Projects/webapp","sessionId":"sess-a"}
{"display":"fix the header","timestamp":1709287200000,"project":"/home/u/Projects/webapp","sessionId":"sess-a"}
`
	require.NoError(t, os.WriteFile(filepath.Join(claudeDir, "history.jsonl"), []byte(history), 0644))

	projectDir := filepath.Join(claudeDir, "projects", "-home-u-Projects-webapp")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	transcript := `{"type":"user","timestamp":"2024-03-01T11:00:00Z","message":{"content":"fix the header"}}
{"type":"assistant","timestamp":"2024-03-01T11:00:05Z","message":{"content":[{"type":"text","text":"Done."}]}}
`
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "sess-a.jsonl"), []byte(transcript), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "sess-b.jsonl"), []byte(`{"type":"user","message":{"content":"hello"}}`), 0644))

	explorer := NewExplorer(claude.NewReaderWithDir(claudeDir, "/home/u"), NewCache())

	sessions, err := explorer.Sessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	byID := make(map[string]int)
	for i, s := range sessions {
		byID[s.SessionID] = i
	}
	require.Contains(t, byID, "sess-a")
	require.Contains(t, byID, "sess-b")

	sessA := sessions[byID["sess-a"]]
	assert.Equal(t, "webapp", sessA.ProjectDisplayName)
	assert.Equal(t, 2, sessA.PromptCount)
	assert.False(t, sessA.FirstActivity.IsZero())

	sessB := sessions[byID["sess-b"]]
	assert.Zero(t, sessB.PromptCount)

	messages, err := explorer.Transcript(sessA, 100)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "fix the header", messages[0].Content)
	assert.Equal(t, "Done.", messages[1].Content)

	prompts, err := explorer.SearchPrompts("header")
	require.NoError(t, err)
	require.Len(t, prompts, 1)
	assert.Equal(t, "fix the header", prompts[0].Text)

	stats, err := explorer.GlobalStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPrompts)
	assert.Equal(t, 1, stats.TotalProjects)
}
