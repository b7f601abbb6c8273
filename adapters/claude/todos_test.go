package claude

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clx/domain"
)

func writeTodoFile(t *testing.T, claudeDir, name, content string) {
	t.Helper()
	todosDir := filepath.Join(claudeDir, "todos")
	require.NoError(t, os.MkdirAll(todosDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(todosDir, name), []byte(content), 0644))
}

func TestListTodos_MissingDirectory(t *testing.T) {
	reader := NewReaderWithDir(t.TempDir(), "/home/u")

	todos, err := reader.ListTodos()

	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestListTodos_SplitsSessionAndAgentID(t *testing.T) {
	claudeDir := t.TempDir()
	writeTodoFile(t, claudeDir, "sess1-agent-agentA.json",
		`[{"id":"1","content":"do the thing","status":"completed","priority":"high"}]`)
	reader := NewReaderWithDir(claudeDir, "/home/u")

	todos, err := reader.ListTodos()

	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "sess1", todos[0].SessionID)
	assert.Equal(t, "agentA", todos[0].AgentID)
	require.Len(t, todos[0].Items, 1)
	assert.Equal(t, domain.TodoCompleted, todos[0].Items[0].Status)
	assert.Equal(t, domain.PriorityHigh, todos[0].Items[0].Priority)
}

func TestListTodos_NoAgentSeparator(t *testing.T) {
	claudeDir := t.TempDir()
	writeTodoFile(t, claudeDir, "sess1.json",
		`[{"id":"1","content":"task","status":"pending","priority":"normal"}]`)
	reader := NewReaderWithDir(claudeDir, "/home/u")

	todos, err := reader.ListTodos()

	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "sess1", todos[0].SessionID)
	assert.Empty(t, todos[0].AgentID)
}

func TestListTodos_NormalizesUnknownValues(t *testing.T) {
	claudeDir := t.TempDir()
	writeTodoFile(t, claudeDir, "s-agent-a.json",
		`[{"id":"1","content":"task","status":"weird","priority":"urgent"}]`)
	reader := NewReaderWithDir(claudeDir, "/home/u")

	todos, err := reader.ListTodos()

	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, domain.TodoPending, todos[0].Items[0].Status)
	assert.Equal(t, domain.PriorityNormal, todos[0].Items[0].Priority)
}

func TestListTodos_SkipsEmptyAndMalformedFiles(t *testing.T) {
	claudeDir := t.TempDir()
	writeTodoFile(t, claudeDir, "empty-agent-a.json", `[]`)
	writeTodoFile(t, claudeDir, "broken-agent-a.json", `{not json`)
	writeTodoFile(t, claudeDir, "good-agent-a.json",
		`[{"id":"1","content":"keep me","status":"in_progress","priority":"low"}]`)
	reader := NewReaderWithDir(claudeDir, "/home/u")

	todos, err := reader.ListTodos()

	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "good", todos[0].SessionID)
	assert.Equal(t, domain.TodoInProgress, todos[0].Items[0].Status)
}

func TestListTodos_SortedBySessionID(t *testing.T) {
	claudeDir := t.TempDir()
	writeTodoFile(t, claudeDir, "zzz-agent-a.json", `[{"id":"1","content":"z"}]`)
	writeTodoFile(t, claudeDir, "aaa-agent-a.json", `[{"id":"1","content":"a"}]`)
	reader := NewReaderWithDir(claudeDir, "/home/u")

	todos, err := reader.ListTodos()

	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "aaa", todos[0].SessionID)
	assert.Equal(t, "zzz", todos[1].SessionID)
}
