package application

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clx/domain"
)

func TestSearchPrompts_CaseInsensitive(t *testing.T) {
	prompts := []domain.Prompt{
		{Text: "Fix the Database migration"},
		{Text: "unrelated"},
		{Text: "database backup script"},
	}

	results := SearchPrompts(prompts, "DATABASE")

	require.Len(t, results, 2)
	assert.Equal(t, "Fix the Database migration", results[0].Text)
	assert.Equal(t, "database backup script", results[1].Text)
}

func TestSearchPrompts_EmptyQueryMatchesNothing(t *testing.T) {
	prompts := []domain.Prompt{{Text: "something"}}

	assert.Empty(t, SearchPrompts(prompts, ""))
	assert.Empty(t, SearchPrompts(prompts, "   "))
}

func TestSearchPrompts_PreservesOrder(t *testing.T) {
	prompts := []domain.Prompt{
		{Text: "go one"},
		{Text: "go two"},
		{Text: "go three"},
	}

	results := SearchPrompts(prompts, "go")

	require.Len(t, results, 3)
	assert.Equal(t, "go one", results[0].Text)
	assert.Equal(t, "go three", results[2].Text)
}

// deepSession writes a transcript padded past the minimum deep-search size
// and returns a session stub pointing at it
func deepSession(t *testing.T, id string, lines ...string) domain.Session {
	t.Helper()
	padding := `{"type":"system","content":"` + strings.Repeat("p", 1100) + `"}`
	content := strings.Join(append(lines, padding), "\n") + "\n"
	path := filepath.Join(t.TempDir(), id+".jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	info, err := os.Stat(path)
	require.NoError(t, err)
	return domain.Session{
		SessionID:          id,
		ProjectDisplayName: "proj",
		TranscriptPath:     path,
		TranscriptSize:     info.Size(),
	}
}

func TestDeepSearch_FindsMatchesInTranscripts(t *testing.T) {
	session := deepSession(t, "s1",
		`{"type":"user","timestamp":"2024-03-01T10:00:00Z","message":{"content":"please fix the websocket reconnect bug"}}`)

	results := DeepSearch([]domain.Session{session}, "websocket", 10)

	require.Len(t, results, 1)
	assert.Equal(t, "s1", results[0].SessionID)
	assert.Equal(t, "proj", results[0].Project)
	assert.Equal(t, domain.RoleUser, results[0].Role)
	assert.Contains(t, strings.ToLower(results[0].Snippet), "websocket")
}

func TestDeepSearch_SkipsSmallTranscripts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"user","message":{"content":"needle"}}`), 0644))
	session := domain.Session{SessionID: "tiny", TranscriptPath: path, TranscriptSize: 44}

	results := DeepSearch([]domain.Session{session}, "needle", 10)

	assert.Empty(t, results)
}

func TestDeepSearch_StopsAtMaxResults(t *testing.T) {
	lines := make([]string, 5)
	for i := range lines {
		lines[i] = `{"type":"user","message":{"content":"needle here"}}`
	}
	session := deepSession(t, "s1", lines...)

	results := DeepSearch([]domain.Session{session}, "needle", 3)

	assert.Len(t, results, 3)
}

func TestDeepSearch_IgnoresNonConversationLines(t *testing.T) {
	session := deepSession(t, "s1",
		`{"type":"summary","summary":"needle in summary"}`,
		`{"type":"assistant","message":{"content":[{"type":"text","text":"needle in answer"}]}}`)

	results := DeepSearch([]domain.Session{session}, "needle", 10)

	require.Len(t, results, 1)
	assert.Equal(t, domain.RoleAssistant, results[0].Role)
}

func TestDeepSearch_SnippetMarksTruncation(t *testing.T) {
	text := strings.Repeat("a", 100) + "needle" + strings.Repeat("b", 100)
	session := deepSession(t, "s1",
		`{"type":"user","message":{"content":"`+text+`"}}`)

	results := DeepSearch([]domain.Session{session}, "needle", 10)

	require.Len(t, results, 1)
	snippet := results[0].Snippet
	assert.True(t, strings.HasPrefix(snippet, "..."))
	assert.True(t, strings.HasSuffix(snippet, "..."))
	assert.Contains(t, snippet, "needle")
}

func TestDeepSearch_FlattensNewlinesInSnippet(t *testing.T) {
	session := deepSession(t, "s1",
		`{"type":"user","message":{"content":"line one\nneedle\nline three"}}`)

	results := DeepSearch([]domain.Session{session}, "needle", 10)

	require.Len(t, results, 1)
	assert.NotContains(t, results[0].Snippet, "\n")
}

func TestDeepSearch_CaseLengthChangingRunes(t *testing.T) {
	// U+023A lowercases to U+2C65, growing from 2 to 3 encoded bytes, so the
	// match offset in the lowered text runs past the end of the original
	text := strings.Repeat("Ⱥ", 2000) + " needle"
	session := deepSession(t, "s1",
		`{"type":"user","message":{"content":"`+text+`"}}`)

	results := DeepSearch([]domain.Session{session}, "needle", 10)

	require.Len(t, results, 1)
	assert.Contains(t, results[0].Snippet, "needle")
}

func TestDeepSearch_SnippetKeepsOriginalCase(t *testing.T) {
	session := deepSession(t, "s1",
		`{"type":"user","message":{"content":"where is the Needle hiding"}}`)

	results := DeepSearch([]domain.Session{session}, "needle", 10)

	require.Len(t, results, 1)
	assert.Contains(t, results[0].Snippet, "Needle")
}

func TestIndexFold(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		match string
	}{
		{"ascii", "The Needle is here", "needle", "Needle"},
		{"match at start", "Needle first", "needle", "Needle"},
		{"match at end", "ends with Needle", "needle", "Needle"},
		{"multibyte prefix", "ȺȺ Needle", "needle", "Needle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := indexFold(tt.text, tt.query)
			require.GreaterOrEqual(t, start, 0)
			assert.Equal(t, tt.match, tt.text[start:end])
		})
	}

	start, _ := indexFold("no match here", "needle")
	assert.Equal(t, -1, start)
}

func TestDeepSearch_EmptyQuery(t *testing.T) {
	session := deepSession(t, "s1",
		`{"type":"user","message":{"content":"anything"}}`)

	assert.Empty(t, DeepSearch([]domain.Session{session}, "", 10))
}
