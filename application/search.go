package application

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"clx/domain"
	"clx/logging"
)

const (
	// DefaultMaxSearchResults caps deep search result counts
	DefaultMaxSearchResults = 50

	// minDeepSearchSize skips transcripts too small to hold meaningful
	// content
	minDeepSearchSize = 1024

	// snippetContext is the number of characters kept on each side of a
	// deep-search match
	snippetContext = 40
)

// SearchPrompts returns every prompt whose text contains the query,
// case-insensitively. Collection order is preserved, so results come back
// newest first. An empty query matches nothing.
func SearchPrompts(prompts []domain.Prompt, query string) []domain.Prompt {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var results []domain.Prompt
	for _, p := range prompts {
		if strings.Contains(strings.ToLower(p.Text), query) {
			results = append(results, p)
		}
	}
	return results
}

// searchLine is the minimal transcript line shape deep search decodes:
// just enough to pull conversational text out of user/assistant records
// without the full message normalization pass.
type searchLine struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Message   struct {
		Content json.RawMessage `json:"content"`
	} `json:"message"`
}

// DeepSearch scans all session transcripts for the query, newest sessions
// first, and stops as soon as maxResults matches are collected. Transcripts
// below a minimal size are skipped. Each scanned line yields at most one
// result, built around the first occurrence of the query.
func DeepSearch(sessions []domain.Session, query string, maxResults int) []domain.SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxSearchResults
	}

	var results []domain.SearchResult

	for _, session := range sessions {
		if len(results) >= maxResults {
			break
		}
		if session.TranscriptPath == "" || session.TranscriptSize < minDeepSearchSize {
			continue
		}
		results = searchTranscript(results, session, query, maxResults)
	}

	logging.Logger.Debug("Deep search finished", "query", query, "results", len(results))
	return results
}

// searchTranscript scans one transcript file, appending matches until the
// global cap is reached
func searchTranscript(results []domain.SearchResult, session domain.Session, query string, maxResults int) []domain.SearchResult {
	file, err := os.Open(session.TranscriptPath)
	if err != nil {
		return results
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		if len(results) >= maxResults {
			break
		}

		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var line searchLine
		if err := json.Unmarshal(raw, &line); err != nil {
			continue
		}

		var role domain.Role
		switch line.Type {
		case "user":
			role = domain.RoleUser
		case "assistant":
			role = domain.RoleAssistant
		default:
			continue
		}

		text := extractText(line.Message.Content)
		start, end := indexFold(text, query)
		if start < 0 {
			continue
		}

		results = append(results, domain.SearchResult{
			SessionID: session.SessionID,
			Project:   session.ProjectDisplayName,
			Role:      role,
			Timestamp: parseSearchTimestamp(line.Timestamp),
			Snippet:   makeSnippet(text, start, end-start),
		})
	}

	return results
}

// extractText pulls plain text out of a user/assistant content value:
// either the bare string, or the concatenated text parts of a list
func extractText(content json.RawMessage) string {
	if len(content) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(content, &s); err == nil {
		return s
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(content, &parts); err != nil {
		return ""
	}

	var b strings.Builder
	for _, rawPart := range parts {
		var str string
		if err := json.Unmarshal(rawPart, &str); err == nil {
			b.WriteString(str)
			continue
		}
		var obj struct {
			Type string `json:"type"`
			Text string `json:"text"`
		}
		if err := json.Unmarshal(rawPart, &obj); err == nil && obj.Type == "text" {
			b.WriteString(obj.Text)
		}
	}
	return b.String()
}

// indexFold locates the first case-insensitive occurrence of query (already
// lowercased) in text and returns its byte range within text itself.
// Lowercasing can change a rune's encoded length, so the index found in the
// lowered copy is mapped back to the original rune boundaries rather than
// used to slice the original directly.
func indexFold(text, query string) (int, int) {
	li := strings.Index(strings.ToLower(text), query)
	if li < 0 {
		return -1, -1
	}

	start := -1
	lowered := 0
	for i, r := range text {
		if start == -1 && lowered == li {
			start = i
		}
		lowered += utf8.RuneLen(unicode.ToLower(r))
		if start != -1 && lowered >= li+len(query) {
			return start, i + utf8.RuneLen(r)
		}
	}
	if start != -1 {
		return start, len(text)
	}
	// The byte-level match did not line up with rune boundaries
	return -1, -1
}

// makeSnippet extracts a fixed context window around the match, marking
// truncated ends with an ellipsis and flattening newlines
func makeSnippet(text string, idx, matchLen int) string {
	start := idx - snippetContext
	end := idx + matchLen + snippetContext

	prefix, suffix := "", ""
	if start < 0 {
		start = 0
	} else if start > 0 {
		prefix = "..."
	}
	if end > len(text) {
		end = len(text)
	} else if end < len(text) {
		suffix = "..."
	}

	// Keep the window on rune boundaries
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}

	window := strings.ReplaceAll(text[start:end], "\n", " ")
	window = strings.ReplaceAll(window, "\t", " ")
	return prefix + window + suffix
}

// parseSearchTimestamp is lenient like the transcript decoder: unparsable
// timestamps leave the field zero rather than dropping the match
func parseSearchTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
