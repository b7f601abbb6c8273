package claude

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"clx/domain"
	"clx/logging"
)

const (
	// DefaultTranscriptLimit caps interactive transcript reads
	DefaultTranscriptLimit = 500
	// ExportTranscriptLimit caps transcript reads for export
	ExportTranscriptLimit = 2000

	thinkingPreviewLen = 300
	summaryPreviewLen  = 200
	systemPreviewLen   = 150
)

// transcriptLine is one raw line of a session JSONL file
type transcriptLine struct {
	Type      string          `json:"type"`
	Timestamp string          `json:"timestamp"`
	Summary   string          `json:"summary"`
	Subtype   string          `json:"subtype"`
	Content   string          `json:"content"`
	Message   json.RawMessage `json:"message"`
}

// messageBody is the message envelope of user/assistant lines
type messageBody struct {
	Content contentValue `json:"content"`
}

// contentValue is the polymorphic content field: either a plain string or an
// ordered list of parts
type contentValue struct {
	Text   string
	Parts  []contentPart
	IsList bool
}

func (c *contentValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Text = s
		return nil
	}

	var parts []contentPart
	if err := json.Unmarshal(data, &parts); err == nil {
		c.Parts = parts
		c.IsList = true
		return nil
	}

	// Unknown shape: treat as empty rather than failing the line
	return nil
}

// contentPart is one element of a part list: a bare string, or a tagged
// object (text, thinking, tool_use)
type contentPart struct {
	Type     string
	Text     string
	Thinking string
	ToolName string
	Input    map[string]any
}

func (p *contentPart) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Type = "text"
		p.Text = s
		return nil
	}

	var obj struct {
		Type     string         `json:"type"`
		Text     string         `json:"text"`
		Thinking string         `json:"thinking"`
		Name     string         `json:"name"`
		Input    map[string]any `json:"input"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		// Malformed part: skip, don't fail the line
		return nil
	}

	p.Type = obj.Type
	p.Text = obj.Text
	p.Thinking = obj.Thinking
	p.ToolName = obj.Name
	p.Input = obj.Input
	return nil
}

// ReadTranscript streams a session JSONL file into normalized messages,
// stopping once limit messages have been produced. The cap is approximate:
// scanning runs forward from the start of the file, so it yields the first
// N messages, not the last N. A missing file yields an empty slice.
func (r *Reader) ReadTranscript(path string, limit int) ([]domain.Message, error) {
	if limit <= 0 {
		limit = DefaultTranscriptLimit
	}

	file, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to open transcript", "path", path, "error", err)
		}
		return nil, nil
	}
	defer file.Close()

	var messages []domain.Message

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 1024*1024) // 1MB buffer
	scanner.Buffer(buf, 10*1024*1024) // 10MB max line size

	for scanner.Scan() {
		if len(messages) >= limit {
			break
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry transcriptLine
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}

		ts := parseTimestamp(entry.Timestamp)

		switch entry.Type {
		case "user":
			messages = appendCapped(messages, limit, decodeUserLine(entry, ts)...)
		case "assistant":
			messages = appendCapped(messages, limit, decodeAssistantLine(entry, ts)...)
		case "summary":
			if entry.Summary != "" {
				messages = append(messages, domain.Message{
					Role:      domain.RoleSystem,
					Content:   "[Summary] " + truncate(entry.Summary, summaryPreviewLen),
					Timestamp: ts,
					Kind:      "summary",
				})
			}
		case "system":
			if entry.Subtype != "" && entry.Content != "" {
				messages = append(messages, domain.Message{
					Role:      domain.RoleSystem,
					Content:   fmt.Sprintf("[%s] %s", entry.Subtype, truncate(entry.Content, systemPreviewLen)),
					Timestamp: ts,
					Kind:      "system",
				})
			}
		}
	}

	if err := scanner.Err(); err != nil {
		logging.Logger.Warn("Transcript scan aborted", "path", path, "error", err)
	}

	return messages, nil
}

// decodeUserLine concatenates the user content parts into one message.
// Lines carrying command-injection wrapper text are tool plumbing, not
// conversation, and are dropped.
func decodeUserLine(entry transcriptLine, ts time.Time) []domain.Message {
	var body messageBody
	if err := json.Unmarshal(entry.Message, &body); err != nil {
		return nil
	}

	var content string
	if body.Content.IsList {
		var b strings.Builder
		for _, part := range body.Content.Parts {
			if part.Type == "text" {
				b.WriteString(part.Text)
			}
		}
		content = b.String()
	} else {
		content = body.Content.Text
	}

	clean := strings.TrimSpace(content)
	if clean == "" || strings.HasPrefix(clean, "<command-") {
		return nil
	}

	return []domain.Message{{
		Role:      domain.RoleUser,
		Content:   clean,
		Timestamp: ts,
		Kind:      "user",
	}}
}

// decodeAssistantLine expands the assistant content parts, one message per
// part: text parts, thinking previews, and tool-use summaries.
func decodeAssistantLine(entry transcriptLine, ts time.Time) []domain.Message {
	var body messageBody
	if err := json.Unmarshal(entry.Message, &body); err != nil {
		return nil
	}

	if !body.Content.IsList {
		if text := strings.TrimSpace(body.Content.Text); text != "" {
			return []domain.Message{{
				Role:      domain.RoleAssistant,
				Content:   text,
				Timestamp: ts,
				Kind:      "text",
			}}
		}
		return nil
	}

	var out []domain.Message
	for _, part := range body.Content.Parts {
		switch part.Type {
		case "text":
			if text := strings.TrimSpace(part.Text); text != "" {
				out = append(out, domain.Message{
					Role:      domain.RoleAssistant,
					Content:   text,
					Timestamp: ts,
					Kind:      "text",
				})
			}
		case "thinking":
			if part.Thinking != "" {
				out = append(out, domain.Message{
					Role:      domain.RoleSystem,
					Content:   "[Thinking] " + truncate(part.Thinking, thinkingPreviewLen),
					Timestamp: ts,
					Kind:      "thinking",
				})
			}
		case "tool_use":
			name := part.ToolName
			if name == "" {
				name = "unknown"
			}
			out = append(out, domain.Message{
				Role:      domain.RoleTool,
				Content:   SummarizeToolUse(name, part.Input),
				Timestamp: ts,
				ToolName:  name,
				Kind:      "tool_use",
			})
		}
	}
	return out
}

// SummarizeToolUse renders a tool invocation as a one-line human-scannable
// summary. It is a pure function of the tool name and input.
func SummarizeToolUse(toolName string, input map[string]any) string {
	switch toolName {
	case "Read", "Write", "Edit":
		return fmt.Sprintf("%s %s", toolName, stringField(input, "file_path"))
	case "Bash":
		return "$ " + truncate(stringField(input, "command"), 100)
	case "Glob":
		return "Glob " + stringField(input, "pattern")
	case "Grep":
		return fmt.Sprintf("Grep '%s'", stringField(input, "pattern"))
	case "Task":
		return "Task: " + stringField(input, "description")
	case "WebSearch":
		return "Search: " + stringField(input, "query")
	default:
		return toolName + "()"
	}
}

// stringField reads a string value from a weakly-typed input map, with "?"
// as the fallback for anything absent or non-string
func stringField(input map[string]any, key string) string {
	if input == nil {
		return "?"
	}
	if v, ok := input[key].(string); ok {
		return v
	}
	return "?"
}

// parseTimestamp accepts an ISO-8601 timestamp with a Z suffix and
// normalizes it to UTC. Unparsable timestamps yield the zero time.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// truncate shortens s to max runes. The cut carries no marker; previews are
// plain prefixes of the source text.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// appendCapped appends messages without exceeding the limit
func appendCapped(messages []domain.Message, limit int, more ...domain.Message) []domain.Message {
	for _, m := range more {
		if len(messages) >= limit {
			break
		}
		messages = append(messages, m)
	}
	return messages
}
