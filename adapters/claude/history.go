package claude

import (
	"bufio"
	"encoding/json"
	"os"
	"sort"
	"time"

	"clx/domain"
	"clx/logging"
	"clx/paths"
)

// historyEntry is one line of history.jsonl
type historyEntry struct {
	Display   string `json:"display"`
	Timestamp int64  `json:"timestamp"` // milliseconds since epoch
	Project   string `json:"project"`
	SessionID string `json:"sessionId"`
}

// ReadHistory parses history.jsonl into prompts, newest first. A missing
// file yields an empty slice; malformed lines are skipped.
func (r *Reader) ReadHistory() ([]domain.Prompt, error) {
	historyPath := paths.HistoryPath(r.claudeDir)

	file, err := os.Open(historyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		logging.Logger.Warn("Failed to open history file", "path", historyPath, "error", err)
		return nil, nil
	}
	defer file.Close()

	var prompts []domain.Prompt

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 1024*1024) // 1MB buffer
	scanner.Buffer(buf, 10*1024*1024) // 10MB max line size

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry historyEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}

		// A zero timestamp stays the zero time so unknown prompts sort last
		// in the reverse-chronological collection
		var ts time.Time
		if entry.Timestamp != 0 {
			ts = time.UnixMilli(entry.Timestamp).UTC()
		}

		project := entry.Project
		if project == "" {
			project = "unknown"
		}

		prompts = append(prompts, domain.Prompt{
			Text:      entry.Display,
			Timestamp: ts,
			Project:   project,
			SessionID: entry.SessionID,
		})
	}

	if err := scanner.Err(); err != nil {
		// Keep whatever was accumulated before the read error
		logging.Logger.Warn("History scan aborted", "path", historyPath, "error", err)
	}

	sort.SliceStable(prompts, func(i, j int) bool {
		return prompts[i].Timestamp.After(prompts[j].Timestamp)
	})

	logging.Logger.Debug("Parsed history", "prompts", len(prompts))
	return prompts, nil
}
