package claude

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"clx/domain"
	"clx/logging"
	"clx/paths"
)

// todoEntry is one item of a todos JSON array
type todoEntry struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
}

// ListTodos reads every todo list under the todos directory. File names
// follow "<sessionId>-agent-<agentId>.json"; files that fail to parse are
// skipped.
func (r *Reader) ListTodos() ([]domain.SessionTodos, error) {
	todosDir := paths.TodosDir(r.claudeDir)

	entries, err := os.ReadDir(todosDir)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to read todos directory", "path", todosDir, "error", err)
		}
		return nil, nil
	}

	var all []domain.SessionTodos

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(todosDir, entry.Name()))
		if err != nil {
			continue
		}

		var items []todoEntry
		if err := json.Unmarshal(data, &items); err != nil {
			continue
		}
		if len(items) == 0 {
			continue
		}

		stem := strings.TrimSuffix(entry.Name(), ".json")
		sessionID, agentID, _ := strings.Cut(stem, "-agent-")

		todos := domain.SessionTodos{
			SessionID: sessionID,
			AgentID:   agentID,
		}
		for _, item := range items {
			todos.Items = append(todos.Items, domain.TodoItem{
				ID:       item.ID,
				Content:  item.Content,
				Status:   normalizeStatus(item.Status),
				Priority: normalizePriority(item.Priority),
			})
		}
		all = append(all, todos)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].SessionID < all[j].SessionID
	})

	return all, nil
}

func normalizeStatus(s string) domain.TodoStatus {
	switch domain.TodoStatus(s) {
	case domain.TodoInProgress, domain.TodoCompleted:
		return domain.TodoStatus(s)
	default:
		return domain.TodoPending
	}
}

func normalizePriority(p string) domain.TodoPriority {
	switch domain.TodoPriority(p) {
	case domain.PriorityHigh, domain.PriorityLow:
		return domain.TodoPriority(p)
	default:
		return domain.PriorityNormal
	}
}
