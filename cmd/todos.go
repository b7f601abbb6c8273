package cmd

import (
	"fmt"
	"strings"

	"clx/domain"
)

// TodosCmd prints todo lists from all sessions
type TodosCmd struct {
	SessionID string `help:"Only show todos for this session id"`
}

// Run executes the todos command
func (t *TodosCmd) Run(cli *CLI) error {
	todos, err := cli.Container.Explorer.Todos()
	if err != nil {
		return fmt.Errorf("failed to list todos: %w", err)
	}

	if t.SessionID != "" {
		var filtered []domain.SessionTodos
		for _, list := range todos {
			if list.SessionID == t.SessionID {
				filtered = append(filtered, list)
			}
		}
		todos = filtered
	}

	if len(todos) == 0 {
		fmt.Println("No todos found.")
		return nil
	}

	for _, list := range todos {
		fmt.Printf("%s (%d/%d done)\n", list.SessionID, list.CompletedCount(), len(list.Items))
		for _, item := range list.Items {
			fmt.Printf("  %s %s%s\n", statusIcon(item.Status), priorityTag(item.Priority), item.Content)
		}
		fmt.Println()
	}
	return nil
}

func statusIcon(status domain.TodoStatus) string {
	switch status {
	case domain.TodoCompleted:
		return "✓"
	case domain.TodoInProgress:
		return "●"
	default:
		return "○"
	}
}

func priorityTag(priority domain.TodoPriority) string {
	if priority == domain.PriorityNormal {
		return ""
	}
	return strings.ToUpper(string(priority)) + " "
}
