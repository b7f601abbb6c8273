package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"clx/domain"
)

// TodosView shows recorded task lists, one block per session.
type TodosView struct {
	todos  []domain.SessionTodos
	offset int
	err    error
}

func NewTodosView() *TodosView {
	return &TodosView{}
}

func (tv *TodosView) SetData(msg todosLoadedMsg) {
	tv.err = msg.err
	if msg.err == nil {
		tv.todos = msg.todos
		tv.offset = 0
	}
}

func (tv *TodosView) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "down", "j":
			if tv.offset < len(tv.todos)-1 {
				tv.offset++
			}
		case "up", "k":
			if tv.offset > 0 {
				tv.offset--
			}
		}
	}
	return nil
}

func (tv *TodosView) View(height int) string {
	if tv.err != nil {
		return errorStyle.Render(fmt.Sprintf("failed to load todos: %v", tv.err))
	}
	if len(tv.todos) == 0 {
		return dimStyle.Render("no todos found")
	}

	var b strings.Builder
	lines := 0
	for _, st := range tv.todos[tv.offset:] {
		block := renderTodoBlock(st)
		blockLines := strings.Count(block, "\n") + 1
		if height > 0 && lines+blockLines > height {
			break
		}
		b.WriteString(block + "\n")
		lines += blockLines
	}
	return b.String()
}

func renderTodoBlock(st domain.SessionTodos) string {
	var b strings.Builder
	title := shortID(st.SessionID)
	if st.AgentID != "" && st.AgentID != st.SessionID {
		title += " / " + shortID(st.AgentID)
	}
	b.WriteString(labelStyle.Render(title) +
		dimStyle.Render(fmt.Sprintf("  %d/%d done", st.CompletedCount(), len(st.Items))) + "\n")
	for _, item := range st.Items {
		b.WriteString("  " + todoIcon(item.Status) + " " + normalStyle.Render(item.Content))
		if item.Priority == domain.PriorityHigh {
			b.WriteString(" " + errorStyle.Render("[high]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func todoIcon(status domain.TodoStatus) string {
	switch status {
	case domain.TodoCompleted:
		return userStyle.Render("✓")
	case domain.TodoInProgress:
		return toolStyle.Render("●")
	default:
		return dimStyle.Render("○")
	}
}
