package domain

// TodoStatus is the lifecycle state of a todo item
type TodoStatus string

const (
	TodoPending    TodoStatus = "pending"
	TodoInProgress TodoStatus = "in_progress"
	TodoCompleted  TodoStatus = "completed"
)

// TodoPriority ranks a todo item
type TodoPriority string

const (
	PriorityHigh   TodoPriority = "high"
	PriorityNormal TodoPriority = "normal"
	PriorityLow    TodoPriority = "low"
)

// TodoItem is one entry of a session's task list
type TodoItem struct {
	ID       string
	Content  string
	Status   TodoStatus
	Priority TodoPriority
}

// SessionTodos is the task list recorded for one session/agent pair
type SessionTodos struct {
	SessionID string
	AgentID   string
	Items     []TodoItem
}

// CompletedCount returns how many items are completed
func (s SessionTodos) CompletedCount() int {
	n := 0
	for _, item := range s.Items {
		if item.Status == TodoCompleted {
			n++
		}
	}
	return n
}
