package domain

import "time"

// Role identifies the speaker of a transcript message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
	RoleSystem    Role = "system"
)

// Message is one normalized entry of a session transcript. Messages are
// produced transiently per transcript read and never cached.
type Message struct {
	Role      Role
	Content   string
	Timestamp time.Time // zero when the source line had no parsable timestamp
	ToolName  string    // set for tool messages only
	Kind      string    // source tag: "user", "text", "tool_use", "summary", "system"
}
