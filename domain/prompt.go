package domain

import "time"

// Prompt is a single user-submitted input recorded in the global history log,
// cross-referenced to a session by id.
type Prompt struct {
	Text      string
	Timestamp time.Time // zero when the source record had no timestamp
	Project   string    // full project path as recorded, "unknown" when absent
	SessionID string
}
