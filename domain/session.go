package domain

import (
	"fmt"
	"time"
)

// Session is one continuous transcript file representing a single assistant
// conversation. Identity is SessionID, unique within a project directory but
// not guaranteed globally unique across projects.
type Session struct {
	SessionID          string
	ProjectDisplayName string
	ProjectDirName     string // encoded directory name under projects/
	FirstActivity      time.Time
	LastActivity       time.Time
	PromptCount        int
	MessageCount       int
	TranscriptPath     string
	TranscriptSize     int64
}

// DurationString renders the session's active span as "5m" or "2h03m".
// Returns "?" when either endpoint is unknown.
func (s Session) DurationString() string {
	if s.FirstActivity.IsZero() || s.LastActivity.IsZero() {
		return "?"
	}
	mins := int(s.LastActivity.Sub(s.FirstActivity).Minutes())
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh%02dm", mins/60, mins%60)
}

// SizeString renders the transcript size as "12KB" or "3.4MB"
func (s Session) SizeString() string {
	return FormatSize(s.TranscriptSize)
}

// Project is a directory bucket under which zero or more sessions are grouped,
// named by an encoded filesystem path.
type Project struct {
	DirName      string // raw encoded directory name
	Path         string // absolute path of the project directory
	DisplayName  string
	Sessions     []Session // sorted by last activity, newest first
	TotalSize    int64
	SessionCount int
}

// SizeString renders the project's total transcript size
func (p Project) SizeString() string {
	return FormatSize(p.TotalSize)
}
