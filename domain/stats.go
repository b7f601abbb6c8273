package domain

// DailyStat holds activity counts for one calendar day
type DailyStat struct {
	Date          string // YYYY-MM-DD
	MessageCount  int
	SessionCount  int
	ToolCallCount int
}

// ModelUsage holds token counts for one model
type ModelUsage struct {
	ModelID             string
	InputTokens         int64
	OutputTokens        int64
	CacheReadTokens     int64
	CacheCreationTokens int64
}

// TotalTokens is the sum of all token counts
func (m ModelUsage) TotalTokens() int64 {
	return m.InputTokens + m.OutputTokens + m.CacheReadTokens + m.CacheCreationTokens
}

// LongestSession describes the longest recorded session
type LongestSession struct {
	SessionID    string
	Duration     string
	MessageCount int
}

// StatsSnapshot is the decoded content of the stats cache file
type StatsSnapshot struct {
	Daily      []DailyStat // sorted ascending by date
	ModelUsage []ModelUsage
	HourCounts map[int]int
	Longest    LongestSession
}

// GlobalStats is a computed aggregate across all data sources. It is derived
// on demand, never persisted. Empty sources produce zeroed fields and "?"
// date sentinels, never an error.
type GlobalStats struct {
	TotalMessages  int
	TotalSessions  int
	TotalToolCalls int
	TotalPrompts   int
	TotalProjects  int
	TotalDataBytes int64
	FirstDate      string
	LastDate       string
	ActiveDays     int
	Daily          []DailyStat
	ModelUsage     []ModelUsage // sorted by total tokens, highest first
	HourCounts     map[int]int  // sparse: only hours with nonzero counts are present
	Longest        LongestSession
}
