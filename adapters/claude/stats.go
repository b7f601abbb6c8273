package claude

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"clx/domain"
	"clx/logging"
	"clx/paths"
)

// statsDocument mirrors stats-cache.json
type statsDocument struct {
	DailyActivity []struct {
		Date          string `json:"date"`
		MessageCount  int    `json:"messageCount"`
		SessionCount  int    `json:"sessionCount"`
		ToolCallCount int    `json:"toolCallCount"`
	} `json:"dailyActivity"`
	ModelUsage map[string]struct {
		InputTokens              int64 `json:"inputTokens"`
		OutputTokens             int64 `json:"outputTokens"`
		CacheReadInputTokens     int64 `json:"cacheReadInputTokens"`
		CacheCreationInputTokens int64 `json:"cacheCreationInputTokens"`
	} `json:"modelUsage"`
	HourCounts     map[string]int `json:"hourCounts"`
	LongestSession struct {
		SessionID    string          `json:"sessionId"`
		Duration     json.RawMessage `json:"duration"`
		MessageCount int             `json:"messageCount"`
	} `json:"longestSession"`
}

// ReadStats parses stats-cache.json. A missing or malformed document yields
// an empty snapshot, never an error.
func (r *Reader) ReadStats() (domain.StatsSnapshot, error) {
	statsPath := paths.StatsCachePath(r.claudeDir)

	data, err := os.ReadFile(statsPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to read stats cache", "path", statsPath, "error", err)
		}
		return domain.StatsSnapshot{}, nil
	}

	var doc statsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Logger.Debug("Malformed stats cache", "path", statsPath, "error", err)
		return domain.StatsSnapshot{}, nil
	}

	snapshot := domain.StatsSnapshot{}

	for _, day := range doc.DailyActivity {
		snapshot.Daily = append(snapshot.Daily, domain.DailyStat{
			Date:          day.Date,
			MessageCount:  day.MessageCount,
			SessionCount:  day.SessionCount,
			ToolCallCount: day.ToolCallCount,
		})
	}
	// Lexicographic order is chronological for ISO dates
	sort.Slice(snapshot.Daily, func(i, j int) bool {
		return snapshot.Daily[i].Date < snapshot.Daily[j].Date
	})

	for modelID, usage := range doc.ModelUsage {
		snapshot.ModelUsage = append(snapshot.ModelUsage, domain.ModelUsage{
			ModelID:             modelID,
			InputTokens:         usage.InputTokens,
			OutputTokens:        usage.OutputTokens,
			CacheReadTokens:     usage.CacheReadInputTokens,
			CacheCreationTokens: usage.CacheCreationInputTokens,
		})
	}
	sort.Slice(snapshot.ModelUsage, func(i, j int) bool {
		a, b := snapshot.ModelUsage[i], snapshot.ModelUsage[j]
		if a.TotalTokens() != b.TotalTokens() {
			return a.TotalTokens() > b.TotalTokens()
		}
		return a.ModelID < b.ModelID
	})

	for hourStr, count := range doc.HourCounts {
		hour, err := strconv.Atoi(hourStr)
		if err != nil || hour < 0 || hour > 23 || count == 0 {
			continue
		}
		if snapshot.HourCounts == nil {
			snapshot.HourCounts = make(map[int]int)
		}
		snapshot.HourCounts[hour] = count
	}

	snapshot.Longest = domain.LongestSession{
		SessionID:    doc.LongestSession.SessionID,
		Duration:     decodeDuration(doc.LongestSession.Duration),
		MessageCount: doc.LongestSession.MessageCount,
	}

	return snapshot, nil
}

// decodeDuration accepts the longest-session duration as either a number of
// milliseconds or a preformatted string
func decodeDuration(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var ms float64
	if err := json.Unmarshal(raw, &ms); err == nil {
		mins := int(ms / 1000 / 60)
		if mins < 60 {
			return fmt.Sprintf("%dm", mins)
		}
		return fmt.Sprintf("%dh%02dm", mins/60, mins%60)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}
