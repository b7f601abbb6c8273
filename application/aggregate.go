package application

import "clx/domain"

// ComputeGlobalStats folds the stats snapshot, prompt history and project
// list into one dashboard aggregate. Empty inputs produce zeroed totals and
// "?" date sentinels; this function has no error conditions.
func ComputeGlobalStats(snapshot domain.StatsSnapshot, prompts []domain.Prompt, projects []domain.Project) domain.GlobalStats {
	stats := domain.GlobalStats{
		TotalPrompts: len(prompts),
		FirstDate:    "?",
		LastDate:     "?",
		ActiveDays:   len(snapshot.Daily),
		Daily:        snapshot.Daily,
		ModelUsage:   snapshot.ModelUsage,
		HourCounts:   snapshot.HourCounts,
		Longest:      snapshot.Longest,
	}

	for _, day := range snapshot.Daily {
		stats.TotalMessages += day.MessageCount
		stats.TotalSessions += day.SessionCount
		stats.TotalToolCalls += day.ToolCallCount
	}
	if len(snapshot.Daily) > 0 {
		stats.FirstDate = snapshot.Daily[0].Date
		stats.LastDate = snapshot.Daily[len(snapshot.Daily)-1].Date
	}

	for _, project := range projects {
		if project.SessionCount > 0 {
			stats.TotalProjects++
		}
		stats.TotalDataBytes += project.TotalSize
	}

	return stats
}
