package cmd

import (
	"fmt"
	"sort"
	"strings"

	"clx/domain"
)

// DashboardCmd prints the global activity dashboard
type DashboardCmd struct{}

// Run executes the dashboard command
func (d *DashboardCmd) Run(cli *CLI) error {
	stats, err := cli.Container.Explorer.GlobalStats()
	if err != nil {
		return fmt.Errorf("failed to compute global stats: %w", err)
	}

	fmt.Printf("Claude activity — %s to %s\n\n", stats.FirstDate, stats.LastDate)

	fmt.Printf("  Messages    %8s    Sessions   %8s\n",
		domain.FormatNumber(stats.TotalMessages), domain.FormatNumber(stats.TotalSessions))
	fmt.Printf("  Tool calls  %8s    Prompts    %8s\n",
		domain.FormatNumber(stats.TotalToolCalls), domain.FormatNumber(stats.TotalPrompts))
	fmt.Printf("  Projects    %8d    Data       %8s\n",
		stats.TotalProjects, domain.FormatSize(stats.TotalDataBytes))
	fmt.Printf("  Active days %8d\n\n", stats.ActiveDays)

	if len(stats.Daily) > 0 {
		values := make([]int, len(stats.Daily))
		for i, day := range stats.Daily {
			values[i] = day.MessageCount
		}
		fmt.Printf("  Activity  %s\n\n", domain.Sparkline(values, 60))
	}

	if len(stats.ModelUsage) > 0 {
		fmt.Println("Model usage")
		fmt.Println(strings.Repeat("─", 64))
		for _, usage := range stats.ModelUsage {
			fmt.Printf("  %-40s %12s tokens\n",
				usage.ModelID, domain.FormatNumber(int(usage.TotalTokens())))
		}
		fmt.Println()
	}

	if len(stats.HourCounts) > 0 {
		d.renderHourHistogram(stats.HourCounts)
	}

	if stats.Longest.SessionID != "" {
		fmt.Printf("Longest session: %s (%s, %d messages)\n",
			stats.Longest.SessionID, stats.Longest.Duration, stats.Longest.MessageCount)
	}

	return nil
}

// renderHourHistogram prints a bar per hour with recorded activity
func (d *DashboardCmd) renderHourHistogram(hourCounts map[int]int) {
	hours := make([]int, 0, len(hourCounts))
	maxCount := 0
	for hour, count := range hourCounts {
		hours = append(hours, hour)
		if count > maxCount {
			maxCount = count
		}
	}
	sort.Ints(hours)

	fmt.Println("Activity by hour")
	fmt.Println(strings.Repeat("─", 64))
	for _, hour := range hours {
		count := hourCounts[hour]
		fmt.Printf("  %02d:00  %s %d\n", hour, domain.Bar(count, maxCount, 40), count)
	}
	fmt.Println()
}
