package cmd

import (
	"fmt"
	"strings"

	"clx/domain"
)

// StatsCmd shows daily activity statistics
type StatsCmd struct {
	Format string `help:"Output format (table or chart)" default:"table" enum:"table,chart"`
	Days   int    `help:"Number of most recent days to show" default:"30"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	snapshot, err := cli.Container.Explorer.Stats()
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}

	if len(snapshot.Daily) == 0 {
		fmt.Println("No stats data yet.")
		return nil
	}

	daily := snapshot.Daily
	if s.Days > 0 && len(daily) > s.Days {
		daily = daily[len(daily)-s.Days:]
	}

	switch s.Format {
	case "chart":
		s.renderChart(daily)
	default:
		s.renderTable(daily)
	}

	return nil
}

// renderTable displays daily activity in table format
func (s *StatsCmd) renderTable(daily []domain.DailyStat) {
	fmt.Println("Date        Messages   Sessions   Tools      Msgs/Session")
	fmt.Println(strings.Repeat("─", 58))

	totalMsgs, totalSessions, totalTools := 0, 0, 0
	for _, day := range daily {
		perSession := 0
		if day.SessionCount > 0 {
			perSession = day.MessageCount / day.SessionCount
		}
		fmt.Printf("%-11s %-10d %-10d %-10d %d\n",
			day.Date, day.MessageCount, day.SessionCount, day.ToolCallCount, perSession)

		totalMsgs += day.MessageCount
		totalSessions += day.SessionCount
		totalTools += day.ToolCallCount
	}

	fmt.Println(strings.Repeat("─", 58))
	fmt.Printf("%-11s %-10d %-10d %-10d\n", "Total", totalMsgs, totalSessions, totalTools)
}

// renderChart displays messages and tool calls as per-day bar charts
func (s *StatsCmd) renderChart(daily []domain.DailyStat) {
	maxMsgs, maxTools := 0, 0
	for _, day := range daily {
		if day.MessageCount > maxMsgs {
			maxMsgs = day.MessageCount
		}
		if day.ToolCallCount > maxTools {
			maxTools = day.ToolCallCount
		}
	}

	fmt.Println("Messages per day")
	fmt.Println()
	for _, day := range daily {
		fmt.Printf("  %s  %s %d\n", day.Date, domain.Bar(day.MessageCount, maxMsgs, 40), day.MessageCount)
	}

	fmt.Println()
	fmt.Println("Tool calls per day")
	fmt.Println()
	for _, day := range daily {
		fmt.Printf("  %s  %s %d\n", day.Date, domain.Bar(day.ToolCallCount, maxTools, 40), day.ToolCallCount)
	}
}
