package ui

import (
	"fmt"
	"strings"

	"clx/domain"
)

// Dashboard renders the aggregate activity overview.
type Dashboard struct {
	stats  domain.GlobalStats
	counts domain.StatsSnapshot
	loaded bool
	err    error
}

func NewDashboard() *Dashboard {
	return &Dashboard{}
}

func (d *Dashboard) SetData(msg dashboardLoadedMsg) {
	d.err = msg.err
	if msg.err == nil {
		d.stats = msg.stats
		d.counts = msg.counts
		d.loaded = true
	}
}

func (d *Dashboard) View(width int) string {
	if d.err != nil {
		return errorStyle.Render(fmt.Sprintf("failed to load stats: %v", d.err))
	}
	if !d.loaded {
		return dimStyle.Render("loading...")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Activity") + "\n")

	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s   %s %s\n",
		labelStyle.Render("Sessions:"), domain.FormatNumber(d.stats.TotalSessions),
		labelStyle.Render("Messages:"), domain.FormatNumber(d.stats.TotalMessages),
		labelStyle.Render("Prompts:"), domain.FormatNumber(d.stats.TotalPrompts),
		labelStyle.Render("Projects:"), domain.FormatNumber(d.stats.TotalProjects)))
	b.WriteString(fmt.Sprintf("%s %s   %s %s → %s (%d active days)\n",
		labelStyle.Render("Data:"), domain.FormatSize(d.stats.TotalDataBytes),
		labelStyle.Render("Range:"), d.stats.FirstDate, d.stats.LastDate, d.stats.ActiveDays))

	if len(d.stats.Daily) > 0 {
		values := make([]int, len(d.stats.Daily))
		for i, day := range d.stats.Daily {
			values[i] = day.MessageCount
		}
		sparkWidth := width - 4
		if sparkWidth < 10 || sparkWidth > 60 {
			sparkWidth = 60
		}
		b.WriteString("\n" + labelStyle.Render("Daily messages") + "\n")
		b.WriteString(normalStyle.Render(domain.Sparkline(values, sparkWidth)) + "\n")
	}

	if len(d.stats.ModelUsage) > 0 {
		b.WriteString("\n" + labelStyle.Render("Model usage") + "\n")
		max := d.stats.ModelUsage[0].TotalTokens()
		for _, usage := range d.stats.ModelUsage {
			b.WriteString(fmt.Sprintf("  %-36s %s %s\n",
				usage.ModelID,
				domain.Bar(int(usage.TotalTokens()), int(max), 20),
				dimStyle.Render(domain.FormatNumber(int(usage.TotalTokens()))+" tokens")))
		}
	}

	if len(d.stats.HourCounts) > 0 {
		b.WriteString("\n" + labelStyle.Render("Activity by hour") + "\n")
		b.WriteString(renderHours(d.stats.HourCounts) + "\n")
	}

	if d.stats.Longest.SessionID != "" {
		b.WriteString("\n" + labelStyle.Render("Longest session") + " " +
			fmt.Sprintf("%s (%s, %d messages)\n",
				d.stats.Longest.SessionID, d.stats.Longest.Duration, d.stats.Longest.MessageCount))
	}

	return b.String()
}

func renderHours(counts map[int]int) string {
	values := make([]int, 24)
	for hour, count := range counts {
		if hour >= 0 && hour < 24 {
			values[hour] = count
		}
	}
	return "  " + dimStyle.Render("00") + " " +
		normalStyle.Render(domain.Sparkline(values, 24)) + " " + dimStyle.Render("23")
}
