package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"clx/domain"
)

// StatsView renders the daily activity table with per-day bars.
type StatsView struct {
	viewport viewport.Model
	loaded   bool
	err      error
}

func NewStatsView() *StatsView {
	return &StatsView{viewport: viewport.New(80, 20)}
}

func (sv *StatsView) SetSize(width, height int) {
	sv.viewport.Width = width
	sv.viewport.Height = height
}

func (sv *StatsView) SetData(msg statsLoadedMsg) {
	sv.err = msg.err
	if msg.err != nil {
		return
	}
	sv.loaded = true
	sv.viewport.SetContent(renderDailyStats(msg.snapshot.Daily))
	sv.viewport.GotoBottom()
}

func (sv *StatsView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	sv.viewport, cmd = sv.viewport.Update(msg)
	return cmd
}

func (sv *StatsView) View() string {
	if sv.err != nil {
		return errorStyle.Render(fmt.Sprintf("failed to load stats: %v", sv.err))
	}
	if !sv.loaded {
		return dimStyle.Render("loading...")
	}
	return titleStyle.Render("Daily activity") + "\n" + sv.viewport.View()
}

func renderDailyStats(daily []domain.DailyStat) string {
	if len(daily) == 0 {
		return dimStyle.Render("no stats data yet")
	}

	maxMsgs := 0
	for _, day := range daily {
		if day.MessageCount > maxMsgs {
			maxMsgs = day.MessageCount
		}
	}

	var b strings.Builder
	for _, day := range daily {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			dimStyle.Render(day.Date),
			normalStyle.Render(domain.Bar(day.MessageCount, maxMsgs, 30)),
			dimStyle.Render(fmt.Sprintf("%d msgs, %d sessions, %d tools",
				day.MessageCount, day.SessionCount, day.ToolCallCount))))
	}
	return b.String()
}
