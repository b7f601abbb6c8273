package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"clx/application"
	"clx/domain"
	"clx/logging"
)

// Messages carrying loaded data back into the update loop. Each loader runs
// as a tea.Cmd so reads never block rendering.

type dashboardLoadedMsg struct {
	stats  domain.GlobalStats
	counts domain.StatsSnapshot
	err    error
}

type sessionsLoadedMsg struct {
	sessions []domain.Session
	err      error
}

type transcriptLoadedMsg struct {
	session  domain.Session
	messages []domain.Message
	err      error
}

type promptResultsMsg struct {
	query   string
	prompts []domain.Prompt
	err     error
}

type deepResultsMsg struct {
	query   string
	results []domain.SearchResult
	err     error
}

type projectsLoadedMsg struct {
	projects []domain.Project
	err      error
}

type statsLoadedMsg struct {
	snapshot domain.StatsSnapshot
	err      error
}

type plansLoadedMsg struct {
	plans []domain.Plan
	err   error
}

type planContentMsg struct {
	plan    domain.Plan
	content string
}

type todosLoadedMsg struct {
	todos []domain.SessionTodos
	err   error
}

type exportDoneMsg struct {
	path string
	err  error
}

func loadDashboard(explorer *application.Explorer) tea.Cmd {
	return func() tea.Msg {
		stats, err := explorer.GlobalStats()
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		counts, err := explorer.Stats()
		return dashboardLoadedMsg{stats: stats, counts: counts, err: err}
	}
}

func loadSessions(explorer *application.Explorer) tea.Cmd {
	return func() tea.Msg {
		sessions, err := explorer.Sessions()
		return sessionsLoadedMsg{sessions: sessions, err: err}
	}
}

func loadProjects(explorer *application.Explorer) tea.Cmd {
	return func() tea.Msg {
		projects, err := explorer.Projects()
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func loadStats(explorer *application.Explorer) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := explorer.Stats()
		return statsLoadedMsg{snapshot: snapshot, err: err}
	}
}

func loadTranscript(explorer *application.Explorer, session domain.Session, limit int) tea.Cmd {
	return func() tea.Msg {
		messages, err := explorer.Transcript(session, limit)
		return transcriptLoadedMsg{session: session, messages: messages, err: err}
	}
}

func searchPrompts(explorer *application.Explorer, query string) tea.Cmd {
	return func() tea.Msg {
		prompts, err := explorer.SearchPrompts(query)
		return promptResultsMsg{query: query, prompts: prompts, err: err}
	}
}

func searchDeep(explorer *application.Explorer, query string, maxResults int) tea.Cmd {
	return func() tea.Msg {
		results, err := explorer.DeepSearch(query, maxResults)
		if err != nil {
			logging.Logger.Error("deep search failed", "query", query, "error", err)
		}
		return deepResultsMsg{query: query, results: results, err: err}
	}
}

func loadPlans(explorer *application.Explorer) tea.Cmd {
	return func() tea.Msg {
		plans, err := explorer.Plans()
		return plansLoadedMsg{plans: plans, err: err}
	}
}

func loadPlanContent(explorer *application.Explorer, plan domain.Plan) tea.Cmd {
	return func() tea.Msg {
		return planContentMsg{plan: plan, content: explorer.PlanContent(plan)}
	}
}

func loadTodos(explorer *application.Explorer) tea.Cmd {
	return func() tea.Msg {
		todos, err := explorer.Todos()
		return todosLoadedMsg{todos: todos, err: err}
	}
}

func exportSession(explorer *application.Explorer, session domain.Session) tea.Cmd {
	return func() tea.Msg {
		path := fmt.Sprintf("session-%s.md", session.SessionID)
		err := explorer.ExportSession(session, path)
		if err != nil {
			logging.Logger.Error("export failed", "session", session.SessionID, "error", err)
		}
		return exportDoneMsg{path: path, err: err}
	}
}
