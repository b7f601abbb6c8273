package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"clx/application"
)

// Options tunes the interactive explorer.
type Options struct {
	TranscriptLimit      int
	DeepSearchMaxResults int
}

type screen int

const (
	screenDashboard screen = iota
	screenSessions
	screenSearch
	screenProjects
	screenStats
	screenPlans
	screenTodos
	screenConversation
)

var screenTabs = []struct {
	id    screen
	label string
}{
	{screenDashboard, "[d]ashboard"},
	{screenSessions, "[s]essions"},
	{screenSearch, "search [f]"},
	{screenProjects, "[g] projects"},
	{screenStats, "[a]ctivity"},
	{screenPlans, "[p]lans"},
	{screenTodos, "[t]odos"},
}

// Model is the root TUI model. It owns one component per screen and
// routes messages to whichever screen is active.
type Model struct {
	explorer *application.Explorer
	opts     Options
	keys     KeyMap
	screen   screen
	width    int
	height   int
	status   string
	err      error

	dashboard    *Dashboard
	sessions     *SessionTable
	conversation *Conversation
	search       *SearchView
	projects     *ProjectsView
	stats        *StatsView
	plans        *PlansView
	todos        *TodosView
}

// NewModel creates the root explorer model.
func NewModel(explorer *application.Explorer, opts Options) *Model {
	return &Model{
		explorer:     explorer,
		opts:         opts,
		keys:         NewKeyMap(),
		screen:       screenDashboard,
		dashboard:    NewDashboard(),
		sessions:     NewSessionTable(),
		conversation: NewConversation(),
		search:       NewSearchView(opts.DeepSearchMaxResults),
		projects:     NewProjectsView(),
		stats:        NewStatsView(),
		plans:        NewPlansView(),
		todos:        NewTodosView(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		loadDashboard(m.explorer),
		loadSessions(m.explorer),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sessions.SetSize(msg.Width, msg.Height-chromeHeight)
		m.conversation.SetSize(msg.Width, msg.Height-chromeHeight)
		m.search.SetSize(msg.Width, msg.Height-chromeHeight)
		m.projects.SetSize(msg.Width, msg.Height-chromeHeight)
		m.stats.SetSize(msg.Width, msg.Height-chromeHeight)
		m.plans.SetSize(msg.Width, msg.Height-chromeHeight)
		return m, nil

	case dashboardLoadedMsg:
		m.dashboard.SetData(msg)
		return m, nil
	case sessionsLoadedMsg:
		m.sessions.SetData(msg)
		return m, nil
	case transcriptLoadedMsg:
		m.conversation.SetData(msg)
		m.screen = screenConversation
		return m, nil
	case promptResultsMsg, deepResultsMsg:
		return m, m.search.Handle(msg)
	case projectsLoadedMsg:
		m.projects.SetData(msg)
		return m, nil
	case statsLoadedMsg:
		m.stats.SetData(msg)
		return m, nil
	case plansLoadedMsg:
		m.plans.SetPlans(msg)
		return m, nil
	case planContentMsg:
		m.plans.SetContent(msg)
		return m, nil
	case todosLoadedMsg:
		m.todos.SetData(msg)
		return m, nil
	case exportDoneMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("export failed: %v", msg.err))
		} else {
			m.status = fmt.Sprintf("exported to %s", msg.path)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}

	return m, m.updateActive(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	// When the search screen is capturing text input, only it sees keys.
	if m.screen == screenSearch && m.search.CapturesInput() {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		cmd := m.search.Update(msg, m.explorer)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Dashboard):
		m.screen = screenDashboard
		return m, loadDashboard(m.explorer)
	case key.Matches(msg, m.keys.Sessions):
		m.screen = screenSessions
		return m, loadSessions(m.explorer)
	case key.Matches(msg, m.keys.Search):
		m.screen = screenSearch
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Projects):
		m.screen = screenProjects
		return m, loadProjects(m.explorer)
	case key.Matches(msg, m.keys.Stats):
		m.screen = screenStats
		return m, loadStats(m.explorer)
	case key.Matches(msg, m.keys.Plans):
		m.screen = screenPlans
		return m, loadPlans(m.explorer)
	case key.Matches(msg, m.keys.Todos):
		m.screen = screenTodos
		return m, loadTodos(m.explorer)
	case key.Matches(msg, m.keys.Refresh):
		m.explorer.RefreshAll()
		m.status = "refreshed"
		return m, tea.Batch(loadDashboard(m.explorer), loadSessions(m.explorer))
	case key.Matches(msg, m.keys.Back):
		if m.screen == screenConversation {
			m.screen = screenSessions
			return m, nil
		}
		return m, m.updateActive(msg)
	}

	return m, m.updateActive(msg)
}

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	switch m.screen {
	case screenSessions:
		return m.sessions.Update(msg, m)
	case screenConversation:
		return m.conversation.Update(msg, m)
	case screenSearch:
		return m.search.Update(msg, m.explorer)
	case screenProjects:
		return m.projects.Update(msg)
	case screenStats:
		return m.stats.Update(msg)
	case screenPlans:
		return m.plans.Update(msg, m.explorer)
	case screenTodos:
		return m.todos.Update(msg)
	}
	return nil
}

// chromeHeight is the vertical space taken by the tab bar and help line.
const chromeHeight = 6

func (m *Model) View() string {
	var body string
	switch m.screen {
	case screenDashboard:
		body = m.dashboard.View(m.width)
	case screenSessions:
		body = m.sessions.View()
	case screenConversation:
		body = m.conversation.View()
	case screenSearch:
		body = m.search.View()
	case screenProjects:
		body = m.projects.View()
	case screenStats:
		body = m.stats.View()
	case screenPlans:
		body = m.plans.View()
	case screenTodos:
		body = m.todos.View(m.height - chromeHeight)
	}

	help := helpStyle.Render("enter open • e export • r refresh • esc back • q quit")
	if m.status != "" {
		help = helpStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.tabBar(), body, help)
}

func (m *Model) tabBar() string {
	tabs := make([]string, 0, len(screenTabs))
	active := m.screen
	if active == screenConversation {
		active = screenSessions
	}
	for _, t := range screenTabs {
		if t.id == active {
			tabs = append(tabs, activeTabStyle.Render(t.label))
		} else {
			tabs = append(tabs, tabStyle.Render(t.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
