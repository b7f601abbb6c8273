package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"clx/domain"
)

// ProjectsView is the per-project rollup table.
type ProjectsView struct {
	table    table.Model
	projects []domain.Project
	err      error
}

func NewProjectsView() *ProjectsView {
	columns := []table.Column{
		{Title: "Project", Width: 40},
		{Title: "Sessions", Width: 9},
		{Title: "Size", Width: 9},
		{Title: "Last activity", Width: 17},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(titleStyle.GetForeground())
	styles.Selected = styles.Selected.Foreground(matchStyle.GetForeground()).Bold(true)
	t.SetStyles(styles)
	return &ProjectsView{table: t}
}

func (pv *ProjectsView) SetSize(width, height int) {
	pv.table.SetHeight(height)
}

func (pv *ProjectsView) SetData(msg projectsLoadedMsg) {
	pv.err = msg.err
	if msg.err != nil {
		return
	}
	pv.projects = msg.projects
	rows := make([]table.Row, 0, len(msg.projects))
	for _, project := range msg.projects {
		last := "?"
		if len(project.Sessions) > 0 && !project.Sessions[0].LastActivity.IsZero() {
			last = project.Sessions[0].LastActivity.Format("2006-01-02 15:04")
		}
		rows = append(rows, table.Row{
			project.DisplayName,
			fmt.Sprintf("%d", project.SessionCount),
			project.SizeString(),
			last,
		})
	}
	pv.table.SetRows(rows)
}

func (pv *ProjectsView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	pv.table, cmd = pv.table.Update(msg)
	return cmd
}

func (pv *ProjectsView) View() string {
	if pv.err != nil {
		return errorStyle.Render(fmt.Sprintf("failed to load projects: %v", pv.err))
	}
	if len(pv.projects) == 0 {
		return dimStyle.Render("no projects found")
	}
	return pv.table.View()
}
