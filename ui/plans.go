package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"clx/application"
	"clx/domain"
)

// PlansView lists plan documents and shows their content on demand.
type PlansView struct {
	table   table.Model
	content viewport.Model
	plans   []domain.Plan
	reading bool
	current domain.Plan
	err     error
}

func NewPlansView() *PlansView {
	columns := []table.Column{
		{Title: "Plan", Width: 40},
		{Title: "Modified", Width: 17},
		{Title: "Size", Width: 9},
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
	return &PlansView{table: t, content: viewport.New(80, 20)}
}

func (pv *PlansView) SetSize(width, height int) {
	pv.table.SetHeight(height)
	pv.content.Width = width
	pv.content.Height = height
}

func (pv *PlansView) SetPlans(msg plansLoadedMsg) {
	pv.err = msg.err
	if msg.err != nil {
		return
	}
	pv.plans = msg.plans
	rows := make([]table.Row, 0, len(msg.plans))
	for _, plan := range msg.plans {
		rows = append(rows, table.Row{
			plan.Name,
			plan.Modified.Format("2006-01-02 15:04"),
			domain.FormatSize(plan.Size),
		})
	}
	pv.table.SetRows(rows)
}

func (pv *PlansView) SetContent(msg planContentMsg) {
	pv.reading = true
	pv.current = msg.plan
	pv.content.SetContent(normalStyle.Render(msg.content))
	pv.content.GotoTop()
}

func (pv *PlansView) Update(msg tea.Msg, explorer *application.Explorer) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		keys := NewKeyMap()
		switch {
		case key.Matches(keyMsg, keys.Back):
			pv.reading = false
			return nil
		case key.Matches(keyMsg, keys.Open):
			if pv.reading {
				return nil
			}
			cursor := pv.table.Cursor()
			if cursor >= 0 && cursor < len(pv.plans) {
				return loadPlanContent(explorer, pv.plans[cursor])
			}
			return nil
		}
	}
	var cmd tea.Cmd
	if pv.reading {
		pv.content, cmd = pv.content.Update(msg)
	} else {
		pv.table, cmd = pv.table.Update(msg)
	}
	return cmd
}

func (pv *PlansView) View() string {
	if pv.err != nil {
		return errorStyle.Render(fmt.Sprintf("failed to load plans: %v", pv.err))
	}
	if pv.reading {
		return titleStyle.Render(pv.current.Name) + "\n" + pv.content.View()
	}
	if len(pv.plans) == 0 {
		return dimStyle.Render("no plans found")
	}
	return pv.table.View()
}
