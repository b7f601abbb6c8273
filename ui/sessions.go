package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"clx/domain"
)

// SessionTable lists reconciled sessions, newest first.
type SessionTable struct {
	table    table.Model
	sessions []domain.Session
	err      error
}

func NewSessionTable() *SessionTable {
	columns := []table.Column{
		{Title: "Session", Width: 14},
		{Title: "Project", Width: 28},
		{Title: "Last activity", Width: 17},
		{Title: "Duration", Width: 9},
		{Title: "Prompts", Width: 8},
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
	return &SessionTable{table: t}
}

func (st *SessionTable) SetSize(width, height int) {
	st.table.SetHeight(height)
}

func (st *SessionTable) SetData(msg sessionsLoadedMsg) {
	st.err = msg.err
	if msg.err != nil {
		return
	}
	st.sessions = msg.sessions
	rows := make([]table.Row, 0, len(msg.sessions))
	for _, s := range msg.sessions {
		last := "?"
		if !s.LastActivity.IsZero() {
			last = s.LastActivity.Format("2006-01-02 15:04")
		}
		rows = append(rows, table.Row{
			shortID(s.SessionID),
			s.ProjectDisplayName,
			last,
			s.DurationString(),
			fmt.Sprintf("%d", s.PromptCount),
			s.SizeString(),
		})
	}
	st.table.SetRows(rows)
}

func (st *SessionTable) Selected() (domain.Session, bool) {
	cursor := st.table.Cursor()
	if cursor < 0 || cursor >= len(st.sessions) {
		return domain.Session{}, false
	}
	return st.sessions[cursor], true
}

func (st *SessionTable) Update(msg tea.Msg, m *Model) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Open):
			if session, ok := st.Selected(); ok {
				return loadTranscript(m.explorer, session, m.opts.TranscriptLimit)
			}
			return nil
		case key.Matches(keyMsg, m.keys.Export):
			if session, ok := st.Selected(); ok {
				return exportSession(m.explorer, session)
			}
			return nil
		}
	}
	var cmd tea.Cmd
	st.table, cmd = st.table.Update(msg)
	return cmd
}

func (st *SessionTable) View() string {
	if st.err != nil {
		return errorStyle.Render(fmt.Sprintf("failed to load sessions: %v", st.err))
	}
	if len(st.sessions) == 0 {
		return dimStyle.Render("no sessions found")
	}
	return st.table.View()
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
