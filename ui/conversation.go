package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"clx/domain"
)

// Conversation renders one session transcript in a scrollable viewport.
type Conversation struct {
	viewport viewport.Model
	session  domain.Session
	loaded   bool
	err      error
}

func NewConversation() *Conversation {
	vp := viewport.New(80, 20)
	return &Conversation{viewport: vp}
}

func (c *Conversation) SetSize(width, height int) {
	c.viewport.Width = width
	c.viewport.Height = height
}

func (c *Conversation) SetData(msg transcriptLoadedMsg) {
	c.session = msg.session
	c.err = msg.err
	if msg.err != nil {
		return
	}
	c.loaded = true
	c.viewport.SetContent(renderTranscript(msg.messages))
	c.viewport.GotoTop()
}

func (c *Conversation) Update(msg tea.Msg, m *Model) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "e" {
			return exportSession(m.explorer, c.session)
		}
	}
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return cmd
}

func (c *Conversation) View() string {
	if c.err != nil {
		return errorStyle.Render(fmt.Sprintf("failed to read transcript: %v", c.err))
	}
	if !c.loaded {
		return dimStyle.Render("loading...")
	}
	header := titleStyle.Render(fmt.Sprintf("%s — %s", c.session.ProjectDisplayName, shortID(c.session.SessionID)))
	return header + "\n" + c.viewport.View()
}

func renderTranscript(messages []domain.Message) string {
	if len(messages) == 0 {
		return dimStyle.Render("empty transcript")
	}
	var b strings.Builder
	for _, msg := range messages {
		b.WriteString(renderMessage(msg))
		b.WriteString("\n\n")
	}
	return b.String()
}

func renderMessage(msg domain.Message) string {
	when := ""
	if !msg.Timestamp.IsZero() {
		when = dimStyle.Render(" " + msg.Timestamp.Format("15:04:05"))
	}
	switch msg.Role {
	case domain.RoleUser:
		return userStyle.Render("You") + when + "\n" + normalStyle.Render(msg.Content)
	case domain.RoleAssistant:
		return assistantStyle.Render("Claude") + when + "\n" + normalStyle.Render(msg.Content)
	case domain.RoleTool:
		return toolStyle.Render("⚙ "+msg.Content) + when
	default:
		return dimStyle.Render(msg.Content) + when
	}
}
