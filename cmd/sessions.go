package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"clx/domain"
)

// SessionsCmd groups session subcommands
type SessionsCmd struct {
	List  SessionsListCmd  `cmd:"" help:"List sessions across all projects (default)" default:"1"`
	View  SessionsViewCmd  `cmd:"" help:"Print one session's transcript"`
	Files SessionsFilesCmd `cmd:"" help:"List files recorded in a session's file history"`
}

// SessionsListCmd lists reconciled sessions, newest first
type SessionsListCmd struct {
	Limit   int    `help:"Maximum sessions to show" default:"30"`
	Project string `help:"Only show sessions whose project display name contains this"`
}

// Run executes the sessions list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	sessions, err := cli.Container.Explorer.Sessions()
	if err != nil {
		return fmt.Errorf("failed to discover sessions: %w", err)
	}

	if s.Project != "" {
		filter := strings.ToLower(s.Project)
		var filtered []domain.Session
		for _, session := range sessions {
			if strings.Contains(strings.ToLower(session.ProjectDisplayName), filter) {
				filtered = append(filtered, session)
			}
		}
		sessions = filtered
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions found.")
		return nil
	}

	fmt.Printf("%-38s %-28s %-17s %7s %8s %8s\n",
		"Session", "Project", "Last activity", "Prompts", "Length", "Size")
	fmt.Println(strings.Repeat("─", 110))

	shown := 0
	for _, session := range sessions {
		if shown >= s.Limit {
			break
		}
		fmt.Printf("%-38s %-28s %-17s %7d %8s %8s\n",
			session.SessionID,
			truncateCell(session.ProjectDisplayName, 28),
			formatActivity(session.LastActivity),
			session.PromptCount,
			session.DurationString(),
			session.SizeString())
		shown++
	}

	fmt.Printf("\n%d of %d sessions\n", shown, len(sessions))
	return nil
}

// SessionsViewCmd prints one session's transcript as plain text
type SessionsViewCmd struct {
	SessionID string `arg:"" help:"Session id (transcript file name without extension)"`
	Limit     int    `help:"Maximum messages to show (0 = configured default)"`
}

// Run executes the sessions view command
func (s *SessionsViewCmd) Run(cli *CLI) error {
	session, err := findSession(cli, s.SessionID)
	if err != nil {
		return err
	}

	limit := s.Limit
	if limit <= 0 {
		limit = cli.Container.TranscriptLimit()
	}

	messages, err := cli.Container.Explorer.Transcript(session, limit)
	if err != nil {
		return fmt.Errorf("failed to read transcript: %w", err)
	}

	fmt.Printf("Session %s — %s (%d messages shown)\n\n",
		session.SessionID, session.ProjectDisplayName, len(messages))

	for _, msg := range messages {
		prefix := ""
		switch msg.Role {
		case domain.RoleUser:
			prefix = "[User]"
		case domain.RoleAssistant:
			prefix = "[Assistant]"
		case domain.RoleTool:
			prefix = "[Tool]"
		case domain.RoleSystem:
			prefix = "[System]"
		}
		fmt.Printf("%s %s\n\n", prefix, msg.Content)
	}

	return nil
}

// SessionsFilesCmd lists the files recorded under file-history for a session,
// or for every session when no id is given
type SessionsFilesCmd struct {
	SessionID string `arg:"" optional:"" help:"Session id (omit to list all sessions with file history)"`
}

// Run executes the sessions files command
func (s *SessionsFilesCmd) Run(cli *CLI) error {
	history, err := cli.Container.Explorer.FileHistory()
	if err != nil {
		return fmt.Errorf("failed to read file history: %w", err)
	}

	if s.SessionID != "" {
		files, ok := history[s.SessionID]
		if !ok {
			fmt.Printf("No file history for session %s.\n", s.SessionID)
			return nil
		}
		for _, file := range files {
			fmt.Println(file)
		}
		return nil
	}

	if len(history) == 0 {
		fmt.Println("No file history found.")
		return nil
	}

	ids := make([]string, 0, len(history))
	for id := range history {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Printf("%s (%d files)\n", id, len(history[id]))
		for _, file := range history[id] {
			fmt.Printf("  %s\n", file)
		}
	}
	return nil
}

// findSession resolves a session id against the reconciled session view
func findSession(cli *CLI, sessionID string) (domain.Session, error) {
	sessions, err := cli.Container.Explorer.Sessions()
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to discover sessions: %w", err)
	}
	for _, session := range sessions {
		if session.SessionID == sessionID {
			return session, nil
		}
	}
	return domain.Session{}, fmt.Errorf("session %q not found", sessionID)
}

// formatActivity renders a timestamp for table display, "?" when unknown
func formatActivity(t time.Time) string {
	if t.IsZero() {
		return "?"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// truncateCell shortens a string to fit a table column
func truncateCell(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
