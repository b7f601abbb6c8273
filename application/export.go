package application

import (
	"fmt"
	"io"
	"os"

	"clx/adapters/claude"
	"clx/domain"
	"clx/logging"
)

// WriteMarkdown renders a session transcript as Markdown. This is the only
// write path in the system and it never touches the source data directory.
func WriteMarkdown(w io.Writer, session domain.Session, messages []domain.Message) error {
	fmt.Fprintf(w, "# Session %s\n\n", session.SessionID)
	fmt.Fprintf(w, "- Project: %s\n", session.ProjectDisplayName)
	if !session.FirstActivity.IsZero() {
		fmt.Fprintf(w, "- First activity: %s\n", session.FirstActivity.Format("2006-01-02 15:04 MST"))
	}
	if !session.LastActivity.IsZero() {
		fmt.Fprintf(w, "- Last activity: %s\n", session.LastActivity.Format("2006-01-02 15:04 MST"))
	}
	fmt.Fprintf(w, "- Transcript size: %s\n\n", session.SizeString())

	for _, msg := range messages {
		switch msg.Role {
		case domain.RoleUser:
			fmt.Fprintf(w, "## User\n\n%s\n\n", msg.Content)
		case domain.RoleAssistant:
			fmt.Fprintf(w, "## Assistant\n\n%s\n\n", msg.Content)
		case domain.RoleTool:
			fmt.Fprintf(w, "> `%s`\n\n", msg.Content)
		case domain.RoleSystem:
			fmt.Fprintf(w, "> %s\n\n", msg.Content)
		}
	}

	return nil
}

// ExportSession reads a session transcript at the export cap and writes it
// to outPath as Markdown
func (e *Explorer) ExportSession(session domain.Session, outPath string) error {
	messages, err := e.Transcript(session, claude.ExportTranscriptLimit)
	if err != nil {
		return fmt.Errorf("failed to read transcript: %w", err)
	}

	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if err := WriteMarkdown(file, session, messages); err != nil {
		return err
	}

	logging.Logger.Info("Exported session", "session_id", session.SessionID, "path", outPath, "messages", len(messages))
	return nil
}
