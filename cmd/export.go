package cmd

import (
	"fmt"
)

// ExportCmd writes one session transcript to a Markdown file
type ExportCmd struct {
	SessionID string `arg:"" help:"Session id to export"`
	Out       string `help:"Output file path" short:"o"`
}

// Run executes the export command
func (e *ExportCmd) Run(cli *CLI) error {
	session, err := findSession(cli, e.SessionID)
	if err != nil {
		return err
	}

	outPath := e.Out
	if outPath == "" {
		outPath = fmt.Sprintf("session-%s.md", session.SessionID)
	}

	if err := cli.Container.Explorer.ExportSession(session, outPath); err != nil {
		return err
	}

	fmt.Printf("Exported session %s to %s\n", session.SessionID, outPath)
	return nil
}
