package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"clx/ui"
)

// RunCmd starts the interactive explorer TUI
type RunCmd struct{}

// Run executes the run command
func (r *RunCmd) Run(cli *CLI) error {
	model := ui.NewModel(cli.Container.Explorer, ui.Options{
		TranscriptLimit:      cli.Container.TranscriptLimit(),
		DeepSearchMaxResults: cli.Container.DeepSearchMaxResults(),
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
