package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// SettingsCmd shows Claude Code's configuration and per-project settings
type SettingsCmd struct{}

// Run executes the settings command
func (s *SettingsCmd) Run(cli *CLI) error {
	settings, err := cli.Container.Explorer.ClaudeSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	fmt.Println("Claude Code settings")
	fmt.Println(strings.Repeat("─", 60))
	if settings.Model != "" {
		fmt.Printf("  Default model:  %s\n", settings.Model)
	}
	if len(settings.HookCounts) > 0 {
		fmt.Println("  Hooks configured:")
		events := make([]string, 0, len(settings.HookCounts))
		for event := range settings.HookCounts {
			events = append(events, event)
		}
		sort.Strings(events)
		for _, event := range events {
			fmt.Printf("    %-20s %d hook(s)\n", event, settings.HookCounts[event])
		}
	}
	if len(settings.PermissionsAllow) > 0 || len(settings.PermissionsDeny) > 0 {
		fmt.Printf("  Permissions:    %d allowed, %d denied\n",
			len(settings.PermissionsAllow), len(settings.PermissionsDeny))
	}
	fmt.Println()

	projects, err := cli.Container.Explorer.ProjectSettings()
	if err != nil {
		return fmt.Errorf("failed to read project settings: %w", err)
	}

	if len(projects) == 0 {
		fmt.Println("No per-project settings found.")
		return nil
	}

	fmt.Println("Per-project settings")
	fmt.Println(strings.Repeat("─", 60))
	for _, project := range projects {
		fmt.Printf("  %s\n", project.Path)
		if project.LastCost > 0 {
			fmt.Printf("    Last cost:     $%.4f\n", project.LastCost)
		}
		if project.LastDuration > 0 {
			fmt.Printf("    Last duration: %s\n", (time.Duration(project.LastDuration) * time.Millisecond).Round(time.Second))
		}
		if len(project.MCPServers) > 0 {
			fmt.Printf("    MCP servers:   %s\n", strings.Join(project.MCPServers, ", "))
		}
		if len(project.AllowedTools) > 0 {
			fmt.Printf("    Allowed tools: %d\n", len(project.AllowedTools))
		}
		fmt.Printf("    Trust accepted: %t\n", project.TrustAccepted)
	}
	return nil
}
