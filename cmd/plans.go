package cmd

import (
	"fmt"
	"strings"

	"clx/domain"
)

// PlansCmd groups plan subcommands
type PlansCmd struct {
	List PlansListCmd `cmd:"" help:"List plan documents (default)" default:"1"`
	Show PlansShowCmd `cmd:"" help:"Print one plan's content"`
}

// PlansListCmd lists plan documents, newest first
type PlansListCmd struct{}

// Run executes the plans list command
func (p *PlansListCmd) Run(cli *CLI) error {
	plans, err := cli.Container.Explorer.Plans()
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}

	if len(plans) == 0 {
		fmt.Println("No plans found.")
		return nil
	}

	fmt.Printf("%-50s %-17s %8s\n", "Plan", "Modified", "Size")
	fmt.Println(strings.Repeat("─", 78))
	for _, plan := range plans {
		fmt.Printf("%-50s %-17s %8s\n",
			truncateCell(plan.Name, 50),
			formatActivity(plan.Modified),
			domain.FormatSize(plan.Size))
	}
	return nil
}

// PlansShowCmd prints one plan's Markdown content
type PlansShowCmd struct {
	Name string `arg:"" help:"Plan name (case-insensitive substring match)"`
}

// Run executes the plans show command
func (p *PlansShowCmd) Run(cli *CLI) error {
	plans, err := cli.Container.Explorer.Plans()
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}

	needle := strings.ToLower(p.Name)
	for _, plan := range plans {
		if strings.Contains(strings.ToLower(plan.Name), needle) {
			fmt.Println(cli.Container.Explorer.PlanContent(plan))
			return nil
		}
	}
	return fmt.Errorf("plan %q not found", p.Name)
}
