package cmd

import (
	"fmt"
	"strings"
)

// SearchCmd searches prompts (fast) or full transcripts (--deep)
type SearchCmd struct {
	Query []string `arg:"" help:"Search query"`
	Deep  bool     `help:"Scan full transcripts instead of prompts only"`
	Max   int      `help:"Maximum results (0 = configured default)"`
}

// Run executes the search command
func (s *SearchCmd) Run(cli *CLI) error {
	query := strings.Join(s.Query, " ")

	if s.Deep {
		return s.runDeep(cli, query)
	}
	return s.runPrompts(cli, query)
}

func (s *SearchCmd) runPrompts(cli *CLI, query string) error {
	results, err := cli.Container.Explorer.SearchPrompts(query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No results.")
		return nil
	}

	max := s.Max
	if max <= 0 {
		max = 100
	}

	shown := 0
	for _, prompt := range results {
		if shown >= max {
			break
		}
		preview := strings.Join(strings.Fields(prompt.Text), " ")
		fmt.Printf("%-17s %-24s %s\n",
			formatActivity(prompt.Timestamp),
			truncateCell(prompt.Project, 24),
			truncateCell(preview, 100))
		shown++
	}

	fmt.Printf("\n%d results (showing %d)\n", len(results), shown)
	return nil
}

func (s *SearchCmd) runDeep(cli *CLI, query string) error {
	max := s.Max
	if max <= 0 {
		max = cli.Container.DeepSearchMaxResults()
	}

	results, err := cli.Container.Explorer.DeepSearch(query, max)
	if err != nil {
		return fmt.Errorf("deep search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No results.")
		return nil
	}

	for _, result := range results {
		fmt.Printf("%-17s %-24s [%s] %s\n",
			formatActivity(result.Timestamp),
			truncateCell(result.Project, 24),
			result.Role,
			result.Snippet)
	}

	fmt.Printf("\n%d results\n", len(results))
	return nil
}
