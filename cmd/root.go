package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"clx/config"
	"clx/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	ClaudeDir   string           `help:"Claude data directory (defaults to CLAUDE_CONFIG_DIR or ~/.claude)"`

	Run       RunCmd       `cmd:"" help:"Start the interactive explorer TUI (default)" default:"1"`
	Dashboard DashboardCmd `cmd:"" help:"Print the activity dashboard"`
	Sessions  SessionsCmd  `cmd:"" help:"List and inspect sessions"`
	Search    SearchCmd    `cmd:"" help:"Search prompts, or transcripts with --deep"`
	Stats     StatsCmd     `cmd:"" help:"Show daily activity statistics"`
	Plans     PlansCmd     `cmd:"" help:"List and show plan documents"`
	Todos     TodosCmd     `cmd:"" help:"Show session todo lists"`
	Settings  SettingsCmd  `cmd:"" help:"Show Claude Code configuration"`
	Export    ExportCmd    `cmd:"" help:"Export a session transcript to Markdown"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct before parsing
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
// with precedence: CLI flags > env vars > settings.json > defaults
func (c *CLI) AfterApply() error {
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("CLX_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("CLX_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.ClaudeDir == "" {
			c.ClaudeDir = c.settings.ClaudeDir
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables after initialization so child processes
	// inherit debug settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("CLX_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("CLX_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("CLX_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container after logging is initialized
	container, err := NewContainer(c.ClaudeDir, c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}
