package cmd

import (
	"os"

	"clx/adapters/claude"
	"clx/application"
	"clx/config"
	"clx/logging"
	"clx/paths"
)

// Container holds all dependencies for the application
type Container struct {
	Explorer *application.Explorer
	Settings *config.Settings
}

// NewContainer creates a new Container with all dependencies wired.
// claudeDirOverride takes precedence over the settings file, which takes
// precedence over the CLAUDE_CONFIG_DIR/~/.claude default.
func NewContainer(claudeDirOverride string, settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	var reader *claude.Reader
	if claudeDirOverride != "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		reader = claude.NewReaderWithDir(paths.ExpandPath(claudeDirOverride), homeDir)
	} else {
		reader = claude.NewReader()
	}

	logging.Logger.Debug("Container initialized", "claude_dir", reader.ClaudeDir())

	cache := application.NewCache()
	return &Container{
		Explorer: application.NewExplorer(reader, cache),
		Settings: settings,
	}, nil
}

// TranscriptLimit returns the configured interactive transcript cap
func (c *Container) TranscriptLimit() int {
	if c.Settings.TranscriptLimit != nil && *c.Settings.TranscriptLimit > 0 {
		return *c.Settings.TranscriptLimit
	}
	return claude.DefaultTranscriptLimit
}

// DeepSearchMaxResults returns the configured deep-search result cap
func (c *Container) DeepSearchMaxResults() int {
	if c.Settings.DeepSearchMaxResults != nil && *c.Settings.DeepSearchMaxResults > 0 {
		return *c.Settings.DeepSearchMaxResults
	}
	return application.DefaultMaxSearchResults
}
