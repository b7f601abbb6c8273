package paths

import (
	"os"
	"path/filepath"
)

// ClaudeDir returns the Claude data directory.
// Checks CLAUDE_CONFIG_DIR environment variable first, then falls back to ~/.claude
func ClaudeDir() string {
	if envDir := os.Getenv("CLAUDE_CONFIG_DIR"); envDir != "" {
		return ExpandPath(envDir)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".claude"
	}
	return filepath.Join(homeDir, ".claude")
}

// ClxHome returns CLX_HOME or ~/.clx default
func ClxHome() string {
	clxHome := os.Getenv("CLX_HOME")
	if clxHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".clx"
		}
		return filepath.Join(homeDir, ".clx")
	}
	return ExpandPath(clxHome)
}

// SettingsPath returns $CLX_HOME/settings.json
func SettingsPath() string {
	return filepath.Join(ClxHome(), "settings.json")
}

// HistoryPath returns <claudeDir>/history.jsonl
func HistoryPath(claudeDir string) string {
	return filepath.Join(claudeDir, "history.jsonl")
}

// StatsCachePath returns <claudeDir>/stats-cache.json
func StatsCachePath(claudeDir string) string {
	return filepath.Join(claudeDir, "stats-cache.json")
}

// ProjectsDir returns <claudeDir>/projects
func ProjectsDir(claudeDir string) string {
	return filepath.Join(claudeDir, "projects")
}

// PlansDir returns <claudeDir>/plans
func PlansDir(claudeDir string) string {
	return filepath.Join(claudeDir, "plans")
}

// TodosDir returns <claudeDir>/todos
func TodosDir(claudeDir string) string {
	return filepath.Join(claudeDir, "todos")
}

// FileHistoryDir returns <claudeDir>/file-history
func FileHistoryDir(claudeDir string) string {
	return filepath.Join(claudeDir, "file-history")
}

// SettingsJSONPath returns <claudeDir>/settings.json (Claude Code's own settings)
func SettingsJSONPath(claudeDir string) string {
	return filepath.Join(claudeDir, "settings.json")
}

// GlobalConfigPath returns ~/.claude.json, the user-level Claude config holding
// per-project settings. It lives outside the Claude data directory.
func GlobalConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".claude.json"
	}
	return filepath.Join(homeDir, ".claude.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
