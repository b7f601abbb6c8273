package config

import (
	"encoding/json"
	"fmt"
	"os"

	"clx/paths"
)

// Settings represents the structure of ~/.clx/settings.json. Pointer fields
// distinguish "not configured" from an explicit value, so CLI flags and env
// vars can take precedence over the file.
type Settings struct {
	ClaudeDir            string `json:"claude_dir,omitempty"`
	Debug                *bool  `json:"debug,omitempty"`
	DeepSearchMaxResults *int   `json:"deep_search_max_results,omitempty"`
	MaxLogFiles          *int   `json:"max_log_files,omitempty"`
	TranscriptLimit      *int   `json:"transcript_limit,omitempty"`
}

// Load reads settings from ~/.clx/settings.json. A missing file yields
// empty settings; a malformed file is an error so typos don't silently
// disable configuration.
func Load() (*Settings, error) {
	return LoadFrom(paths.SettingsPath())
}

// LoadFrom reads settings from a specific path (for testing)
func LoadFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &settings, nil
}
