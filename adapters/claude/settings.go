package claude

import (
	"encoding/json"
	"os"
	"sort"

	"clx/domain"
	"clx/logging"
	"clx/paths"
)

// globalConfig mirrors the per-project portion of ~/.claude.json
type globalConfig struct {
	Projects map[string]struct {
		LastCost               float64                    `json:"lastCost"`
		LastDuration           int64                      `json:"lastDuration"`
		MCPServers             map[string]json.RawMessage `json:"mcpServers"`
		AllowedTools           []string                   `json:"allowedTools"`
		HasTrustDialogAccepted bool                       `json:"hasTrustDialogAccepted"`
	} `json:"projects"`
}

// ReadProjectSettings parses the per-project entries of the user-level
// Claude config file, sorted by project path
func (r *Reader) ReadProjectSettings() ([]domain.ProjectSettings, error) {
	data, err := os.ReadFile(r.globalConfigPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to read global config", "path", r.globalConfigPath, "error", err)
		}
		return nil, nil
	}

	var config globalConfig
	if err := json.Unmarshal(data, &config); err != nil {
		logging.Logger.Debug("Malformed global config", "path", r.globalConfigPath, "error", err)
		return nil, nil
	}

	var settings []domain.ProjectSettings
	for path, entry := range config.Projects {
		var servers []string
		for name := range entry.MCPServers {
			servers = append(servers, name)
		}
		sort.Strings(servers)

		settings = append(settings, domain.ProjectSettings{
			Path:          path,
			LastCost:      entry.LastCost,
			LastDuration:  entry.LastDuration,
			MCPServers:    servers,
			AllowedTools:  entry.AllowedTools,
			TrustAccepted: entry.HasTrustDialogAccepted,
		})
	}

	sort.SliceStable(settings, func(i, j int) bool {
		return settings[i].Path < settings[j].Path
	})

	return settings, nil
}

// claudeSettingsDoc mirrors <claudeDir>/settings.json
type claudeSettingsDoc struct {
	Model string `json:"model"`
	Hooks map[string][]struct {
		Hooks []json.RawMessage `json:"hooks"`
	} `json:"hooks"`
	Permissions struct {
		Allow []string `json:"allow"`
		Deny  []string `json:"deny"`
	} `json:"permissions"`
}

// ReadClaudeSettings summarizes Claude Code's own settings file for display
func (r *Reader) ReadClaudeSettings() (domain.ClaudeSettings, error) {
	settingsPath := paths.SettingsJSONPath(r.claudeDir)

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return domain.ClaudeSettings{}, nil
	}

	var doc claudeSettingsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Logger.Debug("Malformed settings file", "path", settingsPath, "error", err)
		return domain.ClaudeSettings{}, nil
	}

	settings := domain.ClaudeSettings{
		Model:            doc.Model,
		PermissionsAllow: doc.Permissions.Allow,
		PermissionsDeny:  doc.Permissions.Deny,
	}

	for event, entries := range doc.Hooks {
		count := 0
		for _, entry := range entries {
			count += len(entry.Hooks)
		}
		if settings.HookCounts == nil {
			settings.HookCounts = make(map[string]int)
		}
		settings.HookCounts[event] = count
	}

	return settings, nil
}
