package domain

// ClaudeSettings summarizes <claudeDir>/settings.json for display
type ClaudeSettings struct {
	Model            string
	HookCounts       map[string]int // hook event -> configured hook count
	PermissionsAllow []string
	PermissionsDeny  []string
}
