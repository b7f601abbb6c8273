package domain

// ProjectSettings holds the per-project entry from the user-level Claude
// config file (~/.claude.json)
type ProjectSettings struct {
	Path          string // project path, the map key in the source document
	LastCost      float64
	LastDuration  int64 // milliseconds
	MCPServers    []string
	AllowedTools  []string
	TrustAccepted bool
}
