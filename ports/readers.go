package ports

import "clx/domain"

// HistoryReader reads the global prompt history
type HistoryReader interface {
	ReadHistory() ([]domain.Prompt, error)
}

// StatsReader reads the daily stats cache document
type StatsReader interface {
	ReadStats() (domain.StatsSnapshot, error)
}

// ProjectScanner discovers projects and their session stubs from the
// projects directory
type ProjectScanner interface {
	DiscoverProjects() ([]domain.Project, error)
}

// TranscriptReader streams a session transcript into normalized messages,
// stopping once limit messages have been produced
type TranscriptReader interface {
	ReadTranscript(path string, limit int) ([]domain.Message, error)
}

// PlanReader lists plan documents and lazily reads their content
type PlanReader interface {
	ListPlans() ([]domain.Plan, error)
	ReadPlanContent(plan domain.Plan) string
}

// TodoReader lists per-session todo lists
type TodoReader interface {
	ListTodos() ([]domain.SessionTodos, error)
}

// FileHistoryReader maps session ids to the relative paths recorded under
// the file-history directory
type FileHistoryReader interface {
	ListFileHistory() (map[string][]string, error)
}

// SettingsReader reads Claude Code's own configuration for display
type SettingsReader interface {
	ReadProjectSettings() ([]domain.ProjectSettings, error)
	ReadClaudeSettings() (domain.ClaudeSettings, error)
}
