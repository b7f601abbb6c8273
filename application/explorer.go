package application

import (
	"clx/domain"
	"clx/ports"
)

// dataSource is the full read surface the Explorer consumes
type dataSource interface {
	ports.HistoryReader
	ports.StatsReader
	ports.ProjectScanner
	ports.TranscriptReader
	ports.PlanReader
	ports.TodoReader
	ports.FileHistoryReader
	ports.SettingsReader
}

// Explorer is the read API over the Claude data directory. Whole-dataset
// views (history, stats, projects, sessions, plans, global stats) are served
// through the cache; parameterized operations (transcripts, search, todos)
// hit the decoders directly.
type Explorer struct {
	source dataSource
	cache  *Cache
}

// NewExplorer creates an Explorer over the given source and cache
func NewExplorer(source dataSource, cache *Cache) *Explorer {
	return &Explorer{
		source: source,
		cache:  cache,
	}
}

// History returns all prompts, newest first (cached)
func (e *Explorer) History() ([]domain.Prompt, error) {
	return cached(e.cache, KeyHistory, e.source.ReadHistory)
}

// Stats returns the decoded daily stats snapshot (cached)
func (e *Explorer) Stats() (domain.StatsSnapshot, error) {
	return cached(e.cache, KeyStats, e.source.ReadStats)
}

// Projects returns all projects with their session stubs (cached)
func (e *Explorer) Projects() ([]domain.Project, error) {
	return cached(e.cache, KeyProjects, e.source.DiscoverProjects)
}

// Sessions returns the reconciled session view across all projects, newest
// first (cached). The reconciliation always pulls its own history and
// project dependencies through the cache, so a freshly invalidated
// "sessions" key recomputes from whatever those keys currently hold.
func (e *Explorer) Sessions() ([]domain.Session, error) {
	return cached(e.cache, KeySessions, func() ([]domain.Session, error) {
		prompts, err := e.History()
		if err != nil {
			return nil, err
		}
		projects, err := e.Projects()
		if err != nil {
			return nil, err
		}
		return ReconcileSessions(prompts, projects), nil
	})
}

// Plans returns all plan documents, newest first (cached)
func (e *Explorer) Plans() ([]domain.Plan, error) {
	return cached(e.cache, KeyPlans, e.source.ListPlans)
}

// PlanContent reads a plan's full content (not cached)
func (e *Explorer) PlanContent(plan domain.Plan) string {
	return e.source.ReadPlanContent(plan)
}

// GlobalStats returns the dashboard aggregate (cached)
func (e *Explorer) GlobalStats() (domain.GlobalStats, error) {
	return cached(e.cache, KeyGlobalStats, func() (domain.GlobalStats, error) {
		snapshot, err := e.Stats()
		if err != nil {
			return domain.GlobalStats{}, err
		}
		prompts, err := e.History()
		if err != nil {
			return domain.GlobalStats{}, err
		}
		projects, err := e.Projects()
		if err != nil {
			return domain.GlobalStats{}, err
		}
		return ComputeGlobalStats(snapshot, prompts, projects), nil
	})
}

// Transcript reads one session transcript, capped at limit messages
func (e *Explorer) Transcript(session domain.Session, limit int) ([]domain.Message, error) {
	return e.source.ReadTranscript(session.TranscriptPath, limit)
}

// SearchPrompts runs the fast prompt-only search over the cached history
func (e *Explorer) SearchPrompts(query string) ([]domain.Prompt, error) {
	prompts, err := e.History()
	if err != nil {
		return nil, err
	}
	return SearchPrompts(prompts, query), nil
}

// DeepSearch runs the full-transcript search across all sessions
func (e *Explorer) DeepSearch(query string, maxResults int) ([]domain.SearchResult, error) {
	sessions, err := e.Sessions()
	if err != nil {
		return nil, err
	}
	return DeepSearch(sessions, query, maxResults), nil
}

// Todos lists all session todo lists (not cached; the set is small)
func (e *Explorer) Todos() ([]domain.SessionTodos, error) {
	return e.source.ListTodos()
}

// FileHistory maps session ids to recorded file paths (not cached)
func (e *Explorer) FileHistory() (map[string][]string, error) {
	return e.source.ListFileHistory()
}

// ProjectSettings lists per-project entries from the user-level config
func (e *Explorer) ProjectSettings() ([]domain.ProjectSettings, error) {
	return e.source.ReadProjectSettings()
}

// ClaudeSettings summarizes Claude Code's own settings file
func (e *Explorer) ClaudeSettings() (domain.ClaudeSettings, error) {
	return e.source.ReadClaudeSettings()
}

// Refresh drops one cached dataset
func (e *Explorer) Refresh(key CacheKey) {
	e.cache.Invalidate(key)
}

// RefreshAll drops every cached dataset
func (e *Explorer) RefreshAll() {
	e.cache.InvalidateAll()
}
