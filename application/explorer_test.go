package application

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clx/domain"
)

// fakeSource is an in-memory dataSource that counts reads per method
type fakeSource struct {
	mu       sync.Mutex
	calls    map[string]int
	prompts  []domain.Prompt
	projects []domain.Project
	snapshot domain.StatsSnapshot
	plans    []domain.Plan
}

func newFakeSource() *fakeSource {
	return &fakeSource{calls: make(map[string]int)}
}

func (f *fakeSource) count(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
}

func (f *fakeSource) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeSource) ReadHistory() ([]domain.Prompt, error) {
	f.count("ReadHistory")
	return f.prompts, nil
}

func (f *fakeSource) ReadStats() (domain.StatsSnapshot, error) {
	f.count("ReadStats")
	return f.snapshot, nil
}

func (f *fakeSource) DiscoverProjects() ([]domain.Project, error) {
	f.count("DiscoverProjects")
	return f.projects, nil
}

func (f *fakeSource) ReadTranscript(path string, limit int) ([]domain.Message, error) {
	f.count("ReadTranscript")
	return nil, nil
}

func (f *fakeSource) ListPlans() ([]domain.Plan, error) {
	f.count("ListPlans")
	return f.plans, nil
}

func (f *fakeSource) ReadPlanContent(plan domain.Plan) string { return plan.Content }

func (f *fakeSource) ListTodos() ([]domain.SessionTodos, error) { return nil, nil }

func (f *fakeSource) ListFileHistory() (map[string][]string, error) { return nil, nil }

func (f *fakeSource) ReadProjectSettings() ([]domain.ProjectSettings, error) { return nil, nil }

func (f *fakeSource) ReadClaudeSettings() (domain.ClaudeSettings, error) {
	return domain.ClaudeSettings{}, nil
}

func TestExplorer_HistoryIsCached(t *testing.T) {
	source := newFakeSource()
	source.prompts = []domain.Prompt{{Text: "hi", SessionID: "s1"}}
	explorer := NewExplorer(source, NewCache())

	first, err := explorer.History()
	require.NoError(t, err)
	second, err := explorer.History()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.callCount("ReadHistory"))
}

func TestExplorer_RefreshForcesReload(t *testing.T) {
	source := newFakeSource()
	explorer := NewExplorer(source, NewCache())

	_, err := explorer.History()
	require.NoError(t, err)
	explorer.Refresh(KeyHistory)
	_, err = explorer.History()
	require.NoError(t, err)

	assert.Equal(t, 2, source.callCount("ReadHistory"))
}

func TestExplorer_SessionsReconcileHistoryAndProjects(t *testing.T) {
	when := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	source := newFakeSource()
	source.prompts = []domain.Prompt{
		{Text: "build it", Timestamp: when, SessionID: "s1"},
	}
	source.projects = []domain.Project{{
		DisplayName: "myapp",
		Sessions: []domain.Session{
			{SessionID: "s1", ProjectDisplayName: "myapp", LastActivity: when.Add(-time.Hour)},
		},
	}}
	explorer := NewExplorer(source, NewCache())

	sessions, err := explorer.Sessions()

	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 1, sessions[0].PromptCount)
	assert.Equal(t, when, sessions[0].LastActivity)
	// the dependency keys were populated through the same cache
	assert.Equal(t, 1, source.callCount("ReadHistory"))
	assert.Equal(t, 1, source.callCount("DiscoverProjects"))
}

func TestExplorer_InvalidationDoesNotCascade(t *testing.T) {
	source := newFakeSource()
	source.projects = []domain.Project{{
		Sessions: []domain.Session{{SessionID: "s1"}},
	}}
	explorer := NewExplorer(source, NewCache())

	_, err := explorer.Sessions()
	require.NoError(t, err)

	// Dropping projects alone leaves the derived sessions view untouched
	explorer.Refresh(KeyProjects)
	_, err = explorer.Sessions()
	require.NoError(t, err)
	assert.Equal(t, 1, source.callCount("DiscoverProjects"))

	// Dropping sessions too makes the next read recompute from projects
	explorer.Refresh(KeySessions)
	_, err = explorer.Sessions()
	require.NoError(t, err)
	assert.Equal(t, 2, source.callCount("DiscoverProjects"))
}

func TestExplorer_RefreshAllDropsEverything(t *testing.T) {
	source := newFakeSource()
	explorer := NewExplorer(source, NewCache())

	_, err := explorer.History()
	require.NoError(t, err)
	_, err = explorer.Stats()
	require.NoError(t, err)

	explorer.RefreshAll()

	_, err = explorer.History()
	require.NoError(t, err)
	_, err = explorer.Stats()
	require.NoError(t, err)

	assert.Equal(t, 2, source.callCount("ReadHistory"))
	assert.Equal(t, 2, source.callCount("ReadStats"))
}

func TestExplorer_ConcurrentReadsCollapse(t *testing.T) {
	source := newFakeSource()
	explorer := NewExplorer(source, NewCache())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := explorer.History()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, source.callCount("ReadHistory"))
}

func TestExplorer_GlobalStatsAggregates(t *testing.T) {
	source := newFakeSource()
	source.prompts = []domain.Prompt{{Text: "a"}, {Text: "b"}}
	source.snapshot = domain.StatsSnapshot{
		Daily: []domain.DailyStat{
			{Date: "2024-03-01", MessageCount: 10, SessionCount: 2, ToolCallCount: 4},
		},
	}
	source.projects = []domain.Project{
		{SessionCount: 1, TotalSize: 2048, Sessions: []domain.Session{{SessionID: "s1"}}},
		{SessionCount: 0},
	}
	explorer := NewExplorer(source, NewCache())

	stats, err := explorer.GlobalStats()

	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalMessages)
	assert.Equal(t, 2, stats.TotalPrompts)
	assert.Equal(t, 1, stats.TotalProjects)
	assert.Equal(t, int64(2048), stats.TotalDataBytes)
	assert.Equal(t, "2024-03-01", stats.FirstDate)
}
