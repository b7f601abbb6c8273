package claude

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStats(t *testing.T, claudeDir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(claudeDir, "stats-cache.json"), []byte(content), 0644))
}

func TestReadStats_MissingFile(t *testing.T) {
	reader := NewReaderWithDir(t.TempDir(), "/home/u")

	snapshot, err := reader.ReadStats()

	require.NoError(t, err)
	assert.Empty(t, snapshot.Daily)
	assert.Empty(t, snapshot.ModelUsage)
}

func TestReadStats_MalformedDocument(t *testing.T) {
	claudeDir := t.TempDir()
	writeStats(t, claudeDir, "{not json")
	reader := NewReaderWithDir(claudeDir, "/home/u")

	snapshot, err := reader.ReadStats()

	require.NoError(t, err)
	assert.Empty(t, snapshot.Daily)
}

func TestReadStats_DailySortedAscending(t *testing.T) {
	claudeDir := t.TempDir()
	writeStats(t, claudeDir, `{"dailyActivity":[
		{"date":"2024-03-02","messageCount":5,"sessionCount":1,"toolCallCount":2},
		{"date":"2024-03-01","messageCount":3,"sessionCount":1,"toolCallCount":1}
	]}`)
	reader := NewReaderWithDir(claudeDir, "/home/u")

	snapshot, err := reader.ReadStats()

	require.NoError(t, err)
	require.Len(t, snapshot.Daily, 2)
	assert.Equal(t, "2024-03-01", snapshot.Daily[0].Date)
	assert.Equal(t, "2024-03-02", snapshot.Daily[1].Date)
	assert.Equal(t, 5, snapshot.Daily[1].MessageCount)
}

func TestReadStats_ModelUsageSortedByTotalTokens(t *testing.T) {
	claudeDir := t.TempDir()
	writeStats(t, claudeDir, `{"modelUsage":{
		"small-model":{"inputTokens":10,"outputTokens":5},
		"big-model":{"inputTokens":1000,"outputTokens":500,"cacheReadInputTokens":200,"cacheCreationInputTokens":100}
	}}`)
	reader := NewReaderWithDir(claudeDir, "/home/u")

	snapshot, err := reader.ReadStats()

	require.NoError(t, err)
	require.Len(t, snapshot.ModelUsage, 2)
	assert.Equal(t, "big-model", snapshot.ModelUsage[0].ModelID)
	assert.Equal(t, int64(1800), snapshot.ModelUsage[0].TotalTokens())
	assert.Equal(t, "small-model", snapshot.ModelUsage[1].ModelID)
}

func TestReadStats_HourCountsFiltered(t *testing.T) {
	claudeDir := t.TempDir()
	writeStats(t, claudeDir, `{"hourCounts":{"9":12,"23":3,"24":99,"-1":5,"bogus":7,"14":0}}`)
	reader := NewReaderWithDir(claudeDir, "/home/u")

	snapshot, err := reader.ReadStats()

	require.NoError(t, err)
	assert.Equal(t, map[int]int{9: 12, 23: 3}, snapshot.HourCounts)
}

func TestReadStats_DurationAsMilliseconds(t *testing.T) {
	claudeDir := t.TempDir()
	// 2h03m in milliseconds
	writeStats(t, claudeDir, `{"longestSession":{"sessionId":"s1","duration":7380000,"messageCount":42}}`)
	reader := NewReaderWithDir(claudeDir, "/home/u")

	snapshot, err := reader.ReadStats()

	require.NoError(t, err)
	assert.Equal(t, "s1", snapshot.Longest.SessionID)
	assert.Equal(t, "2h03m", snapshot.Longest.Duration)
	assert.Equal(t, 42, snapshot.Longest.MessageCount)
}

func TestReadStats_DurationAsString(t *testing.T) {
	claudeDir := t.TempDir()
	writeStats(t, claudeDir, `{"longestSession":{"sessionId":"s1","duration":"45m","messageCount":10}}`)
	reader := NewReaderWithDir(claudeDir, "/home/u")

	snapshot, err := reader.ReadStats()

	require.NoError(t, err)
	assert.Equal(t, "45m", snapshot.Longest.Duration)
}

func TestReadStats_DurationUnderAnHour(t *testing.T) {
	claudeDir := t.TempDir()
	writeStats(t, claudeDir, `{"longestSession":{"sessionId":"s1","duration":300000,"messageCount":3}}`)
	reader := NewReaderWithDir(claudeDir, "/home/u")

	snapshot, err := reader.ReadStats()

	require.NoError(t, err)
	assert.Equal(t, "5m", snapshot.Longest.Duration)
}
