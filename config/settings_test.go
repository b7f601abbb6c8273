package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_MissingFile(t *testing.T) {
	settings, err := LoadFrom(filepath.Join(t.TempDir(), "settings.json"))

	require.NoError(t, err)
	assert.Empty(t, settings.ClaudeDir)
	assert.Nil(t, settings.Debug)
	assert.Nil(t, settings.TranscriptLimit)
}

func TestLoadFrom_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	content := `{"claude_dir":"/data/.claude","debug":true,"deep_search_max_results":25,"transcript_limit":800}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "/data/.claude", settings.ClaudeDir)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.DeepSearchMaxResults)
	assert.Equal(t, 25, *settings.DeepSearchMaxResults)
	require.NotNil(t, settings.TranscriptLimit)
	assert.Equal(t, 800, *settings.TranscriptLimit)
}

func TestLoadFrom_MalformedFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadFrom(path)

	assert.Error(t, err)
}
