package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clx/domain"
)

func TestSessionTable_RowsFromSessions(t *testing.T) {
	st := NewSessionTable()
	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	st.SetData(sessionsLoadedMsg{sessions: []domain.Session{{
		SessionID:          "0123456789abcdef",
		ProjectDisplayName: "myapp",
		FirstActivity:      first,
		LastActivity:       first.Add(5 * time.Minute),
		PromptCount:        3,
		TranscriptSize:     2048,
	}}})

	rows := st.table.Rows()
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 6)
	assert.Equal(t, "0123456789ab", rows[0][0])
	assert.Equal(t, "myapp", rows[0][1])
	assert.Equal(t, "2024-03-01 10:05", rows[0][2])
	assert.Equal(t, "5m", rows[0][3])
	assert.Equal(t, "3", rows[0][4])
	assert.Equal(t, "2KB", rows[0][5])
}

func TestSessionTable_SelectedReturnsFullSession(t *testing.T) {
	st := NewSessionTable()
	st.SetData(sessionsLoadedMsg{sessions: []domain.Session{
		{SessionID: "sess-a"},
		{SessionID: "sess-b"},
	}})

	selected, ok := st.Selected()

	require.True(t, ok)
	assert.Equal(t, "sess-a", selected.SessionID)
}

func TestSessionTable_SelectedOnEmptyTable(t *testing.T) {
	st := NewSessionTable()

	_, ok := st.Selected()

	assert.False(t, ok)
}
