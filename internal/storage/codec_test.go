package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/models"
)

func sampleBoards() []models.Board {
	return []models.Board{
		{
			ID:    "b1",
			Title: "Sprint 1",
			Columns: []models.Column{
				{ID: "c1", Title: "To Do", Cards: []models.Card{{ID: "k1", Title: "Task A"}}},
				{ID: "c2", Title: "Done", Cards: []models.Card{}},
			},
		},
		{ID: "b2", Title: "Empty", Columns: []models.Column{}},
	}
}

func TestSnapshot_JSONLayout(t *testing.T) {
	data, err := EncodeSnapshot([]models.Board{{ID: "b1", Title: "T"}})
	require.NoError(t, err)

	assert.JSONEq(t, `{"boards":[{"id":"b1","title":"T","columns":[]}]}`, string(data))
}

func TestSnapshot_CardContentOmittedWhenEmpty(t *testing.T) {
	data, err := EncodeSnapshot(sampleBoards())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "content")
}

func TestSnapshot_JSONRoundTrip(t *testing.T) {
	data, err := EncodeSnapshot(sampleBoards())
	require.NoError(t, err)

	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, sampleBoards(), got)
}

func TestSnapshot_YAMLRoundTrip(t *testing.T) {
	data, err := EncodeSnapshotYAML(sampleBoards())
	require.NoError(t, err)

	got, err := DecodeSnapshotYAML(data)
	require.NoError(t, err)
	assert.Equal(t, sampleBoards(), got)
}

func TestDecodeSnapshot_EmptyShapes(t *testing.T) {
	for _, input := range []string{"", `{}`, `{"boards":null}`, `{"boards":[]}`} {
		got, err := DecodeSnapshot([]byte(input))
		require.NoError(t, err, input)
		assert.NotNil(t, got, input)
		assert.Empty(t, got, input)
	}
}

func TestDecodeSnapshot_NullCardsBecomeEmpty(t *testing.T) {
	got, err := DecodeSnapshot([]byte(`{"boards":[{"id":"b","title":"t","columns":[{"id":"c","title":"x","cards":null}]}]}`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotNil(t, got[0].Columns[0].Cards)
}

func TestDecodeSnapshot_Malformed(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"boards":`))
	assert.Error(t, err)
}

func TestDecodeSnapshot_KeepsReservedContent(t *testing.T) {
	got, err := DecodeSnapshot([]byte(`{"boards":[{"id":"b","title":"t","columns":[{"id":"c","title":"x","cards":[{"id":"k","title":"a","content":"notes"}]}]}]}`))
	require.NoError(t, err)
	assert.Equal(t, "notes", got[0].Columns[0].Cards[0].Content)
}
