package storage

import (
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/models"
	"gopkg.in/yaml.v3"
)

// Snapshot is the persisted layout: {"boards": [...]}
type Snapshot struct {
	Boards []models.Board `json:"boards" yaml:"boards"`
}

// EncodeSnapshot serializes the board list to the persisted JSON layout
func EncodeSnapshot(boards []models.Board) ([]byte, error) {
	data, err := json.Marshal(Snapshot{Boards: normalize(boards)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses the persisted JSON layout. Empty input and a missing
// or null boards field both decode to an empty list.
func DecodeSnapshot(data []byte) ([]models.Board, error) {
	if len(data) == 0 {
		return []models.Board{}, nil
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return normalize(snap.Boards), nil
}

// EncodeSnapshotYAML is the export form of the snapshot
func EncodeSnapshotYAML(boards []models.Board) ([]byte, error) {
	data, err := yaml.Marshal(Snapshot{Boards: normalize(boards)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode yaml snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshotYAML parses an exported YAML snapshot
func DecodeSnapshotYAML(data []byte) ([]models.Board, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode yaml snapshot: %w", err)
	}
	return normalize(snap.Boards), nil
}

// normalize deep-copies the list; Clone allocates every slice, so nil
// columns and cards come back as empty lists and encode as [].
func normalize(boards []models.Board) []models.Board {
	return models.CloneBoards(boards)
}
