// Package transfer holds the export and import commands, which move the
// whole board list in and out of the store as a snapshot file.
package transfer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// detectFormat picks the format from an explicit flag value or the file
// extension, defaulting to JSON.
func detectFormat(flag, path string) (string, error) {
	switch strings.ToLower(flag) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case "", "auto":
	default:
		return "", fmt.Errorf("unknown format %q (want json or yaml)", flag)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatJSON, nil
	}
}

func encode(format string, boards []models.Board) ([]byte, error) {
	if format == FormatYAML {
		return storage.EncodeSnapshotYAML(boards)
	}
	data, err := storage.EncodeSnapshot(boards)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func decode(format string, data []byte) ([]models.Board, error) {
	if format == FormatYAML {
		return storage.DecodeSnapshotYAML(data)
	}
	return storage.DecodeSnapshot(data)
}
