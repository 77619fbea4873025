// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
	"github.com/thenoetrevino/kanban/internal/store"
	"github.com/thenoetrevino/kanban/internal/types"
)

// SequentialIDs returns a generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) types.IDGenerator {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

// DiscardLogger drops everything
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetupTestApp creates an App over in-memory storage with deterministic ids.
// The storage is returned so tests can inspect the persisted record.
func SetupTestApp(t *testing.T) (*app.App, *storage.Memory) {
	t.Helper()

	mem := storage.NewMemory()
	cfg := config.Default()
	cfg.Storage.Backend = storage.BackendMemory

	a, err := app.New(context.Background(), cfg,
		app.WithStorage(mem),
		app.WithIDGenerator(SequentialIDs("id")),
		app.WithLogger(DiscardLogger()),
	)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() {
		if err := a.Close(); err != nil {
			t.Logf("Warning: app close error during cleanup: %v", err)
		}
	})

	return a, mem
}

// CreateTestBoard adds a board with the given columns and returns it
func CreateTestBoard(t *testing.T, s *store.Store, title string, columns ...string) models.Board {
	t.Helper()

	board, ok := s.AddBoard(title)
	if !ok {
		t.Fatalf("Failed to create board %q", title)
	}
	for _, col := range columns {
		if _, ok := s.AddColumnToBoard(board.ID, col); !ok {
			t.Fatalf("Failed to create column %q", col)
		}
	}
	board, _ = s.GetBoardByID(board.ID)
	return board
}

// CreateTestCard adds a card and returns it
func CreateTestCard(t *testing.T, s *store.Store, boardID types.BoardID, columnID types.ColumnID, title string) models.Card {
	t.Helper()

	card, ok := s.AddCardToColumn(boardID, columnID, title)
	if !ok {
		t.Fatalf("Failed to create card %q", title)
	}
	return card
}

// PersistedBoards decodes whatever the store last wrote to mem
func PersistedBoards(t *testing.T, mem *storage.Memory) []models.Board {
	t.Helper()

	data, err := mem.Load(context.Background(), storage.DefaultKey)
	if err != nil {
		t.Fatalf("Failed to load persisted record: %v", err)
	}
	boards, err := storage.DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("Failed to decode persisted record: %v", err)
	}
	return boards
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
