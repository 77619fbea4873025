package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/storage"
)

func TestNew_WithMemoryBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Backend = storage.BackendMemory

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	assert.NotNil(t, app.Store)
	assert.NotNil(t, app.Events)
	assert.Empty(t, app.Store.Boards())
}

func TestNew_RehydratesFromSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Storage.DataDir = t.TempDir()

	first, err := New(ctx, cfg)
	require.NoError(t, err)
	board, ok := first.Store.AddBoard("Sprint 1")
	require.True(t, ok)
	require.NoError(t, first.Close())

	second, err := New(ctx, cfg)
	require.NoError(t, err)
	defer second.Close()

	got, ok := second.Store.GetBoardByID(board.ID)
	require.True(t, ok)
	assert.Equal(t, "Sprint 1", got.Title)
}

func TestNew_StoreEventsReachBus(t *testing.T) {
	app, err := New(context.Background(), config.Default(), WithStorage(storage.NewMemory()))
	require.NoError(t, err)
	defer app.Close()

	ch, cancel := app.Events.Subscribe(4)
	defer cancel()

	app.Store.AddBoard("B")

	select {
	case ev := <-ch:
		assert.NotZero(t, ev.SequenceID)
	default:
		t.Fatal("expected a change event")
	}
}

func TestNew_CorruptSnapshotFails(t *testing.T) {
	mem := storage.NewMemory()
	require.NoError(t, mem.Save(context.Background(), storage.DefaultKey, []byte("nope")))

	_, err := New(context.Background(), config.Default(), WithStorage(mem))
	assert.Error(t, err)
}

func TestNew_UnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Backend = "tape"

	_, err := New(context.Background(), cfg)
	assert.ErrorIs(t, err, storage.ErrUnknownBackend)
}

func TestClose(t *testing.T) {
	app, err := New(context.Background(), config.Default(), WithStorage(storage.NewMemory()))
	require.NoError(t, err)
	assert.NoError(t, app.Close())
}
