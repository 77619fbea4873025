package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepository_PutGet(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Put(ctx, "kanban-storage", `{"boards":[]}`); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	value, err := repo.Get(ctx, "kanban-storage")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != `{"boards":[]}` {
		t.Errorf("Expected stored value, got %q", value)
	}
}

func TestRepository_PutOverwrites(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	for _, v := range []string{"first", "second"} {
		if err := repo.Put(ctx, "k", v); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	value, err := repo.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "second" {
		t.Errorf("Expected 'second', got %q", value)
	}

	var rows int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM local_storage").Scan(&rows); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("Expected a single row after overwrite, got %d", rows)
	}
}

func TestRepository_GetMissing(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows, got %v", err)
	}
}

func TestRepository_Delete(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Put(ctx, "k", "v"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Errorf("Deleting a missing key should not fail: %v", err)
	}

	if _, err := repo.Get(ctx, "k"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected key to be gone, got %v", err)
	}
}

func TestInitDB_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)

	db, err := InitDB(ctx, path)
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	if err := NewRepository(db).Put(ctx, "k", "v"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := InitDB(ctx, path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	value, err := NewRepository(reopened).Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if value != "v" {
		t.Errorf("Expected 'v', got %q", value)
	}
}
