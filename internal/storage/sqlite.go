package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/database"
)

// SQLite stores records in the local_storage table
type SQLite struct {
	repo *database.Repository
}

// NewSQLite opens the database at path (":memory:" for a private one)
func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, err
	}
	return &SQLite{repo: database.NewRepository(db)}, nil
}

func (s *SQLite) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := s.repo.Get(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", key, err)
	}
	return []byte(value), nil
}

func (s *SQLite) Save(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.repo.Put(ctx, key, string(value))
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

func (s *SQLite) Close() error {
	return s.repo.Close()
}
