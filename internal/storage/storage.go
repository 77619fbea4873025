// Package storage provides named-record local storage for the board store.
// A record is an opaque byte value stored under a string key and always
// overwritten in full.
package storage

import "context"

// DefaultKey is the record the board store reads and writes
const DefaultKey = "kanban-storage"

// Storage is a key/value store of named records
type Storage interface {
	// Load returns ErrNotFound when nothing is stored under key
	Load(ctx context.Context, key string) ([]byte, error)
	// Save replaces the record stored under key
	Save(ctx context.Context, key string, value []byte) error
	// Delete removes the record; deleting a missing record is not an error
	Delete(ctx context.Context, key string) error
	Close() error
}
