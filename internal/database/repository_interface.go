package database

import "context"

// KeyValueRepository defines persistence for named records
type KeyValueRepository interface {
	// Get returns sql.ErrNoRows when the key does not exist
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Compile-time verification that *Repository implements KeyValueRepository
var _ KeyValueRepository = (*Repository)(nil)
