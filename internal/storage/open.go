package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/thenoetrevino/kanban/internal/database"
)

// Backend names accepted by Open
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Options selects and configures a backend
type Options struct {
	Backend     string
	DataDir     string // sqlite file and file backend directory live here
	RedisAddr   string
	RedisPrefix string
}

// Open creates the storage named by opts.Backend. An empty backend means
// sqlite.
func Open(ctx context.Context, opts Options) (Storage, error) {
	switch strings.ToLower(opts.Backend) {
	case "", BackendSQLite:
		return NewSQLite(ctx, database.DefaultPath(opts.DataDir))
	case BackendFile:
		return NewFile(opts.DataDir)
	case BackendRedis:
		return DialRedis(ctx, opts.RedisAddr, opts.RedisPrefix)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
