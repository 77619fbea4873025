package app

import (
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/storage"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	storage storage.Storage
	logger  *slog.Logger
	newID   types.IDGenerator
}

// WithStorage uses st instead of opening the configured backend.
// The App takes ownership and closes it.
func WithStorage(st storage.Storage) Option {
	return func(cfg *appConfig) {
		cfg.storage = st
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithIDGenerator makes generated ids deterministic (tests)
func WithIDGenerator(gen types.IDGenerator) Option {
	return func(cfg *appConfig) {
		cfg.newID = gen
	}
}
