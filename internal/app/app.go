package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/storage"
	"github.com/thenoetrevino/kanban/internal/store"
)

// App holds the board store and the resources behind it.
// This is the main application container that manages their lifecycles.
type App struct {
	Config *config.Config
	Store  *store.Store
	Events *events.Bus

	storage storage.Storage
	logger  *slog.Logger
}

// New opens storage, rehydrates the store and wires the event bus.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	ac := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(ac)
	}

	st := ac.storage
	if st == nil {
		var err error
		st, err = storage.Open(ctx, cfg.StorageOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
		}
	}

	bus := events.NewBus()
	storeOpts := []store.Option{
		store.WithKey(cfg.Storage.Key),
		store.WithPublisher(bus),
		store.WithLogger(ac.logger),
	}
	if ac.newID != nil {
		storeOpts = append(storeOpts, store.WithIDGenerator(ac.newID))
	}

	s, err := store.Open(ctx, st, storeOpts...)
	if err != nil {
		if closeErr := st.Close(); closeErr != nil {
			ac.logger.Error("error closing storage", "error", closeErr)
		}
		return nil, err
	}

	ac.logger.Debug("app initialized",
		"backend", cfg.Storage.Backend,
		"key", cfg.Storage.Key,
		"boards", len(s.Boards()))

	return &App{
		Config:  cfg,
		Store:   s,
		Events:  bus,
		storage: st,
		logger:  ac.logger,
	}, nil
}

// Close stops event delivery and closes storage
func (a *App) Close() error {
	a.logger.Debug("event bus stats", a.Events.Stats().LogAttrs()...)
	if err := a.Events.Close(); err != nil {
		return err
	}
	return a.storage.Close()
}
