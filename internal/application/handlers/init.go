package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/movement-core/internal/domain/entities"
	"github.com/ersonp/movement-core/internal/domain/ports"
	"github.com/ersonp/movement-core/internal/infrastructure/config"
)

// StoreOpener opens the snapshot store configured for basePath.
type StoreOpener func(cfg *config.Config, basePath string) (ports.SnapshotStore, error)

// InitHandler handles workspace initialization.
type InitHandler struct {
	openStore StoreOpener
}

// NewInitHandler creates a new init handler.
func NewInitHandler(openStore StoreOpener) *InitHandler {
	return &InitHandler{
		openStore: openStore,
	}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath   string
	DatabasePath string
	Snapshot     string
}

// Handle writes the default config, creates the store schema and an empty
// default snapshot.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("movement already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := h.openStore(cfg, basePath)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot store: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	_, err = store.LoadSnapshot(ctx, DefaultSnapshot)
	switch {
	case errors.Is(err, ports.ErrSnapshotNotFound):
		if err := store.SaveSnapshot(ctx, DefaultSnapshot, entities.NewDataset()); err != nil {
			return nil, fmt.Errorf("creating default snapshot: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("checking default snapshot: %w", err)
	}

	return &InitResult{
		ConfigPath:   config.ConfigFilePath(basePath),
		DatabasePath: cfg.DatabasePath(basePath),
		Snapshot:     DefaultSnapshot,
	}, nil
}
