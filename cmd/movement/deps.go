package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ersonp/movement-core/internal/application/handlers"
	"github.com/ersonp/movement-core/internal/domain/ports"
	"github.com/ersonp/movement-core/internal/infrastructure/config"
	"github.com/ersonp/movement-core/internal/infrastructure/logger"
	"github.com/ersonp/movement-core/internal/infrastructure/parsers"
	"github.com/ersonp/movement-core/internal/infrastructure/relationaldb/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - the store is internal.
type Deps struct {
	Config     *config.Config
	Vocabulary parsers.Vocabulary
	Log        *logger.Logger
	// Snapshot is the sanitized --snapshot value.
	Snapshot string

	Snapshots   *handlers.SnapshotHandler
	Records     *handlers.RecordHandler
	Views       *handlers.ViewHandler
	Comparisons *handlers.ComparisonHandler
	Templates   *handlers.TemplateHandler
}

// withDeps loads config, opens the snapshot store and builds the handlers,
// then calls the provided function. It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	vocab, err := parsers.ParseVocabulary(cfg.Vocabulary)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	store, err := openStore(cfg, cwd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	log = log.With("snapshot", config.SanitizeSnapshotName(globalSnapshot))
	deps := &Deps{
		Config:      cfg,
		Vocabulary:  vocab,
		Log:         log,
		Snapshot:    config.SanitizeSnapshotName(globalSnapshot),
		Snapshots:   handlers.NewSnapshotHandler(store, vocab, log),
		Records:     handlers.NewRecordHandler(store, vocab, log),
		Views:       handlers.NewViewHandler(store, cfg.Views.TopLimit, log),
		Comparisons: handlers.NewComparisonHandler(store, log),
		Templates:   handlers.NewTemplateHandler(store, log),
	}

	return fn(deps)
}

// openStore opens the SQLite snapshot store configured for basePath.
func openStore(cfg *config.Config, basePath string) (ports.SnapshotStore, error) {
	repo, err := sqlite.NewRepository(config.SQLiteConfig{Path: cfg.DatabasePath(basePath)})
	if err != nil {
		return nil, fmt.Errorf("creating sqlite repository: %w", err)
	}
	return repo, nil
}
