// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/movement-core/internal/domain/entities"
	"github.com/ersonp/movement-core/internal/domain/ports"
	"github.com/ersonp/movement-core/internal/infrastructure/logger"
)

// DefaultSnapshot is the snapshot name used when none is given.
const DefaultSnapshot = "default"

// ErrRecordNotFound is returned when a requested record is not in the snapshot.
var ErrRecordNotFound = errors.New("record not found")

// snapshots loads and commits datasets on behalf of the handlers.
type snapshots struct {
	store ports.SnapshotStore
	log   *logger.Logger
}

func newSnapshots(store ports.SnapshotStore, log *logger.Logger) snapshots {
	if log == nil {
		log = logger.Nop()
	}
	return snapshots{store: store, log: log}
}

func (s snapshots) load(ctx context.Context, name string) (*entities.Dataset, error) {
	ds, err := s.store.LoadSnapshot(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s: %w", name, err)
	}
	return ds, nil
}

// loadOrEmpty starts a missing snapshot from an empty dataset.
func (s snapshots) loadOrEmpty(ctx context.Context, name string) (*entities.Dataset, error) {
	ds, err := s.store.LoadSnapshot(ctx, name)
	if errors.Is(err, ports.ErrSnapshotNotFound) {
		return entities.NewDataset(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s: %w", name, err)
	}
	return ds, nil
}

// commit saves ds and records the mutation in the audit log.
func (s snapshots) commit(ctx context.Context, name string, ds *entities.Dataset, action, recordID string, details map[string]any) error {
	if err := s.store.SaveSnapshot(ctx, name, ds); err != nil {
		s.log.Error("saving snapshot failed", "snapshot", name, "action", action, "error", err)
		return fmt.Errorf("saving snapshot %s: %w", name, err)
	}
	if err := s.store.LogAction(ctx, name, action, recordID, details); err != nil {
		// The snapshot is already saved.
		s.log.Warn("writing audit entry failed", "snapshot", name, "action", action, "error", err)
	}
	return nil
}

// findByID returns the first record with the given id.
func findByID[T entities.Identified](records []T, id string) (T, bool) {
	for _, r := range records {
		if r.GetID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

func movementIDs(ds *entities.Dataset) []string {
	ids := make([]string, 0, len(ds.Movements))
	for _, m := range ds.Movements {
		ids = append(ids, m.ID)
	}
	return ids
}
