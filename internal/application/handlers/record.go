package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/ersonp/movement-core/internal/domain/entities"
	"github.com/ersonp/movement-core/internal/domain/ports"
	"github.com/ersonp/movement-core/internal/domain/services"
	"github.com/ersonp/movement-core/internal/infrastructure/logger"
	"github.com/ersonp/movement-core/internal/infrastructure/parsers"
)

// RecordHandler handles movement and record mutations of a stored snapshot.
type RecordHandler struct {
	snapshots
	vocab parsers.Vocabulary
}

// NewRecordHandler creates a new record handler.
func NewRecordHandler(store ports.SnapshotStore, vocab parsers.Vocabulary, log *logger.Logger) *RecordHandler {
	return &RecordHandler{
		snapshots: newSnapshots(store, log),
		vocab:     vocab,
	}
}

// MovementInput describes a movement to add.
type MovementInput struct {
	ID        string
	Name      string
	ShortName string
	Summary   string
	Tags      []string
}

// HandleListMovements returns the movements of a snapshot.
func (h *RecordHandler) HandleListMovements(ctx context.Context, snapshot string) ([]entities.Movement, error) {
	ds, err := h.load(ctx, snapshot)
	if err != nil {
		return nil, err
	}
	return ds.Movements, nil
}

// HandleAddMovement appends a movement. A missing snapshot is created.
func (h *RecordHandler) HandleAddMovement(ctx context.Context, snapshot string, in MovementInput) (entities.Movement, error) {
	ds, err := h.loadOrEmpty(ctx, snapshot)
	if err != nil {
		return entities.Movement{}, err
	}
	if in.ID != "" {
		if _, exists := ds.FindMovement(in.ID); exists {
			return entities.Movement{}, fmt.Errorf("movement %s already exists", in.ID)
		}
	}
	if in.Name == "" {
		in.Name = services.DefaultMovementName
	}

	ds, m := services.AddMovement(ds, entities.Movement{
		ID:        in.ID,
		Name:      in.Name,
		ShortName: in.ShortName,
		Summary:   in.Summary,
		Tags:      in.Tags,
	})
	if err := h.commit(ctx, snapshot, ds, entities.ActionMovementAdd, m.ID, map[string]any{"name": m.Name}); err != nil {
		return entities.Movement{}, err
	}
	h.log.Info("movement added", "snapshot", snapshot, "movement_id", m.ID)
	return m, nil
}

// HandleDeleteMovement removes a movement and every record it owns.
// The result counts the removed records per collection.
func (h *RecordHandler) HandleDeleteMovement(ctx context.Context, snapshot, movementID string) (map[entities.Collection]int, error) {
	ds, err := h.load(ctx, snapshot)
	if err != nil {
		return nil, err
	}
	if _, ok := ds.FindMovement(movementID); !ok {
		return nil, fmt.Errorf("%w: movement %s", ErrRecordNotFound, movementID)
	}

	ds, removed := services.DeleteMovement(ds, movementID)
	details := make(map[string]any, len(removed))
	for c, n := range removed {
		details[string(c)] = n
	}
	if err := h.commit(ctx, snapshot, ds, entities.ActionMovementDelete, movementID, details); err != nil {
		return nil, err
	}
	h.log.Info("movement deleted", "snapshot", snapshot, "movement_id", movementID, "removed", details)
	return removed, nil
}

// HandleNewRecord adds the default record of a movement-scoped collection.
func (h *RecordHandler) HandleNewRecord(ctx context.Context, snapshot string, c entities.Collection, ownerID string) (entities.Record, error) {
	rec, err := services.NewSkeleton(c, ownerID)
	if err != nil {
		return nil, err
	}
	ds, err := h.load(ctx, snapshot)
	if err != nil {
		return nil, err
	}
	if ownerID != "" {
		if _, ok := ds.FindMovement(ownerID); !ok {
			return nil, fmt.Errorf("%w: movement %s", ErrRecordNotFound, ownerID)
		}
	}

	ds, err = services.PutRecord(ds, rec)
	if err != nil {
		return nil, err
	}
	if err := h.commit(ctx, snapshot, ds, entities.ActionRecordPut, rec.GetID(), map[string]any{"collection": string(c)}); err != nil {
		return nil, err
	}
	h.log.Debug("record created", "snapshot", snapshot, "collection", c, "id", rec.GetID())
	return rec, nil
}

// HandlePutRecord decodes one record and stores it, replacing any record
// with the same id.
func (h *RecordHandler) HandlePutRecord(ctx context.Context, snapshot string, c entities.Collection, r io.Reader, format parsers.Format) (entities.Identified, error) {
	rec, err := parsers.DecodeRecord(r, c, format, h.vocab)
	if err != nil {
		return nil, fmt.Errorf("parsing record: %w", err)
	}
	ds, err := h.load(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	ds, err = services.PutRecord(ds, rec)
	if err != nil {
		return nil, err
	}
	if err := h.commit(ctx, snapshot, ds, entities.ActionRecordPut, rec.GetID(), map[string]any{"collection": string(c)}); err != nil {
		return nil, err
	}
	h.log.Debug("record stored", "snapshot", snapshot, "collection", c, "id", rec.GetID())
	return rec, nil
}

// HandleDeleteRecord removes every record with the given id from a
// collection. Removing a movement cascades like HandleDeleteMovement.
func (h *RecordHandler) HandleDeleteRecord(ctx context.Context, snapshot string, c entities.Collection, id string) (int, error) {
	ds, err := h.load(ctx, snapshot)
	if err != nil {
		return 0, err
	}

	ds, removed, err := services.RemoveRecord(ds, c, id)
	if err != nil {
		return 0, err
	}
	if removed == 0 {
		return 0, fmt.Errorf("%w: %s %s", ErrRecordNotFound, c, id)
	}
	if err := h.commit(ctx, snapshot, ds, entities.ActionRecordDelete, id, map[string]any{"collection": string(c)}); err != nil {
		return 0, err
	}
	h.log.Debug("record deleted", "snapshot", snapshot, "collection", c, "id", id)
	return removed, nil
}
