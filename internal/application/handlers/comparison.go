package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/movement-core/internal/domain/entities"
	"github.com/ersonp/movement-core/internal/domain/ports"
	"github.com/ersonp/movement-core/internal/domain/services"
	"github.com/ersonp/movement-core/internal/infrastructure/logger"
	"github.com/ersonp/movement-core/internal/infrastructure/parsers"
)

// ComparisonHandler handles comparison bindings and matrices.
type ComparisonHandler struct {
	snapshots
}

// NewComparisonHandler creates a new comparison handler.
func NewComparisonHandler(store ports.SnapshotStore, log *logger.Logger) *ComparisonHandler {
	return &ComparisonHandler{
		snapshots: newSnapshots(store, log),
	}
}

// HandleMatrix evaluates a stored binding against its schema.
func (h *ComparisonHandler) HandleMatrix(ctx context.Context, snapshot, bindingID string) (*services.ComparisonMatrix, error) {
	ds, err := h.load(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	binding, ok := findByID(ds.ComparisonBindings, bindingID)
	if !ok {
		return nil, fmt.Errorf("%w: binding %s", ErrRecordNotFound, bindingID)
	}

	var schema *entities.ComparisonSchema
	if s, ok := findByID(ds.ComparisonSchemas, binding.SchemaID); ok {
		schema = &s
		h.logUnderivable(s)
	} else {
		h.log.Warn("binding references unknown schema", "binding_id", bindingID, "schema_id", binding.SchemaID)
	}

	matrix := services.BuildComparisonMatrix(ds, schema, &binding)
	h.log.Debug("view built", "view", "matrix", "snapshot", snapshot, "binding_id", bindingID,
		"rows", len(matrix.Rows), "movements", len(matrix.Movements))
	return matrix, nil
}

// logUnderivable reports dimensions whose source collection cannot be counted.
func (h *ComparisonHandler) logUnderivable(schema entities.ComparisonSchema) {
	for _, dim := range schema.Dimensions {
		if dim.SourceKind == "" || dim.SourceKind == entities.SourceNone {
			continue
		}
		if !entities.Collection(dim.SourceCollection).IsMovementScoped() {
			h.log.Debug("dimension is never derived", "schema_id", schema.ID, "dimension_id", dim.ID,
				"source_collection", dim.SourceCollection)
		}
	}
}

// BlankRequest describes a new, empty binding.
type BlankRequest struct {
	SchemaID string
	// MovementIDs defaults to every movement of the snapshot.
	MovementIDs []string
	Options     services.BlankBindingOptions
}

// HandleBlank creates and stores a binding with no explicit values.
func (h *ComparisonHandler) HandleBlank(ctx context.Context, snapshot string, req BlankRequest) (entities.ComparisonBinding, error) {
	ds, err := h.load(ctx, snapshot)
	if err != nil {
		return entities.ComparisonBinding{}, err
	}

	schema, ok := findByID(ds.ComparisonSchemas, req.SchemaID)
	if !ok {
		return entities.ComparisonBinding{}, fmt.Errorf("%w: schema %s", ErrRecordNotFound, req.SchemaID)
	}
	ids := req.MovementIDs
	if len(ids) == 0 {
		ids = movementIDs(ds)
	}

	binding := services.CreateBlankBinding(schema, ids, req.Options)
	ds, err = services.PutRecord(ds, binding)
	if err != nil {
		return entities.ComparisonBinding{}, err
	}
	details := map[string]any{"collection": string(entities.CollectionComparisonBindings), "schema_id": schema.ID}
	if err := h.commit(ctx, snapshot, ds, entities.ActionRecordPut, binding.ID, details); err != nil {
		return entities.ComparisonBinding{}, err
	}
	h.log.Info("binding created", "snapshot", snapshot, "binding_id", binding.ID, "cells", len(binding.Cells))
	return binding, nil
}

// HandleSet applies explicit values to a stored binding.
func (h *ComparisonHandler) HandleSet(ctx context.Context, snapshot, bindingID string, cells []parsers.CellValue) (entities.ComparisonBinding, error) {
	ds, err := h.load(ctx, snapshot)
	if err != nil {
		return entities.ComparisonBinding{}, err
	}

	binding, ok := findByID(ds.ComparisonBindings, bindingID)
	if !ok {
		return entities.ComparisonBinding{}, fmt.Errorf("%w: binding %s", ErrRecordNotFound, bindingID)
	}

	for _, cell := range cells {
		var opts []services.CellOption
		if cell.HasNotes {
			opts = append(opts, services.WithNotes(cell.Notes))
		}
		binding = services.SetBindingValue(&binding, cell.DimensionID, cell.MovementID, cell.Value, opts...)
	}

	ds, err = services.PutRecord(ds, binding)
	if err != nil {
		return entities.ComparisonBinding{}, err
	}
	if err := h.commit(ctx, snapshot, ds, entities.ActionBindingSet, binding.ID, map[string]any{"cells": len(cells)}); err != nil {
		return entities.ComparisonBinding{}, err
	}
	h.log.Info("binding values set", "snapshot", snapshot, "binding_id", binding.ID, "cells", len(cells))
	return binding, nil
}
