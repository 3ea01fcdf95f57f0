package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/movement-core/internal/domain/entities"
	"github.com/ersonp/movement-core/internal/domain/ports"
	"github.com/ersonp/movement-core/internal/domain/services"
	"github.com/ersonp/movement-core/internal/infrastructure/logger"
)

// TemplateHandler applies stored movement templates.
type TemplateHandler struct {
	snapshots
}

// NewTemplateHandler creates a new template handler.
func NewTemplateHandler(store ports.SnapshotStore, log *logger.Logger) *TemplateHandler {
	return &TemplateHandler{
		snapshots: newSnapshots(store, log),
	}
}

// HandleApply clones a movement following a stored template and saves the
// result.
func (h *TemplateHandler) HandleApply(ctx context.Context, snapshot, templateID string, opts services.TemplateOptions) (*services.TemplateResult, error) {
	ds, err := h.load(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	tmpl, ok := findByID(ds.MovementTemplates, templateID)
	if !ok {
		return nil, fmt.Errorf("%w: template %s", ErrRecordNotFound, templateID)
	}

	result, err := services.ApplyTemplate(ds, tmpl, opts)
	if err != nil {
		h.log.Error("applying template failed", "template_id", templateID, "error", err)
		return nil, fmt.Errorf("applying template %s: %w", templateID, err)
	}
	for _, c := range result.Skipped {
		h.log.Debug("template rule skipped", "template_id", templateID, "collection", c)
	}

	cloned := make(map[string]any, len(result.Cloned))
	for c, n := range result.Cloned {
		cloned[string(c)] = n
	}
	details := map[string]any{"template_id": templateID, "cloned": cloned}
	if err := h.commit(ctx, snapshot, result.Dataset, entities.ActionTemplateApply, result.MovementID, details); err != nil {
		return nil, err
	}
	h.log.Info("template applied", "snapshot", snapshot, "template_id", templateID,
		"movement_id", result.MovementID, "cloned", cloned)
	return result, nil
}
