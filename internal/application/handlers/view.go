package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/movement-core/internal/domain/entities"
	"github.com/ersonp/movement-core/internal/domain/ports"
	"github.com/ersonp/movement-core/internal/domain/services"
	"github.com/ersonp/movement-core/internal/infrastructure/logger"
)

// ViewHandler builds read-only view models from a stored snapshot.
type ViewHandler struct {
	snapshots
	topLimit int
}

// NewViewHandler creates a new view handler. topLimit sizes the dashboard
// highlights; zero keeps the service default.
func NewViewHandler(store ports.SnapshotStore, topLimit int, log *logger.Logger) *ViewHandler {
	return &ViewHandler{
		snapshots: newSnapshots(store, log),
		topLimit:  topLimit,
	}
}

// buildView loads a snapshot, builds one view from it and logs the request.
func buildView[T any](ctx context.Context, h *ViewHandler, snapshot, view string, build func(*entities.Dataset) *T, keys ...any) (*T, error) {
	ds, err := h.load(ctx, snapshot)
	if err != nil {
		return nil, err
	}
	result := build(ds)
	h.log.Debug("view built", append([]any{"view", view, "snapshot", snapshot}, keys...)...)
	return result, nil
}

// HandleDashboard builds a movement dashboard. An unknown movement yields a
// dashboard without a movement and zero counts.
func (h *ViewHandler) HandleDashboard(ctx context.Context, snapshot, movementID string) (*services.Dashboard, error) {
	dashboard, err := buildView(ctx, h, snapshot, "dashboard", func(ds *entities.Dataset) *services.Dashboard {
		return services.BuildDashboard(ds, services.DashboardRequest{MovementID: movementID, TopLimit: h.topLimit})
	}, "movement_id", movementID)
	if err != nil {
		return nil, err
	}
	if dashboard.Movement == nil {
		h.log.Warn("dashboard for unknown movement", "snapshot", snapshot, "movement_id", movementID)
	}
	return dashboard, nil
}

// HandleTextTree builds the text tree of a movement.
func (h *ViewHandler) HandleTextTree(ctx context.Context, snapshot string, req services.TextTreeRequest) (*services.TextTree, error) {
	return buildView(ctx, h, snapshot, "tree", func(ds *entities.Dataset) *services.TextTree {
		return services.BuildTextTree(ds, req)
	}, "movement_id", req.MovementID, "collection_id", req.TextCollectionID)
}

// HandleEntity builds the detail view of an entity.
func (h *ViewHandler) HandleEntity(ctx context.Context, snapshot, entityID string) (*services.EntityDetail, error) {
	detail, err := buildView(ctx, h, snapshot, "entity", func(ds *entities.Dataset) *services.EntityDetail {
		return services.BuildEntityDetail(ds, entityID)
	}, "entity_id", entityID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, fmt.Errorf("%w: entity %s", ErrRecordNotFound, entityID)
	}
	return detail, nil
}

// HandleGraph builds the entity graph of a movement.
func (h *ViewHandler) HandleGraph(ctx context.Context, snapshot string, req services.GraphRequest) (*services.EntityGraph, error) {
	keys := []any{"movement_id", req.MovementID, "center", req.CenterEntityID}
	if req.Depth != nil {
		keys = append(keys, "depth", *req.Depth)
	}
	return buildView(ctx, h, snapshot, "graph", func(ds *entities.Dataset) *services.EntityGraph {
		return services.BuildEntityGraph(ds, req)
	}, keys...)
}

// HandlePractice builds the detail view of a practice.
func (h *ViewHandler) HandlePractice(ctx context.Context, snapshot, practiceID string) (*services.PracticeDetail, error) {
	detail, err := buildView(ctx, h, snapshot, "practice", func(ds *entities.Dataset) *services.PracticeDetail {
		return services.BuildPracticeDetail(ds, practiceID)
	}, "practice_id", practiceID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, fmt.Errorf("%w: practice %s", ErrRecordNotFound, practiceID)
	}
	return detail, nil
}

// HandleCalendar builds the event calendar of a movement.
func (h *ViewHandler) HandleCalendar(ctx context.Context, snapshot string, req services.CalendarRequest) (*services.Calendar, error) {
	return buildView(ctx, h, snapshot, "calendar", func(ds *entities.Dataset) *services.Calendar {
		return services.BuildCalendar(ds, req)
	}, "movement_id", req.MovementID, "recurrence", req.RecurrenceFilter)
}

// HandleClaims builds the claims explorer of a movement.
func (h *ViewHandler) HandleClaims(ctx context.Context, snapshot string, req services.ClaimsRequest) (*services.ClaimsExplorer, error) {
	return buildView(ctx, h, snapshot, "claims", func(ds *entities.Dataset) *services.ClaimsExplorer {
		return services.BuildClaimsExplorer(ds, req)
	}, "movement_id", req.MovementID, "categories", req.CategoryFilter, "entity_id", req.EntityIDFilter)
}

// HandleRules builds the rule explorer of a movement.
func (h *ViewHandler) HandleRules(ctx context.Context, snapshot string, req services.RulesRequest) (*services.RuleExplorer, error) {
	return buildView(ctx, h, snapshot, "rules", func(ds *entities.Dataset) *services.RuleExplorer {
		return services.BuildRuleExplorer(ds, req)
	}, "movement_id", req.MovementID, "kinds", req.KindFilter, "domains", req.DomainFilter)
}

// HandleAuthority builds the sources-of-truth view of a movement.
func (h *ViewHandler) HandleAuthority(ctx context.Context, snapshot, movementID string) (*services.Authority, error) {
	return buildView(ctx, h, snapshot, "authority", func(ds *entities.Dataset) *services.Authority {
		return services.BuildAuthority(ds, movementID)
	}, "movement_id", movementID)
}

// HandleMedia builds the media gallery of a movement.
func (h *ViewHandler) HandleMedia(ctx context.Context, snapshot string, req services.MediaRequest) (*services.MediaGallery, error) {
	return buildView(ctx, h, snapshot, "media", func(ds *entities.Dataset) *services.MediaGallery {
		return services.BuildMediaGallery(ds, req)
	}, "movement_id", req.MovementID)
}

// HandleRelations builds the relation explorer of a movement.
func (h *ViewHandler) HandleRelations(ctx context.Context, snapshot string, req services.RelationsRequest) (*services.RelationExplorer, error) {
	return buildView(ctx, h, snapshot, "relations", func(ds *entities.Dataset) *services.RelationExplorer {
		return services.BuildRelationExplorer(ds, req)
	}, "movement_id", req.MovementID, "types", req.RelationTypeFilter, "entity_id", req.EntityIDFilter)
}

// HandleNotes builds the notes view of a movement.
func (h *ViewHandler) HandleNotes(ctx context.Context, snapshot string, req services.NotesRequest) (*services.NotesView, error) {
	return buildView(ctx, h, snapshot, "notes", func(ds *entities.Dataset) *services.NotesView {
		return services.BuildNotes(ds, req)
	}, "movement_id", req.MovementID, "target_type", req.TargetTypeFilter, "target_id", req.TargetIDFilter)
}

// HandleOverview compares movements side by side. No ids selects every
// movement of the snapshot.
func (h *ViewHandler) HandleOverview(ctx context.Context, snapshot string, ids []string) (*services.ComparisonOverview, error) {
	return buildView(ctx, h, snapshot, "overview", func(ds *entities.Dataset) *services.ComparisonOverview {
		if len(ids) == 0 {
			ids = movementIDs(ds)
		}
		return services.BuildComparisonOverview(ds, ids)
	}, "movement_ids", ids)
}
