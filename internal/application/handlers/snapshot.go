package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ersonp/movement-core/internal/domain/entities"
	"github.com/ersonp/movement-core/internal/domain/ports"
	"github.com/ersonp/movement-core/internal/infrastructure/logger"
	"github.com/ersonp/movement-core/internal/infrastructure/parsers"
)

// SnapshotHandler handles whole-snapshot operations: import, export,
// listing and history.
type SnapshotHandler struct {
	snapshots
	vocab parsers.Vocabulary
}

// NewSnapshotHandler creates a new snapshot handler.
func NewSnapshotHandler(store ports.SnapshotStore, vocab parsers.Vocabulary, log *logger.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		snapshots: newSnapshots(store, log),
		vocab:     vocab,
	}
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	Format string // "json", "yaml", or "auto"
	DryRun bool   // Validate without saving
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Snapshot string                      `json:"snapshot"`
	Records  map[entities.Collection]int `json:"records"`
	DryRun   bool                        `json:"dryRun"`
}

// HandleImport replaces a snapshot with the contents of a file.
func (h *SnapshotHandler) HandleImport(ctx context.Context, snapshot, filePath string, opts ImportOptions) (*ImportResult, error) {
	format, err := resolveFormat(filePath, opts.Format)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	ds, err := parsers.DecodeSnapshot(file, format, h.vocab)
	if err != nil {
		h.log.Error("import rejected", "file", filePath, "error", err)
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	result := &ImportResult{
		Snapshot: snapshot,
		Records:  ds.Counts(),
		DryRun:   opts.DryRun,
	}
	if opts.DryRun {
		return result, nil
	}

	details := map[string]any{
		"file":      filePath,
		"format":    string(format),
		"movements": len(ds.Movements),
	}
	if err := h.commit(ctx, snapshot, ds, entities.ActionSnapshotImport, "", details); err != nil {
		return nil, err
	}
	h.log.Info("snapshot imported", "snapshot", snapshot, "file", filePath, "movements", len(ds.Movements))
	return result, nil
}

// HandleExport writes a stored snapshot to w.
func (h *SnapshotHandler) HandleExport(ctx context.Context, snapshot string, w io.Writer, format string) error {
	f, err := parsers.ForFormat(format)
	if err != nil {
		return err
	}

	ds, err := h.load(ctx, snapshot)
	if err != nil {
		return err
	}

	if err := parsers.EncodeSnapshot(w, ds, f, h.vocab); err != nil {
		return fmt.Errorf("exporting snapshot: %w", err)
	}
	return nil
}

// HandleList lists stored snapshots.
func (h *SnapshotHandler) HandleList(ctx context.Context) ([]entities.SnapshotInfo, error) {
	infos, err := h.store.ListSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	return infos, nil
}

// HandleDelete removes a stored snapshot.
func (h *SnapshotHandler) HandleDelete(ctx context.Context, snapshot string) error {
	if err := h.store.DeleteSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("deleting snapshot %s: %w", snapshot, err)
	}
	h.log.Info("snapshot deleted", "snapshot", snapshot)
	return nil
}

// HistoryRequest selects audit entries.
type HistoryRequest struct {
	Snapshot string
	// Action keeps only entries of this action when set.
	Action string
	// AllSnapshots searches every snapshot; it requires Action.
	AllSnapshots bool
	// Limit caps the number of entries. Zero returns all.
	Limit int
}

// HandleHistory returns audit entries, newest first.
func (h *SnapshotHandler) HandleHistory(ctx context.Context, req HistoryRequest) ([]entities.AuditEntry, error) {
	if req.AllSnapshots {
		if req.Action == "" {
			return nil, errors.New("an action is required when searching all snapshots")
		}
		entries, err := h.store.FindAuditLogByAction(ctx, req.Action, req.Limit)
		if err != nil {
			return nil, fmt.Errorf("reading audit log: %w", err)
		}
		return entries, nil
	}

	limit := req.Limit
	if req.Action != "" {
		limit = 0
	}
	entries, err := h.store.FindAuditLog(ctx, req.Snapshot, limit)
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}
	if req.Action == "" {
		return entries, nil
	}

	filtered := make([]entities.AuditEntry, 0, len(entries))
	for _, e := range entries {
		if e.Action != req.Action {
			continue
		}
		filtered = append(filtered, e)
		if req.Limit > 0 && len(filtered) == req.Limit {
			break
		}
	}
	return filtered, nil
}

// resolveFormat picks the explicit format, or the file extension for "auto".
func resolveFormat(filePath, format string) (parsers.Format, error) {
	if format == "" || format == "auto" {
		return parsers.ForFile(filePath)
	}
	return parsers.ForFormat(format)
}
