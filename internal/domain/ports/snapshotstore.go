// Package ports defines the interfaces the application layer depends on.
package ports

import (
	"context"
	"errors"

	"github.com/ersonp/movement-core/internal/domain/entities"
)

// ErrSnapshotNotFound is returned when no snapshot is stored under a name.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore persists named datasets and the audit trail of their mutations.
type SnapshotStore interface {
	// EnsureSchema creates the storage schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error

	// LoadSnapshot returns the normalized dataset stored under name,
	// or ErrSnapshotNotFound.
	LoadSnapshot(ctx context.Context, name string) (*entities.Dataset, error)

	// SaveSnapshot stores ds under name, replacing any previous revision.
	SaveSnapshot(ctx context.Context, name string, ds *entities.Dataset) error

	// DeleteSnapshot removes a snapshot, or returns ErrSnapshotNotFound.
	DeleteSnapshot(ctx context.Context, name string) error

	// ListSnapshots lists stored snapshots by name.
	ListSnapshots(ctx context.Context) ([]entities.SnapshotInfo, error)

	// LogAction appends an entry to the audit log.
	LogAction(ctx context.Context, snapshot, action, recordID string, details map[string]any) error

	// FindAuditLog returns the newest entries for a snapshot first.
	// A limit of zero or less returns every entry.
	FindAuditLog(ctx context.Context, snapshot string, limit int) ([]entities.AuditEntry, error)

	// FindAuditLogByAction returns the newest entries of one action first.
	FindAuditLogByAction(ctx context.Context, action string, limit int) ([]entities.AuditEntry, error)
}
