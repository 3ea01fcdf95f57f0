// Package mocks provides in-memory implementations of the domain ports for tests.
package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/ersonp/movement-core/internal/domain/entities"
	"github.com/ersonp/movement-core/internal/domain/ports"
)

// SnapshotStore is a mock implementation of ports.SnapshotStore.
type SnapshotStore struct {
	Snapshots map[string]*entities.Dataset
	Audit     []entities.AuditEntry
	// Err, when set, is returned by every method.
	Err error
	// SaveErr, when set, is returned by SaveSnapshot only.
	SaveErr error
	// Saves counts successful SaveSnapshot calls.
	Saves int
}

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore creates a new mock SnapshotStore.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		Snapshots: make(map[string]*entities.Dataset),
	}
}

// EnsureSchema creates the storage schema if it doesn't exist.
func (m *SnapshotStore) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close releases the underlying connection.
func (m *SnapshotStore) Close() error {
	return nil
}

// LoadSnapshot returns a copy of the stored dataset.
func (m *SnapshotStore) LoadSnapshot(_ context.Context, name string) (*entities.Dataset, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	ds, ok := m.Snapshots[name]
	if !ok {
		return nil, ports.ErrSnapshotNotFound
	}
	return ds.Clone(), nil
}

// SaveSnapshot stores a copy of ds.
func (m *SnapshotStore) SaveSnapshot(_ context.Context, name string, ds *entities.Dataset) error {
	if m.Err != nil {
		return m.Err
	}
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Snapshots[name] = ds.Clone()
	m.Saves++
	return nil
}

// DeleteSnapshot removes a snapshot.
func (m *SnapshotStore) DeleteSnapshot(_ context.Context, name string) error {
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Snapshots[name]; !ok {
		return ports.ErrSnapshotNotFound
	}
	delete(m.Snapshots, name)
	return nil
}

// ListSnapshots lists stored snapshots by name.
func (m *SnapshotStore) ListSnapshots(_ context.Context) ([]entities.SnapshotInfo, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.SnapshotInfo, 0, len(m.Snapshots))
	for name, ds := range m.Snapshots {
		result = append(result, entities.SnapshotInfo{Name: name, Revision: 1, Movements: len(ds.Movements)})
	}
	// Sort by name for deterministic test results
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// LogAction records an audit entry.
func (m *SnapshotStore) LogAction(_ context.Context, snapshot, action, recordID string, details map[string]any) error {
	if m.Err != nil {
		return m.Err
	}
	m.Audit = append(m.Audit, entities.AuditEntry{
		ID:        int64(len(m.Audit) + 1),
		Snapshot:  snapshot,
		Action:    action,
		RecordID:  recordID,
		Details:   details,
		CreatedAt: time.Now(),
	})
	return nil
}

// FindAuditLog returns entries for a snapshot, newest first.
func (m *SnapshotStore) FindAuditLog(_ context.Context, snapshot string, limit int) ([]entities.AuditEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.newestFirst(func(e entities.AuditEntry) bool { return e.Snapshot == snapshot }, limit), nil
}

// FindAuditLogByAction returns entries of one action, newest first.
func (m *SnapshotStore) FindAuditLogByAction(_ context.Context, action string, limit int) ([]entities.AuditEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.newestFirst(func(e entities.AuditEntry) bool { return e.Action == action }, limit), nil
}

func (m *SnapshotStore) newestFirst(keep func(entities.AuditEntry) bool, limit int) []entities.AuditEntry {
	var result []entities.AuditEntry
	for i := len(m.Audit) - 1; i >= 0; i-- {
		if !keep(m.Audit[i]) {
			continue
		}
		result = append(result, m.Audit[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}

// Actions returns the recorded audit actions in order.
func (m *SnapshotStore) Actions() []string {
	actions := make([]string, len(m.Audit))
	for i, e := range m.Audit {
		actions[i] = e.Action
	}
	return actions
}
