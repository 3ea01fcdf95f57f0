package entities

import "time"

// Audit actions recorded for snapshot mutations.
const (
	ActionMovementAdd    = "movement.add"
	ActionMovementDelete = "movement.delete"
	ActionRecordPut      = "record.put"
	ActionRecordDelete   = "record.delete"
	ActionTemplateApply  = "template.apply"
	ActionBindingSet     = "binding.set"
	ActionSnapshotImport = "snapshot.import"
)

// AuditEntry represents a logged mutation of a stored snapshot.
type AuditEntry struct {
	ID        int64          `json:"id"`
	Snapshot  string         `json:"snapshot"`
	Action    string         `json:"action"`
	RecordID  string         `json:"recordId,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// SnapshotInfo describes a stored snapshot without loading it.
type SnapshotInfo struct {
	Name      string    `json:"name"`
	Revision  int       `json:"revision"`
	Movements int       `json:"movements"`
	UpdatedAt time.Time `json:"updatedAt"`
}
