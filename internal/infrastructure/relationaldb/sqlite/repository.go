// Package sqlite provides a SQLite implementation of the SnapshotStore port.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/movement-core/internal/domain/entities"
	"github.com/ersonp/movement-core/internal/domain/ports"
	"github.com/ersonp/movement-core/internal/infrastructure/config"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

var _ ports.SnapshotStore = (*Repository)(nil)

// Repository implements ports.SnapshotStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// An in-memory database lives and dies with its connection
	if cfg.Path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Snapshots (one JSON document per name)
	CREATE TABLE IF NOT EXISTS snapshots (
		name TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		movements INTEGER NOT NULL DEFAULT 0,
		revision INTEGER NOT NULL DEFAULT 1,
		updated_at TIMESTAMP NOT NULL
	);

	-- Audit log (tracks all mutations)
	CREATE TABLE IF NOT EXISTS audit_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		snapshot TEXT NOT NULL,
		action TEXT NOT NULL,
		record_id TEXT,
		details TEXT,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_audit_log_snapshot ON audit_log(snapshot);
	CREATE INDEX IF NOT EXISTS idx_audit_log_action ON audit_log(action);
	CREATE INDEX IF NOT EXISTS idx_audit_log_created ON audit_log(created_at);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// LoadSnapshot returns the dataset stored under name.
func (r *Repository) LoadSnapshot(ctx context.Context, name string) (*entities.Dataset, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ports.ErrSnapshotNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	var ds entities.Dataset
	if err := json.Unmarshal([]byte(data), &ds); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", name, err)
	}
	return ds.Normalize(), nil
}

// SaveSnapshot saves or replaces the dataset stored under name.
func (r *Repository) SaveSnapshot(ctx context.Context, name string, ds *entities.Dataset) error {
	if ds == nil {
		ds = entities.NewDataset()
	}
	data, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	query := `
		INSERT INTO snapshots (name, data, movements, revision, updated_at)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			movements = excluded.movements,
			revision = snapshots.revision + 1,
			updated_at = excluded.updated_at
	`
	_, err = r.db.ExecContext(ctx, query, name, string(data), len(ds.Movements), timeNow().UTC())
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// DeleteSnapshot removes a snapshot. Its audit entries are kept.
func (r *Repository) DeleteSnapshot(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", ports.ErrSnapshotNotFound, name)
	}
	return nil
}

// ListSnapshots lists stored snapshots ordered by name.
func (r *Repository) ListSnapshots(ctx context.Context) ([]entities.SnapshotInfo, error) {
	query := `
		SELECT name, revision, movements, updated_at
		FROM snapshots
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var infos []entities.SnapshotInfo
	for rows.Next() {
		var info entities.SnapshotInfo
		if err := rows.Scan(&info.Name, &info.Revision, &info.Movements, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// LogAction logs an action to the audit log.
func (r *Repository) LogAction(ctx context.Context, snapshot, action, recordID string, details map[string]any) error {
	var detailsJSON sql.NullString
	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("marshaling details: %w", err)
		}
		detailsJSON = sql.NullString{String: string(data), Valid: true}
	}

	var recordIDPtr sql.NullString
	if recordID != "" {
		recordIDPtr = sql.NullString{String: recordID, Valid: true}
	}

	query := `INSERT INTO audit_log (snapshot, action, record_id, details, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, snapshot, action, recordIDPtr, detailsJSON, timeNow().UTC())
	if err != nil {
		return fmt.Errorf("logging action: %w", err)
	}
	return nil
}

// FindAuditLog finds audit log entries for a snapshot, newest first.
func (r *Repository) FindAuditLog(ctx context.Context, snapshot string, limit int) ([]entities.AuditEntry, error) {
	query := `
		SELECT id, snapshot, action, record_id, details, created_at
		FROM audit_log
		WHERE snapshot = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	return r.queryAuditLog(ctx, query, snapshot, sqlLimit(limit))
}

// FindAuditLogByAction finds audit log entries by action type, newest first.
func (r *Repository) FindAuditLogByAction(ctx context.Context, action string, limit int) ([]entities.AuditEntry, error) {
	query := `
		SELECT id, snapshot, action, record_id, details, created_at
		FROM audit_log
		WHERE action = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	return r.queryAuditLog(ctx, query, action, sqlLimit(limit))
}

// sqlLimit maps "no limit" onto SQLite's LIMIT -1.
func sqlLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

// queryAuditLog is a helper to execute audit log queries.
func (r *Repository) queryAuditLog(ctx context.Context, query string, args ...any) ([]entities.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	// Use limit parameter as capacity hint if available
	var entries []entities.AuditEntry
	if len(args) > 0 {
		if limit, ok := args[len(args)-1].(int); ok && limit > 0 {
			entries = make([]entities.AuditEntry, 0, limit)
		}
	}

	for rows.Next() {
		var entry entities.AuditEntry
		var recordID, details sql.NullString

		if err := rows.Scan(
			&entry.ID,
			&entry.Snapshot,
			&entry.Action,
			&recordID,
			&details,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}

		entry.RecordID = recordID.String

		if details.Valid && details.String != "" {
			if err := json.Unmarshal([]byte(details.String), &entry.Details); err != nil {
				return nil, fmt.Errorf("unmarshaling details: %w", err)
			}
		}

		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
