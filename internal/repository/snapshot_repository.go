package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stocknote/stock-dashboard-backend/internal/apperrors"
	"github.com/stocknote/stock-dashboard-backend/internal/model"
)

// SnapshotRepository provides data access methods for the
// recommendation snapshot store. Rows are write-once per date key,
// never updated, and only removed by retention eviction.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save inserts a snapshot for its date key unless one already exists,
// then evicts the oldest date keys beyond the retention limit. Insert
// and eviction share one SQL transaction. Returns false when the date
// key was already recorded (the existing payload is kept).
func (r *SnapshotRepository) Save(ctx context.Context, snap model.Snapshot, retention int) (bool, error) {
	records, err := json.Marshal(snap.Records)
	if err != nil {
		return false, fmt.Errorf("failed to encode snapshot records: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	// Write-once per date key: an existing row wins.
	result, err := tx.ExecContext(ctx, `
		INSERT INTO snapshot (date_key, saved_at, records)
		VALUES (?, ?, ?)
		ON CONFLICT (date_key) DO NOTHING
	`, snap.DateKey, snap.SavedAt.UTC().Format("2006-01-02 15:04:05"), string(records))
	if err != nil {
		return false, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check snapshot insert: %w", err)
	}
	if affected == 0 {
		return false, tx.Commit()
	}

	// Keep only the most recent retention date keys.
	_, err = tx.ExecContext(ctx, `
		DELETE FROM snapshot
		WHERE date_key NOT IN (
			SELECT date_key FROM snapshot ORDER BY date_key DESC LIMIT ?
		)
	`, retention)
	if err != nil {
		return false, fmt.Errorf("failed to evict old snapshots: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return true, nil
}

// Get retrieves the snapshot for a date key.
// Returns ErrSnapshotNotFound if no snapshot exists for that date.
func (r *SnapshotRepository) Get(dateKey string) (model.Snapshot, error) {
	var snap model.Snapshot
	var savedAtStr, recordsStr string

	err := r.db.QueryRow(`SELECT date_key, saved_at, records FROM snapshot WHERE date_key = ?`, dateKey).
		Scan(&snap.DateKey, &savedAtStr, &recordsStr)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Snapshot{}, fmt.Errorf("%w: %s", apperrors.ErrSnapshotNotFound, dateKey)
	}
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to query snapshot: %w", err)
	}

	snap.SavedAt, err = ParseTime(savedAtStr)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to parse snapshot timestamp: %w", err)
	}

	if err := json.Unmarshal([]byte(recordsStr), &snap.Records); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to decode snapshot records: %w", err)
	}

	return snap, nil
}

// ListDates returns all recorded snapshot date keys, newest first.
func (r *SnapshotRepository) ListDates() ([]string, error) {
	rows, err := r.db.Query(`SELECT date_key FROM snapshot ORDER BY date_key DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot dates: %w", err)
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot date: %w", err)
		}
		dates = append(dates, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot dates: %w", err)
	}

	return dates, nil
}
