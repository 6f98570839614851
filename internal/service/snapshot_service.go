package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stocknote/stock-dashboard-backend/internal/model"
	"github.com/stocknote/stock-dashboard-backend/internal/repository"
)

// SnapshotService records the daily AI-recommendation list for later
// comparison. Snapshots are an audit trail, not a cache: one per data
// date, written once, never edited, evicted only by retention.
type SnapshotService struct {
	snapshotRepo *repository.SnapshotRepository
	retention    int
	maxRecords   int
}

// NewSnapshotService creates a new SnapshotService with the provided dependencies.
func NewSnapshotService(snapshotRepo *repository.SnapshotRepository, retention, maxRecords int) *SnapshotService {
	return &SnapshotService{
		snapshotRepo: snapshotRepo,
		retention:    retention,
		maxRecords:   maxRecords,
	}
}

// Save records the recommendation list for a data date. The date key
// is normalized to YYYY-MM-DD and the record list capped. Returns
// false when the date was already recorded; the first payload wins.
func (s *SnapshotService) Save(ctx context.Context, dateKey string, records []model.Recommendation) (bool, error) {
	parsed, err := time.Parse("2006-01-02", dateKey)
	if err != nil {
		return false, fmt.Errorf("failed to parse date key: %w", err)
	}

	if len(records) > s.maxRecords {
		records = records[:s.maxRecords]
	}

	snap := model.Snapshot{
		DateKey: parsed.Format(repository.DateFormat),
		SavedAt: time.Now().UTC(),
		Records: records,
	}

	return s.snapshotRepo.Save(ctx, snap, s.retention)
}

// Get retrieves the snapshot recorded for a date key.
func (s *SnapshotService) Get(dateKey string) (model.Snapshot, error) {
	return s.snapshotRepo.Get(dateKey)
}

// ListDates returns all recorded snapshot dates, newest first. The
// list never exceeds the retention limit.
func (s *SnapshotService) ListDates() ([]string, error) {
	return s.snapshotRepo.ListDates()
}
