package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stocknote/stock-dashboard-backend/internal/apperrors"
	"github.com/stocknote/stock-dashboard-backend/internal/model"
	"github.com/stocknote/stock-dashboard-backend/internal/repository"
	"github.com/stocknote/stock-dashboard-backend/internal/testutil"
)

func setupSnapshots(t *testing.T, retention, maxRecords int) *SnapshotService {
	t.Helper()

	db := testutil.SetupTestDB(t)
	return NewSnapshotService(repository.NewSnapshotRepository(db), retention, maxRecords)
}

func recommendations(n int) []model.Recommendation {
	records := make([]model.Recommendation, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, model.Recommendation{
			StockID: fmt.Sprintf("23%02d", i),
			Score:   float64(90 - i),
		})
	}
	return records
}

func TestSnapshotService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("first save wins, repeat is a no-op", func(t *testing.T) {
		svc := setupSnapshots(t, 10, 50)

		saved, err := svc.Save(ctx, "2024-05-01", recommendations(2))
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if !saved {
			t.Error("Expected first save to write")
		}

		saved, err = svc.Save(ctx, "2024-05-01", recommendations(5))
		if err != nil {
			t.Fatalf("Repeat save failed: %v", err)
		}
		if saved {
			t.Error("Expected repeat save to be a no-op")
		}

		snap, err := svc.Get("2024-05-01")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if len(snap.Records) != 2 {
			t.Errorf("Expected first payload kept, got %d records", len(snap.Records))
		}
	})

	t.Run("caps oversized record lists", func(t *testing.T) {
		svc := setupSnapshots(t, 10, 3)

		if _, err := svc.Save(ctx, "2024-05-01", recommendations(10)); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		snap, err := svc.Get("2024-05-01")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if len(snap.Records) != 3 {
			t.Errorf("Expected records capped at 3, got %d", len(snap.Records))
		}
	})

	t.Run("rejects malformed date key", func(t *testing.T) {
		svc := setupSnapshots(t, 10, 50)

		if _, err := svc.Save(ctx, "01-05-2024", recommendations(1)); err == nil {
			t.Error("Expected error for malformed date key")
		}
	})

	t.Run("retention keeps only the newest dates", func(t *testing.T) {
		svc := setupSnapshots(t, 3, 50)

		dates := []string{"2024-05-01", "2024-05-02", "2024-05-03", "2024-05-06", "2024-05-07"}
		for _, date := range dates {
			if _, err := svc.Save(ctx, date, recommendations(1)); err != nil {
				t.Fatalf("Save for %s failed: %v", date, err)
			}
		}

		listed, err := svc.ListDates()
		if err != nil {
			t.Fatalf("ListDates failed: %v", err)
		}
		want := []string{"2024-05-07", "2024-05-06", "2024-05-03"}
		if len(listed) != len(want) {
			t.Fatalf("Expected %d dates, got %v", len(want), listed)
		}
		for i := range want {
			if listed[i] != want[i] {
				t.Errorf("Expected %s at position %d, got %s", want[i], i, listed[i])
			}
		}

		if _, err := svc.Get("2024-05-01"); !errors.Is(err, apperrors.ErrSnapshotNotFound) {
			t.Errorf("Expected evicted date to be gone, got %v", err)
		}
	})
}
