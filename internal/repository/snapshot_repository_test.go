package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stocknote/stock-dashboard-backend/internal/apperrors"
	"github.com/stocknote/stock-dashboard-backend/internal/model"
	"github.com/stocknote/stock-dashboard-backend/internal/testutil"
)

func snapshotFor(dateKey string) model.Snapshot {
	return model.Snapshot{
		DateKey: dateKey,
		SavedAt: time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
		Records: []model.Recommendation{
			{StockID: "2330", StockName: "TSMC", Action: "buy", Score: 0.92},
		},
	}
}

func TestSnapshotRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("first save wins, second is a no-op", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := NewSnapshotRepository(db)

		first := snapshotFor("2024-05-01")
		saved, err := repo.Save(ctx, first, 10)
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if !saved {
			t.Error("Expected first save to be recorded")
		}

		second := snapshotFor("2024-05-01")
		second.Records = []model.Recommendation{{StockID: "9999", Action: "sell"}}
		saved, err = repo.Save(ctx, second, 10)
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if saved {
			t.Error("Expected second save for same date to be a no-op")
		}

		got, err := repo.Get("2024-05-01")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if len(got.Records) != 1 || got.Records[0].StockID != "2330" {
			t.Errorf("Expected first payload kept, got %+v", got.Records)
		}
	})

	t.Run("retention evicts oldest date keys", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := NewSnapshotRepository(db)

		for d := 1; d <= 5; d++ {
			key := fmt.Sprintf("2024-05-%02d", d)
			if _, err := repo.Save(ctx, snapshotFor(key), 3); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
		}

		dates, err := repo.ListDates()
		if err != nil {
			t.Fatalf("ListDates failed: %v", err)
		}
		if len(dates) != 3 {
			t.Fatalf("Expected retention to cap at 3 dates, got %v", dates)
		}
		if dates[0] != "2024-05-05" || dates[2] != "2024-05-03" {
			t.Errorf("Expected newest-first [05 04 03], got %v", dates)
		}

		if _, err := repo.Get("2024-05-01"); !errors.Is(err, apperrors.ErrSnapshotNotFound) {
			t.Errorf("Expected oldest snapshot evicted, got %v", err)
		}
	})
}

func TestSnapshotRepository_Get(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSnapshotRepository(db)

	_, err := repo.Get("2024-01-01")
	if !errors.Is(err, apperrors.ErrSnapshotNotFound) {
		t.Errorf("Expected ErrSnapshotNotFound, got %v", err)
	}
}
