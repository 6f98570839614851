package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stocknote/stock-dashboard-backend/internal/model"
	"github.com/stocknote/stock-dashboard-backend/internal/repository"
	"github.com/stocknote/stock-dashboard-backend/internal/service"
	"github.com/stocknote/stock-dashboard-backend/internal/testutil"
)

func setupSnapshotHandler(t *testing.T) (*SnapshotHandler, *sql.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	ss := service.NewSnapshotService(repository.NewSnapshotRepository(db), 10, 50)
	return NewSnapshotHandler(ss), db
}

const snapshotBody = `{
	"dateKey": "2024-05-01",
	"records": [
		{"stockId": "2330", "stockName": "TSMC", "score": 87.5, "reason": "strong momentum"},
		{"stockId": "2603", "stockName": "Evergreen", "score": 74.2, "reason": "sector rotation"}
	]
}`

func TestSnapshotHandler_Save(t *testing.T) {
	t.Run("first save returns 201 with saved true", func(t *testing.T) {
		handler, _ := setupSnapshotHandler(t)

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/snapshot", snapshotBody)
		w := httptest.NewRecorder()

		handler.Save(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response SaveResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if !response.Saved || response.DateKey != "2024-05-01" {
			t.Errorf("Expected saved snapshot for 2024-05-01, got %+v", response)
		}
	})

	t.Run("second save for same date returns 200 with saved false", func(t *testing.T) {
		handler, _ := setupSnapshotHandler(t)

		first := httptest.NewRecorder()
		handler.Save(first, testutil.NewRequestWithBody(http.MethodPost, "/api/snapshot", snapshotBody))
		if first.Code != http.StatusCreated {
			t.Fatalf("Setup save failed: %d", first.Code)
		}

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/snapshot", snapshotBody)
		w := httptest.NewRecorder()

		handler.Save(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response SaveResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Saved {
			t.Error("Expected saved false on repeat save")
		}
	})

	t.Run("returns 400 on malformed date key", func(t *testing.T) {
		handler, _ := setupSnapshotHandler(t)

		body := `{"dateKey": "01-05-2024", "records": []}`

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/snapshot", body)
		w := httptest.NewRecorder()

		handler.Save(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 on invalid JSON", func(t *testing.T) {
		handler, _ := setupSnapshotHandler(t)

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/snapshot", "invalid json")
		w := httptest.NewRecorder()

		handler.Save(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestSnapshotHandler_Get(t *testing.T) {
	t.Run("returns snapshot with original payload", func(t *testing.T) {
		handler, _ := setupSnapshotHandler(t)

		saveW := httptest.NewRecorder()
		handler.Save(saveW, testutil.NewRequestWithBody(http.MethodPost, "/api/snapshot", snapshotBody))
		if saveW.Code != http.StatusCreated {
			t.Fatalf("Setup save failed: %d", saveW.Code)
		}

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/snapshot/2024-05-01",
			map[string]string{"date": "2024-05-01"},
		)
		w := httptest.NewRecorder()

		handler.Get(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Snapshot
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.DateKey != "2024-05-01" || len(response.Records) != 2 {
			t.Errorf("Unexpected snapshot: %+v", response)
		}
		if response.Records[0].StockID != "2330" {
			t.Errorf("Expected first record 2330, got %s", response.Records[0].StockID)
		}
	})

	t.Run("returns 404 when no snapshot exists for the date", func(t *testing.T) {
		handler, _ := setupSnapshotHandler(t)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/snapshot/2024-05-01",
			map[string]string{"date": "2024-05-01"},
		)
		w := httptest.NewRecorder()

		handler.Get(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		handler, _ := setupSnapshotHandler(t)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/snapshot/yesterday",
			map[string]string{"date": "yesterday"},
		)
		w := httptest.NewRecorder()

		handler.Get(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestSnapshotHandler_ListDates(t *testing.T) {
	t.Run("returns empty array when nothing recorded", func(t *testing.T) {
		handler, _ := setupSnapshotHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/snapshot", nil)
		w := httptest.NewRecorder()

		handler.ListDates(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []string
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response == nil {
			t.Error("Expected non-nil array, got nil")
		}
	})

	t.Run("returns dates newest first", func(t *testing.T) {
		handler, _ := setupSnapshotHandler(t)

		for _, date := range []string{"2024-05-01", "2024-05-03", "2024-05-02"} {
			body := `{"dateKey": "` + date + `", "records": [{"stockId": "2330"}]}`
			w := httptest.NewRecorder()
			handler.Save(w, testutil.NewRequestWithBody(http.MethodPost, "/api/snapshot", body))
			if w.Code != http.StatusCreated {
				t.Fatalf("Setup save for %s failed: %d", date, w.Code)
			}
		}

		req := httptest.NewRequest(http.MethodGet, "/api/snapshot", nil)
		w := httptest.NewRecorder()

		handler.ListDates(w, req)

		var response []string
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		want := []string{"2024-05-03", "2024-05-02", "2024-05-01"}
		if len(response) != len(want) {
			t.Fatalf("Expected %d dates, got %d", len(want), len(response))
		}
		for i := range want {
			if response[i] != want[i] {
				t.Errorf("Expected %s at position %d, got %s", want[i], i, response[i])
			}
		}
	})
}
