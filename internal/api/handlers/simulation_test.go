package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stocknote/stock-dashboard-backend/internal/accounting"
	"github.com/stocknote/stock-dashboard-backend/internal/model"
	"github.com/stocknote/stock-dashboard-backend/internal/repository"
	"github.com/stocknote/stock-dashboard-backend/internal/service"
	"github.com/stocknote/stock-dashboard-backend/internal/testutil"
)

const simTestCapital = 1000000

func setupSimulationHandler(t *testing.T) (*SimulationHandler, *sql.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	transactionRepo := repository.NewTransactionRepository(db)
	ss := service.NewSimulationService(
		repository.NewSimulationRepository(db),
		transactionRepo,
		accounting.NewCalculator(accounting.DefaultFeeRate, accounting.DefaultSellTaxRate),
		simTestCapital,
	)
	if err := ss.Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	qs := service.NewQuoteService(nil, transactionRepo)
	return NewSimulationHandler(ss, qs), db
}

func TestSimulationHandler_Status(t *testing.T) {
	t.Run("returns fresh portfolio with initial capital", func(t *testing.T) {
		handler, _ := setupSimulationHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/simulation", nil)
		w := httptest.NewRecorder()

		handler.Status(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.SimulationStatus
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Cash != simTestCapital {
			t.Errorf("Expected cash %d, got %d", simTestCapital, response.Cash)
		}
		if len(response.Holdings) != 0 {
			t.Errorf("Expected no holdings, got %d", len(response.Holdings))
		}
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		handler, db := setupSimulationHandler(t)
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/simulation", nil)
		w := httptest.NewRecorder()

		handler.Status(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestSimulationHandler_Buy(t *testing.T) {
	t.Run("executes purchase and returns trade result", func(t *testing.T) {
		handler, _ := setupSimulationHandler(t)

		body := `{
			"stockId": "2330",
			"stockName": "TSMC",
			"shares": 1000,
			"price": 580
		}`

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/simulation/buy", body)
		w := httptest.NewRecorder()

		handler.Buy(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.TradeResult
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Amount != 580000 || response.Fee != 826 {
			t.Errorf("Expected amount 580000 fee 826, got %+v", response)
		}
		if response.Cash != simTestCapital-580826 {
			t.Errorf("Expected cash %d, got %d", simTestCapital-580826, response.Cash)
		}
	})

	t.Run("returns 422 when cash cannot cover the purchase", func(t *testing.T) {
		handler, _ := setupSimulationHandler(t)

		body := `{
			"stockId": "2330",
			"shares": 2000,
			"price": 580
		}`

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/simulation/buy", body)
		w := httptest.NewRecorder()

		handler.Buy(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("Expected 422, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 on non-positive shares", func(t *testing.T) {
		handler, _ := setupSimulationHandler(t)

		body := `{
			"stockId": "2330",
			"shares": 0,
			"price": 580
		}`

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/simulation/buy", body)
		w := httptest.NewRecorder()

		handler.Buy(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 on invalid JSON", func(t *testing.T) {
		handler, _ := setupSimulationHandler(t)

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/simulation/buy", "invalid json")
		w := httptest.NewRecorder()

		handler.Buy(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestSimulationHandler_Sell(t *testing.T) {
	buy := func(t *testing.T, handler *SimulationHandler, body string) {
		t.Helper()
		req := testutil.NewRequestWithBody(http.MethodPost, "/api/simulation/buy", body)
		w := httptest.NewRecorder()
		handler.Buy(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Setup buy failed: %d: %s", w.Code, w.Body.String())
		}
	}

	t.Run("executes sale and reports realized pnl", func(t *testing.T) {
		handler, _ := setupSimulationHandler(t)

		buy(t, handler, `{"stockId": "2330", "shares": 1000, "price": 100}`)

		body := `{
			"stockId": "2330",
			"shares": 500,
			"price": 130
		}`

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/simulation/sell", body)
		w := httptest.NewRecorder()

		handler.Sell(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.TradeResult
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Amount != 65000 || response.Fee != 92 || response.Tax != 195 {
			t.Errorf("Unexpected amounts: %+v", response)
		}
		if response.RealizedPnL != 14713 {
			t.Errorf("Expected realized pnl 14713, got %f", response.RealizedPnL)
		}
	})

	t.Run("returns 422 when position lacks coverage", func(t *testing.T) {
		handler, _ := setupSimulationHandler(t)

		body := `{
			"stockId": "2330",
			"shares": 100,
			"price": 100
		}`

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/simulation/sell", body)
		w := httptest.NewRecorder()

		handler.Sell(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("Expected 422, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestSimulationHandler_Reset(t *testing.T) {
	handler, _ := setupSimulationHandler(t)

	buyReq := testutil.NewRequestWithBody(http.MethodPost, "/api/simulation/buy",
		`{"stockId": "2330", "shares": 1000, "price": 100}`)
	buyW := httptest.NewRecorder()
	handler.Buy(buyW, buyReq)
	if buyW.Code != http.StatusCreated {
		t.Fatalf("Setup buy failed: %d", buyW.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/simulation/reset", nil)
	w := httptest.NewRecorder()

	handler.Reset(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d: %s", w.Code, w.Body.String())
	}

	statusReq := httptest.NewRequest(http.MethodGet, "/api/simulation", nil)
	statusW := httptest.NewRecorder()
	handler.Status(statusW, statusReq)

	var status model.SimulationStatus
	//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
	json.NewDecoder(statusW.Body).Decode(&status)

	if status.Cash != simTestCapital {
		t.Errorf("Expected cash restored to %d, got %d", simTestCapital, status.Cash)
	}
	if len(status.Holdings) != 0 {
		t.Errorf("Expected holdings cleared, got %d", len(status.Holdings))
	}
}

func TestSimulationHandler_Transactions(t *testing.T) {
	t.Run("returns empty array for fresh simulation", func(t *testing.T) {
		handler, _ := setupSimulationHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/simulation/transactions", nil)
		w := httptest.NewRecorder()

		handler.Transactions(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response == nil {
			t.Error("Expected non-nil array, got nil")
		}
	})

	t.Run("records executed trades", func(t *testing.T) {
		handler, _ := setupSimulationHandler(t)

		buyReq := testutil.NewRequestWithBody(http.MethodPost, "/api/simulation/buy",
			`{"stockId": "2330", "shares": 1000, "price": 100}`)
		buyW := httptest.NewRecorder()
		handler.Buy(buyW, buyReq)
		if buyW.Code != http.StatusCreated {
			t.Fatalf("Setup buy failed: %d", buyW.Code)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/simulation/transactions", nil)
		w := httptest.NewRecorder()

		handler.Transactions(w, req)

		var response []model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 1 || response[0].Type != model.TransactionBuy {
			t.Errorf("Expected one recorded buy, got %+v", response)
		}
	})
}
