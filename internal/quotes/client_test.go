package quotes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newQuoteServer(t *testing.T, prices map[string]float64) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol := r.URL.Query().Get("symbol")
		price, ok := prices[symbol]
		if !ok {
			http.Error(w, "unknown symbol", http.StatusNotFound)
			return
		}
		//nolint:errcheck // Test server - encode failure would surface as a client error
		json.NewEncoder(w).Encode(Response{Symbol: symbol, Name: "Stock " + symbol, Price: price})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClient_Fetch(t *testing.T) {
	t.Run("returns quote for known symbol", func(t *testing.T) {
		server := newQuoteServer(t, map[string]float64{"2330": 580})
		client := NewClient(server.URL)

		quote, err := client.Fetch(context.Background(), "2330")
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}

		if quote.StockID != "2330" || quote.Price != 580 {
			t.Errorf("Unexpected quote: %+v", quote)
		}
		if quote.FetchedAt.IsZero() {
			t.Error("Expected FetchedAt to be set")
		}
	})

	t.Run("returns error on non-200 status", func(t *testing.T) {
		server := newQuoteServer(t, nil)
		client := NewClient(server.URL)

		_, err := client.Fetch(context.Background(), "9999")
		if err == nil {
			t.Error("Expected error for unknown symbol")
		}
	})
}

func TestClient_FetchBatch(t *testing.T) {
	t.Run("fetches all symbols concurrently", func(t *testing.T) {
		server := newQuoteServer(t, map[string]float64{"2330": 580, "2603": 150, "2303": 48.5})
		client := NewClient(server.URL)

		quotes, err := client.FetchBatch(context.Background(), []string{"2330", "2603", "2303"})
		if err != nil {
			t.Fatalf("FetchBatch failed: %v", err)
		}

		if len(quotes) != 3 {
			t.Fatalf("Expected 3 quotes, got %d", len(quotes))
		}
		if quotes["2303"].Price != 48.5 {
			t.Errorf("Expected 2303 at 48.5, got %f", quotes["2303"].Price)
		}
	})

	t.Run("skips symbols the feed cannot price", func(t *testing.T) {
		server := newQuoteServer(t, map[string]float64{"2330": 580})
		client := NewClient(server.URL)

		quotes, err := client.FetchBatch(context.Background(), []string{"2330", "9999"})
		if err != nil {
			t.Fatalf("FetchBatch failed: %v", err)
		}

		if len(quotes) != 1 {
			t.Errorf("Expected 1 quote, got %d", len(quotes))
		}
		if _, ok := quotes["9999"]; ok {
			t.Error("Expected unpriceable symbol to be skipped")
		}
	})

	t.Run("aborts on context cancellation", func(t *testing.T) {
		server := newQuoteServer(t, map[string]float64{"2330": 580})
		client := NewClient(server.URL)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.FetchBatch(ctx, []string{"2330"})
		if err == nil {
			t.Error("Expected error after cancellation")
		}
	})
}
