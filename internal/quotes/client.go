// Package quotes implements the client for the external market-data
// feed. The accounting engine never fetches prices itself; this client
// is the collaborator that supplies the {stockId -> price} mapping the
// reporting layer consumes.
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stocknote/stock-dashboard-backend/internal/model"
)

// fetchConcurrency bounds the parallel per-symbol requests of FetchBatch.
const fetchConcurrency = 5

// Client fetches current prices from the remote quote API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a quote client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Fetch retrieves the current quote for a single symbol.
func (c *Client) Fetch(ctx context.Context, symbol string) (model.Quote, error) {
	endpoint := fmt.Sprintf("%s/quote?symbol=%s", c.baseURL, url.QueryEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to build quote request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Quote{}, fmt.Errorf("quote API returned status %d for %s", resp.StatusCode, symbol)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to read quote response: %w", err)
	}

	var parsed Response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return model.Quote{}, fmt.Errorf("failed to decode quote response: %w", err)
	}

	return model.Quote{
		StockID:   symbol,
		Name:      parsed.Name,
		Price:     parsed.Price,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// FetchBatch retrieves quotes for many symbols concurrently. Symbols
// the feed cannot price are skipped rather than failing the batch; the
// reporting layer tolerates missing entries. Only transport-level
// context cancellation aborts the whole fetch.
func (c *Client) FetchBatch(ctx context.Context, symbols []string) (map[string]model.Quote, error) {
	var mu sync.Mutex
	results := make(map[string]model.Quote, len(symbols))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			quote, err := c.Fetch(ctx, symbol)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				// Missing symbols are tolerated.
				return nil
			}
			mu.Lock()
			results[symbol] = quote
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
