package service

import (
	"context"
	"log"
	"sync"

	"github.com/stocknote/stock-dashboard-backend/internal/model"
	"github.com/stocknote/stock-dashboard-backend/internal/quotes"
	"github.com/stocknote/stock-dashboard-backend/internal/repository"
)

// QuoteService caches the current-price map supplied by the external
// market-data feed. The accounting and reporting layers consume the
// cached {stockId -> price} mapping and tolerate missing entries; the
// refresh job keeps it warm in the background.
type QuoteService struct {
	client          *quotes.Client
	transactionRepo *repository.TransactionRepository

	mu    sync.RWMutex
	cache map[string]model.Quote
}

// NewQuoteService creates a new QuoteService. The client may be nil
// when no quote feed is configured; the price map is then simply empty
// and every holding is valued at cost.
func NewQuoteService(client *quotes.Client, transactionRepo *repository.TransactionRepository) *QuoteService {
	return &QuoteService{
		client:          client,
		transactionRepo: transactionRepo,
		cache:           make(map[string]model.Quote),
	}
}

// Prices returns the cached current-price mapping.
func (s *QuoteService) Prices() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prices := make(map[string]float64, len(s.cache))
	for id, q := range s.cache {
		prices[id] = q.Price
	}
	return prices
}

// Quotes returns the cached quotes for the requested symbols. Symbols
// without a cached quote are omitted.
func (s *QuoteService) Quotes(symbols []string) []model.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Quote, 0, len(symbols))
	for _, symbol := range symbols {
		if q, ok := s.cache[symbol]; ok {
			out = append(out, q)
		}
	}
	return out
}

// RefreshAll fetches fresh quotes for every symbol present in either
// ledger and swaps them into the cache. Symbols the feed cannot price
// keep their previous quote.
func (s *QuoteService) RefreshAll(ctx context.Context) error {
	if s.client == nil {
		return nil
	}

	symbols, err := s.symbols()
	if err != nil {
		return err
	}
	if len(symbols) == 0 {
		return nil
	}

	fetched, err := s.client.FetchBatch(ctx, symbols)
	if err != nil {
		return err
	}

	s.mu.Lock()
	for id, q := range fetched {
		s.cache[id] = q
	}
	s.mu.Unlock()

	log.Printf("Refreshed %d of %d quotes", len(fetched), len(symbols))
	return nil
}

// symbols unions the distinct stock IDs of the real and simulated books.
func (s *QuoteService) symbols() ([]string, error) {
	realSyms, err := s.transactionRepo.Symbols(model.BookReal)
	if err != nil {
		return nil, err
	}
	simSyms, err := s.transactionRepo.Symbols(model.BookSim)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(realSyms)+len(simSyms))
	union := make([]string, 0, len(realSyms)+len(simSyms))
	for _, id := range append(realSyms, simSyms...) {
		if !seen[id] {
			seen[id] = true
			union = append(union, id)
		}
	}
	return union, nil
}
