// Package scheduler runs the background quote-refresh job on a cron
// schedule so the dashboard's price map stays warm during trading
// hours.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/stocknote/stock-dashboard-backend/internal/service"
)

// refreshTimeout bounds one refresh run so a stalled feed cannot pile
// up overlapping jobs.
const refreshTimeout = 2 * time.Minute

// Scheduler owns the cron runner for periodic background jobs.
type Scheduler struct {
	cron         *cron.Cron
	quoteService *service.QuoteService
}

// New creates a Scheduler wired to the quote service.
func New(quoteService *service.QuoteService) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		quoteService: quoteService,
	}
}

// Start registers the quote-refresh job with the given cron spec and
// starts the runner. An immediate first refresh warms the cache
// without waiting for the first tick.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, s.refresh)
	if err != nil {
		return err
	}

	go s.refresh()

	s.cron.Start()
	log.Printf("Quote refresh scheduled: %s", spec)
	return nil
}

// Stop halts the cron runner and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := s.quoteService.RefreshAll(ctx); err != nil {
		log.Printf("Quote refresh failed: %v", err)
	}
}
