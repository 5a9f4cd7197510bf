package jobs

import (
	"context"
	"log"
	"time"

	"detouradmin/internal/stats"
)

// StatsRefresher keeps the dashboard's aggregate snapshot warm in the
// background so page loads never pay for a full collection scan.
type StatsRefresher struct {
	svc      stats.Service
	interval time.Duration
}

// NewStatsRefresher creates a new stats refresher.
func NewStatsRefresher(svc stats.Service, interval time.Duration) *StatsRefresher {
	return &StatsRefresher{svc: svc, interval: interval}
}

// Start begins the background refresh loop.
func (r *StatsRefresher) Start(ctx context.Context) {
	log.Printf("Stats refresher started (interval: %v)", r.interval)

	// Run immediately on start
	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Stats refresher stopped")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *StatsRefresher) refresh(ctx context.Context) {
	if _, err := r.svc.Refresh(ctx); err != nil {
		log.Printf("Stats refresh failed: %v", err)
	}
}
