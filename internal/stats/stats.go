// Package stats is the dashboard's read model: collection-wide aggregates
// behind a service boundary, so the scan-based strategy can be swapped for
// precomputed rollups without touching the handlers.
package stats

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"detouradmin/internal/db"
	"detouradmin/internal/models"
)

// NewWindow is the lookback used for the "new" counters.
const NewWindow = 24 * time.Hour

// Summary is one aggregation pass over the five collections.
type Summary struct {
	WaitlistCount int64 `json:"waitlist_count"`
	UserCount     int64 `json:"user_count"`
	PoiCount      int64 `json:"poi_count"`
	ReviewCount   int64 `json:"review_count"`
	PendingCount  int64 `json:"pending_count"`

	WaitlistNew24h int64 `json:"waitlist_new_24h"`
	UsersNew24h    int64 `json:"users_new_24h"`

	// Sum of user distances, rounded to the nearest whole kilometre.
	TotalDistanceKm int64 `json:"total_distance_km"`

	ApprovedNewPoi  int64 `json:"approved_new_poi"`
	ApprovedEditPoi int64 `json:"approved_edit_poi"`

	TakenAt time.Time `json:"taken_at"`
}

// Service exposes the read model to the dashboard and the metrics exporter.
type Service interface {
	// Snapshot returns the cached summary, computing one if none exists.
	Snapshot(ctx context.Context) (Summary, error)
	// Refresh recomputes the summary and replaces the cache.
	Refresh(ctx context.Context) (Summary, error)
}

// Aggregator computes summaries by scanning the collections. Read failures
// are logged and leave their slice of the summary zero-valued; the
// dashboard is diagnostic, not a system of record.
type Aggregator struct {
	db *db.DB

	mu     sync.RWMutex
	cached *Summary
}

// New creates an aggregator over the given store.
func New(database *db.DB) *Aggregator {
	return &Aggregator{db: database}
}

// Snapshot returns the cached summary, computing one on first use.
func (a *Aggregator) Snapshot(ctx context.Context) (Summary, error) {
	a.mu.RLock()
	cached := a.cached
	a.mu.RUnlock()

	if cached != nil {
		return *cached, nil
	}
	return a.Refresh(ctx)
}

// Refresh recomputes all aggregates and replaces the cached summary.
func (a *Aggregator) Refresh(ctx context.Context) (Summary, error) {
	s := a.aggregate(ctx, time.Now())

	a.mu.Lock()
	a.cached = &s
	a.mu.Unlock()

	return s, nil
}

// aggregate issues the collection reads concurrently and folds the results.
func (a *Aggregator) aggregate(ctx context.Context, now time.Time) Summary {
	s := Summary{TakenAt: now}

	var wg sync.WaitGroup
	var mu sync.Mutex

	read := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				slog.Error("stats read failed", "collection", name, "error", err)
			}
		}()
	}

	read(db.CollectionWaitlist, func() error {
		entries, err := a.db.ListWaitlist(ctx)
		if err != nil {
			return err
		}
		count, fresh := countWaitlist(entries, now)
		mu.Lock()
		s.WaitlistCount, s.WaitlistNew24h = count, fresh
		mu.Unlock()
		return nil
	})

	read(db.CollectionUsers, func() error {
		users, err := a.db.ListAppUsers(ctx)
		if err != nil {
			return err
		}
		count, fresh, distance := countUsers(users, now)
		mu.Lock()
		s.UserCount, s.UsersNew24h, s.TotalDistanceKm = count, fresh, distance
		mu.Unlock()
		return nil
	})

	read(db.CollectionVerifiedPois, func() error {
		count, err := a.db.CountCollection(ctx, db.CollectionVerifiedPois)
		if err != nil {
			return err
		}
		mu.Lock()
		s.PoiCount = count
		mu.Unlock()
		return nil
	})

	read(db.CollectionReviews, func() error {
		count, err := a.db.CountCollection(ctx, db.CollectionReviews)
		if err != nil {
			return err
		}
		mu.Lock()
		s.ReviewCount = count
		mu.Unlock()
		return nil
	})

	read(db.CollectionModeration, func() error {
		pending, err := a.db.CountPendingProposals(ctx)
		if err != nil {
			return err
		}
		approved, err := a.db.CountApprovedByType(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		s.PendingCount = pending
		s.ApprovedNewPoi = approved[models.ProposalTypeNewPoi]
		s.ApprovedEditPoi = approved[models.ProposalTypeEditPoi]
		mu.Unlock()
		return nil
	})

	wg.Wait()
	return s
}

// countWaitlist returns the total and the count of entries submitted inside
// the last NewWindow. Entries without a timestamp never count as new.
func countWaitlist(entries []models.WaitlistEntry, now time.Time) (total, fresh int64) {
	total = int64(len(entries))
	for i := range entries {
		if entries[i].SubmittedWithin(NewWindow, now) {
			fresh++
		}
	}
	return total, fresh
}

// countUsers returns the total, the 24h-new count, and the distance sum
// rounded to the nearest integer. Missing or non-numeric distances count
// as zero.
func countUsers(users []models.AppUser, now time.Time) (total, fresh, distanceKm int64) {
	var sum float64
	total = int64(len(users))
	for i := range users {
		if users[i].RegisteredWithin(NewWindow, now) {
			fresh++
		}
		sum += users[i].DistanceKm()
	}
	return total, fresh, int64(math.Round(sum))
}
