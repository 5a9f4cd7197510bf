package stats

import (
	"math"
	"testing"
	"time"

	"detouradmin/internal/models"
)

func timePtr(t time.Time) *time.Time { return &t }
func f64Ptr(f float64) *float64      { return &f }

func TestCountWaitlist24hWindow(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		submitted *time.Time
		fresh     int64
	}{
		{"23h ago counts as new", timePtr(now.Add(-23 * time.Hour)), 1},
		{"25h ago does not", timePtr(now.Add(-25 * time.Hour)), 0},
		{"exactly 24h ago counts", timePtr(now.Add(-24 * time.Hour)), 1},
		{"missing timestamp never counts", nil, 0},
		{"future timestamp counts", timePtr(now.Add(time.Hour)), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []models.WaitlistEntry{{Email: "a@example.com", SubmittedAt: tt.submitted}}
			total, fresh := countWaitlist(entries, now)
			if total != 1 {
				t.Errorf("total = %d, want 1", total)
			}
			if fresh != tt.fresh {
				t.Errorf("fresh = %d, want %d", fresh, tt.fresh)
			}
		})
	}
}

func TestCountUsersDistanceSum(t *testing.T) {
	now := time.Now()

	users := []models.AppUser{
		{TotalDistanceKm: f64Ptr(10.3)},
		{TotalDistanceKm: f64Ptr(5.4)},
		{TotalDistanceKm: nil},            // missing -> 0
		{TotalDistanceKm: f64Ptr(math.NaN())}, // non-numeric -> 0
	}

	total, _, distance := countUsers(users, now)
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	// 10.3 + 5.4 = 15.7, rounds to 16
	if distance != 16 {
		t.Errorf("distance = %d, want 16", distance)
	}
}

func TestCountUsers24hWindow(t *testing.T) {
	now := time.Now()
	users := []models.AppUser{
		{RegisteredAt: timePtr(now.Add(-time.Hour))},
		{RegisteredAt: timePtr(now.Add(-48 * time.Hour))},
		{RegisteredAt: nil},
	}

	total, fresh, _ := countUsers(users, now)
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if fresh != 1 {
		t.Errorf("fresh = %d, want 1", fresh)
	}
}

func TestCountEmptyCollections(t *testing.T) {
	now := time.Now()

	if total, fresh := countWaitlist(nil, now); total != 0 || fresh != 0 {
		t.Errorf("countWaitlist(nil) = %d, %d, want zeros", total, fresh)
	}
	if total, fresh, dist := countUsers(nil, now); total != 0 || fresh != 0 || dist != 0 {
		t.Errorf("countUsers(nil) = %d, %d, %d, want zeros", total, fresh, dist)
	}
}
