package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// AppUser is a registered user of the consumer app. Records are created by
// the app's signup flow and are read-only in the dashboard; they feed the
// user table and the aggregate stats.
type AppUser struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	DisplayName     string     `json:"display_name"`
	PhotoURL        string     `json:"photo_url"`
	TotalDistanceKm *float64   `json:"total_distance_km"`
	RegisteredAt    *time.Time `json:"registered_at"`
}

// DistanceKm returns the user's tracked distance, treating a missing or
// non-finite value as zero.
func (u *AppUser) DistanceKm() float64 {
	if u.TotalDistanceKm == nil {
		return 0
	}
	d := *u.TotalDistanceKm
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	return d
}

// RegisteredWithin reports whether the user registered inside the given
// window ending at now. Users without a timestamp are never counted.
func (u *AppUser) RegisteredWithin(window time.Duration, now time.Time) bool {
	if u.RegisteredAt == nil {
		return false
	}
	return !u.RegisteredAt.Before(now.Add(-window))
}
