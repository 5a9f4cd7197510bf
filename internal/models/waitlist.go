package models

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistEntry is a prospective sign-up captured by the consumer app's
// landing page. Entries are created by the app and only read here.
type WaitlistEntry struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	SubmittedAt *time.Time `json:"submitted_at"`
}

// SubmittedWithin reports whether the entry was submitted inside the given
// window ending at now. Entries without a timestamp are never counted.
func (w *WaitlistEntry) SubmittedWithin(window time.Duration, now time.Time) bool {
	if w.SubmittedAt == nil {
		return false
	}
	return !w.SubmittedAt.Before(now.Add(-window))
}
