package db

import (
	"context"
	"testing"
	"time"
)

func insertWaitlistEntry(t *testing.T, database *DB, email string, submittedAt *time.Time) {
	t.Helper()
	_, err := database.Pool.Exec(context.Background(), `
		INSERT INTO waitlist (email, submitted_at) VALUES ($1, $2)
	`, email, submittedAt)
	if err != nil {
		t.Fatalf("failed to insert waitlist entry: %v", err)
	}
}

func TestListWaitlistOrdering(t *testing.T) {
	database, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	defer database.Pool.Exec(ctx, "DELETE FROM waitlist")

	old := time.Now().Add(-48 * time.Hour)
	recent := time.Now().Add(-time.Hour)

	insertWaitlistEntry(t, database, "old@example.com", &old)
	insertWaitlistEntry(t, database, "untimestamped@example.com", nil)
	insertWaitlistEntry(t, database, "recent@example.com", &recent)

	entries, err := database.ListWaitlist(ctx)
	if err != nil {
		t.Fatalf("ListWaitlist: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	want := []string{"recent@example.com", "old@example.com", "untimestamped@example.com"}
	for i, email := range want {
		if entries[i].Email != email {
			t.Errorf("entries[%d] = %s, want %s (newest first, missing timestamps last)", i, entries[i].Email, email)
		}
	}
}
