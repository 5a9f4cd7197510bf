// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"detouradmin/internal/db"
	"detouradmin/internal/models"
)

// TestDB creates a test database connection and returns a cleanup function.
// Skips the test unless TEST_DATABASE_URL is set.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	cleanup := func() {
		cleanupTestData(ctx, database.Pool)
		database.Close()
	}

	return database, cleanup
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, pool *pgxpool.Pool) {
	pool.Exec(ctx, "DELETE FROM reviews")
	pool.Exec(ctx, "DELETE FROM moderation_queue")
	pool.Exec(ctx, "DELETE FROM verified_pois")
	pool.Exec(ctx, "DELETE FROM waitlist")
	pool.Exec(ctx, "DELETE FROM users")
}

// CreateTestWaitlistEntry inserts a waitlist entry and returns its ID.
func CreateTestWaitlistEntry(t *testing.T, database *db.DB, email string, submittedAt *time.Time) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := database.Pool.QueryRow(ctx, `
		INSERT INTO waitlist (email, submitted_at)
		VALUES ($1, $2)
		RETURNING id
	`, email, submittedAt).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test waitlist entry: %v", err)
	}
	return id
}

// CreateTestAppUser inserts a registered user and returns its ID.
func CreateTestAppUser(t *testing.T, database *db.DB, email, displayName string, distanceKm *float64) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := database.Pool.QueryRow(ctx, `
		INSERT INTO users (email, display_name, total_distance_km, registered_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`, email, displayName, distanceKm).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return id
}

// CreateTestPoi inserts a verified POI and returns its ID.
func CreateTestPoi(t *testing.T, database *db.DB, name, category string, lat, lon float64) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := database.Pool.QueryRow(ctx, `
		INSERT INTO verified_pois (name, category, latitude, longitude)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, name, category, lat, lon).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test poi: %v", err)
	}
	return id
}

// CreateTestProposal inserts a moderation proposal and returns its ID.
func CreateTestProposal(t *testing.T, database *db.DB, p *models.Proposal) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	status := p.Status
	if status == "" {
		status = models.StatusPending
	}

	var id uuid.UUID
	err := database.Pool.QueryRow(ctx, `
		INSERT INTO moderation_queue
			(type, status, target_poi_id, author_user_id,
			 suggested_name, suggested_description, suggested_category, suggested_type,
			 suggested_latitude, suggested_longitude,
			 suggested_name_new, suggested_description_new)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`, p.Type, status, p.TargetPoiID, p.AuthorUserID,
		p.SuggestedName, p.SuggestedDescription, p.SuggestedCategory, p.SuggestedType,
		p.SuggestedLatitude, p.SuggestedLongitude,
		p.LegacyName, p.LegacyDescription,
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test proposal: %v", err)
	}
	return id
}
