package db

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"detouradmin/migrations"
)

// Collection names shared with the consumer app. Every read and write in
// the dashboard goes through these five collections.
const (
	CollectionUsers        = "users"
	CollectionWaitlist     = "waitlist"
	CollectionModeration   = "moderation_queue"
	CollectionVerifiedPois = "verified_pois"
	CollectionReviews      = "reviews"
)

// countable guards the generic count path against arbitrary identifiers.
var countable = map[string]bool{
	CollectionUsers:        true,
	CollectionWaitlist:     true,
	CollectionModeration:   true,
	CollectionVerifiedPois: true,
	CollectionReviews:      true,
}

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Ping checks database connectivity.
func (d *DB) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// CountCollection returns the total number of records in one of the fixed
// collections.
func (d *DB) CountCollection(ctx context.Context, collection string) (int64, error) {
	if !countable[collection] {
		return 0, fmt.Errorf("unknown collection %q", collection)
	}

	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+collection).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	return count, nil
}
