package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"detouradmin/internal/models"
)

// ListWaitlist returns every waitlist entry, newest first. Entries without
// a submission timestamp sort as epoch zero, i.e. last.
func (d *DB) ListWaitlist(ctx context.Context) ([]models.WaitlistEntry, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, email, submitted_at
		FROM waitlist
		ORDER BY COALESCE(submitted_at, 'epoch'::timestamptz) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.WaitlistEntry
	for rows.Next() {
		var e models.WaitlistEntry
		if err := rows.Scan(&e.ID, &e.Email, &e.SubmittedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetWaitlistEntryByID retrieves a single waitlist entry.
func (d *DB) GetWaitlistEntryByID(ctx context.Context, id uuid.UUID) (*models.WaitlistEntry, error) {
	var e models.WaitlistEntry
	err := d.Pool.QueryRow(ctx, `
		SELECT id, email, submitted_at FROM waitlist WHERE id = $1
	`, id).Scan(&e.ID, &e.Email, &e.SubmittedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWaitlistEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
