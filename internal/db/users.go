package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"detouradmin/internal/models"
)

// ListAppUsers returns every registered app user, newest first.
func (d *DB) ListAppUsers(ctx context.Context) ([]models.AppUser, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, email, display_name, photo_url, total_distance_km, registered_at
		FROM users
		ORDER BY COALESCE(registered_at, 'epoch'::timestamptz) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.AppUser
	for rows.Next() {
		var u models.AppUser
		if err := rows.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PhotoURL, &u.TotalDistanceKm, &u.RegisteredAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetAppUserByID retrieves a single registered user.
func (d *DB) GetAppUserByID(ctx context.Context, id uuid.UUID) (*models.AppUser, error) {
	var u models.AppUser
	err := d.Pool.QueryRow(ctx, `
		SELECT id, email, display_name, photo_url, total_distance_km, registered_at
		FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Email, &u.DisplayName, &u.PhotoURL, &u.TotalDistanceKm, &u.RegisteredAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
