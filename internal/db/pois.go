package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"detouradmin/internal/models"
)

// GetPoiByID retrieves a verified POI, the "current truth" an edit proposal
// is diffed against.
func (d *DB) GetPoiByID(ctx context.Context, id uuid.UUID) (*models.VerifiedPoi, error) {
	var p models.VerifiedPoi
	err := d.Pool.QueryRow(ctx, `
		SELECT id, name, description, category, type, latitude, longitude
		FROM verified_pois WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Type, &p.Latitude, &p.Longitude)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPoiNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
