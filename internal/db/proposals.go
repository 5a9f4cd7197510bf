package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"detouradmin/internal/models"
)

const proposalColumns = `
	id, type, status, target_poi_id, author_user_id,
	suggested_name, suggested_description, suggested_category, suggested_type,
	suggested_latitude, suggested_longitude,
	suggested_name_new, suggested_description_new,
	created_at
`

// ListPendingProposals returns all proposals awaiting a decision, oldest
// first. This is the only server-side filter the dashboard uses.
func (d *DB) ListPendingProposals(ctx context.Context) ([]models.Proposal, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT `+proposalColumns+`
		FROM moderation_queue
		WHERE status = $1
		ORDER BY created_at ASC
	`, models.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var proposals []models.Proposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, *p)
	}
	return proposals, rows.Err()
}

// GetProposalByID retrieves a single proposal regardless of status.
func (d *DB) GetProposalByID(ctx context.Context, id uuid.UUID) (*models.Proposal, error) {
	row := d.Pool.QueryRow(ctx, `
		SELECT `+proposalColumns+`
		FROM moderation_queue WHERE id = $1
	`, id)

	p, err := scanProposal(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProposalNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// DecideProposal writes a terminal status onto a pending proposal. The
// update is guarded on the current status, so only pending -> approved and
// pending -> rejected transitions ever happen. Returns true when a row was
// transitioned; false when the proposal was already decided (a no-op, not
// an error). A missing proposal returns ErrProposalNotFound.
//
// Deliberately a single-row, single-field update: approval does not touch
// verified_pois. Promotion of an approved proposal into the canonical
// record is a separate publishing step owned elsewhere.
func (d *DB) DecideProposal(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	result, err := d.Pool.Exec(ctx, `
		UPDATE moderation_queue
		SET status = $1
		WHERE id = $2 AND status = $3
	`, status, id, models.StatusPending)
	if err != nil {
		return false, err
	}
	if result.RowsAffected() > 0 {
		return true, nil
	}

	// No row moved: either the proposal is already decided or it does not
	// exist. Distinguish the two for the caller.
	var existing string
	err = d.Pool.QueryRow(ctx, `
		SELECT status FROM moderation_queue WHERE id = $1
	`, id).Scan(&existing)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrProposalNotFound
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// CountPendingProposals returns the size of the active moderation queue.
func (d *DB) CountPendingProposals(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM moderation_queue WHERE status = $1
	`, models.StatusPending).Scan(&count)
	return count, err
}

// CountApprovedByType returns approved proposal counts partitioned by
// proposal type.
func (d *DB) CountApprovedByType(ctx context.Context) (map[string]int64, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT type, COUNT(*) FROM moderation_queue
		WHERE status = $1
		GROUP BY type
	`, models.StatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var typ string
		var count int64
		if err := rows.Scan(&typ, &count); err != nil {
			return nil, err
		}
		counts[typ] = count
	}
	return counts, rows.Err()
}

// scanProposal scans a proposal row and normalizes legacy field variants
// so callers only ever see the current suggested fields.
func scanProposal(row pgx.Row) (*models.Proposal, error) {
	var p models.Proposal
	err := row.Scan(
		&p.ID, &p.Type, &p.Status, &p.TargetPoiID, &p.AuthorUserID,
		&p.SuggestedName, &p.SuggestedDescription, &p.SuggestedCategory, &p.SuggestedType,
		&p.SuggestedLatitude, &p.SuggestedLongitude,
		&p.LegacyName, &p.LegacyDescription,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Normalize()
	return &p, nil
}
