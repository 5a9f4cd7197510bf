package moderation

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"detouradmin/internal/db"
	"detouradmin/internal/models"
	"detouradmin/internal/validation"
)

// BeforeState describes the outcome of fetching the published record an
// edit proposal is compared against.
type BeforeState int

const (
	// BeforeNone: a new_poi proposal; there is no prior record by definition.
	BeforeNone BeforeState = iota
	// BeforeFound: the target POI was fetched and a normal diff applies.
	BeforeFound
	// BeforeNotFound: the proposal references a POI that no longer exists.
	BeforeNotFound
	// BeforeError: the fetch itself failed.
	BeforeError
)

// PoiGetter is the slice of the store the review step needs.
type PoiGetter interface {
	GetPoiByID(ctx context.Context, id uuid.UUID) (*models.VerifiedPoi, error)
}

// Review is everything the review modal renders for one proposal.
type Review struct {
	Proposal *models.Proposal
	Original *models.VerifiedPoi // nil unless State is BeforeFound
	State    BeforeState
	Diff     []FieldDiff

	// CoordWarning is set when the suggested position is off the globe,
	// so the operator sees it before approving.
	CoordWarning string
}

// BuildReview assembles the review for a proposal. For edit proposals the
// target POI is fetched; a missing or unreadable target never fails the
// review, it just renders as an explicit state instead of a before column.
func BuildReview(ctx context.Context, store PoiGetter, p *models.Proposal) *Review {
	r := &Review{Proposal: p, State: BeforeNone}

	if p.IsEdit() {
		if p.TargetPoiID == nil {
			r.State = BeforeNotFound
		} else {
			original, err := store.GetPoiByID(ctx, *p.TargetPoiID)
			switch {
			case errors.Is(err, db.ErrPoiNotFound):
				r.State = BeforeNotFound
			case err != nil:
				r.State = BeforeError
			default:
				r.State = BeforeFound
				r.Original = original
			}
		}
	}

	r.Diff = ComputeDiff(r.Original, p)

	if p.SuggestedLatitude != nil || p.SuggestedLongitude != nil {
		lat, lon := 0.0, 0.0
		if p.SuggestedLatitude != nil {
			lat = *p.SuggestedLatitude
		}
		if p.SuggestedLongitude != nil {
			lon = *p.SuggestedLongitude
		}
		if ok, msg := validation.ValidateCoordinates(lat, lon); !ok {
			r.CoordWarning = msg
		}
	}

	return r
}

// IsNew reports whether the review is for a brand-new POI (no before column).
func (r *Review) IsNew() bool {
	return r.State == BeforeNone
}

// OriginalFound reports whether the published record was fetched.
func (r *Review) OriginalFound() bool {
	return r.State == BeforeFound
}

// OriginalMissing reports whether the proposal targets a POI that no
// longer exists.
func (r *Review) OriginalMissing() bool {
	return r.State == BeforeNotFound
}

// OriginalErrored reports whether the fetch of the published record failed.
func (r *Review) OriginalErrored() bool {
	return r.State == BeforeError
}
