package models

import (
	"time"

	"github.com/google/uuid"
)

// Proposal types.
const (
	ProposalTypeNewPoi  = "new_poi"
	ProposalTypeEditPoi = "edit_poi"
)

// Proposal statuses. Transitions only ever go pending -> approved or
// pending -> rejected; decided proposals leave the active queue for good.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Proposal is a user-submitted suggestion to add or edit a point of
// interest, awaiting an operator decision. Only the status field is ever
// mutated by the dashboard.
type Proposal struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`   // new_poi, edit_poi
	Status       string     `json:"status"` // pending, approved, rejected
	TargetPoiID  *uuid.UUID `json:"target_poi_id"` // set iff type is edit_poi
	AuthorUserID *uuid.UUID `json:"author_user_id"`

	SuggestedName        *string  `json:"suggested_name"`
	SuggestedDescription *string  `json:"suggested_description"`
	SuggestedCategory    *string  `json:"suggested_category"`
	SuggestedType        *string  `json:"suggested_type"`
	SuggestedLatitude    *float64 `json:"suggested_latitude"`
	SuggestedLongitude   *float64 `json:"suggested_longitude"`

	// Legacy columns written by older producers. Normalize folds them into
	// the current fields; they are never read anywhere else.
	LegacyName        *string `json:"-"`
	LegacyDescription *string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Normalize folds legacy field variants into the current suggested fields.
// Precedence: the current column wins when it carries a non-empty value;
// otherwise the legacy column is promoted. Called once at the store
// boundary so the rest of the code only ever sees the current fields.
func (p *Proposal) Normalize() {
	p.SuggestedName = preferNonEmpty(p.SuggestedName, p.LegacyName)
	p.SuggestedDescription = preferNonEmpty(p.SuggestedDescription, p.LegacyDescription)
	p.LegacyName = nil
	p.LegacyDescription = nil
}

// IsEdit reports whether the proposal targets an existing VerifiedPoi.
func (p *Proposal) IsEdit() bool {
	return p.Type == ProposalTypeEditPoi
}

// IsPending reports whether the proposal is still awaiting a decision.
func (p *Proposal) IsPending() bool {
	return p.Status == StatusPending
}

// DisplayName returns the suggested name for list views, or a placeholder
// when the proposal carries none.
func (p *Proposal) DisplayName() string {
	if p.SuggestedName != nil && *p.SuggestedName != "" {
		return *p.SuggestedName
	}
	return "(unnamed)"
}

// ValidDecision reports whether s is a terminal status an operator may
// assign to a pending proposal.
func ValidDecision(s string) bool {
	return s == StatusApproved || s == StatusRejected
}

func preferNonEmpty(current, legacy *string) *string {
	if current != nil && *current != "" {
		return current
	}
	if legacy != nil && *legacy != "" {
		return legacy
	}
	return current
}
