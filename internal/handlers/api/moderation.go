package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"detouradmin/internal/db"
	"detouradmin/internal/models"
	"detouradmin/internal/moderation"
)

// ModerationHandler handles the proposal workflow via JSON API.
type ModerationHandler struct {
	db *db.DB
}

// NewModerationHandler creates a new API moderation handler.
func NewModerationHandler(database *db.DB) *ModerationHandler {
	return &ModerationHandler{db: database}
}

// ListPending returns all proposals awaiting a decision.
func (h *ModerationHandler) ListPending(c fiber.Ctx) error {
	proposals, err := h.db.ListPendingProposals(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch pending proposals")
	}

	// Ensure a non-null array in JSON
	if proposals == nil {
		proposals = []models.Proposal{}
	}
	return jsonSuccess(c, proposals)
}

// Review returns the proposal with its computed diff and before-state.
func (h *ModerationHandler) Review(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid proposal id")
	}

	proposal, err := h.db.GetProposalByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrProposalNotFound) {
			return jsonError(c, fiber.StatusNotFound, "proposal not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch proposal")
	}

	review := moderation.BuildReview(c.Context(), h.db, proposal)

	var state string
	switch review.State {
	case moderation.BeforeFound:
		state = "found"
	case moderation.BeforeNotFound:
		state = "not_found"
	case moderation.BeforeError:
		state = "error"
	default:
		state = "new"
	}

	diff := make([]fiber.Map, 0, len(review.Diff))
	for _, d := range review.Diff {
		diff = append(diff, fiber.Map{
			"label":   d.Label,
			"before":  d.Before,
			"after":   d.After,
			"changed": d.Changed,
		})
	}

	return jsonSuccess(c, fiber.Map{
		"proposal": review.Proposal,
		"original": review.Original,
		"state":    state,
		"diff":     diff,
	})
}

// Approve marks a pending proposal approved.
func (h *ModerationHandler) Approve(c fiber.Ctx) error {
	return h.decide(c, models.StatusApproved)
}

// Reject marks a pending proposal rejected.
func (h *ModerationHandler) Reject(c fiber.Ctx) error {
	return h.decide(c, models.StatusRejected)
}

func (h *ModerationHandler) decide(c fiber.Ctx, decision string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid proposal id")
	}

	result := moderation.Decide(c.Context(), h.db, id, decision)
	switch result.Outcome {
	case moderation.Decided:
		return jsonSuccess(c, fiber.Map{"id": id, "status": decision})
	case moderation.AlreadyDecided:
		return jsonSuccess(c, fiber.Map{"id": id, "status": decision, "note": "already decided"})
	case moderation.NotFound:
		return jsonError(c, fiber.StatusNotFound, "proposal not found")
	default:
		return jsonError(c, fiber.StatusInternalServerError, "failed to save decision")
	}
}
