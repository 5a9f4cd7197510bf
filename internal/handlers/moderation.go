package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"detouradmin/internal/config"
	"detouradmin/internal/db"
	"detouradmin/internal/models"
	"detouradmin/internal/moderation"
)

// ModerationHandler handles the proposal review workflow.
type ModerationHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewModerationHandler creates a new moderation handler.
func NewModerationHandler(database *db.DB, cfg *config.Config) *ModerationHandler {
	return &ModerationHandler{db: database, cfg: cfg}
}

// Index renders the active queue: pending proposals only, oldest first.
func (h *ModerationHandler) Index(c fiber.Ctx) error {
	proposals, err := h.db.ListPendingProposals(c.Context())
	if err != nil {
		return err
	}

	return c.Render("moderation", renderMap(c, h.cfg, fiber.Map{
		"Title":     "Moderation",
		"Proposals": proposals,
	}))
}

// Review renders the diff modal for one proposal. For edit proposals the
// published record is fetched; found, missing, and errored fetches each
// render their own state rather than failing the modal.
func (h *ModerationHandler) Review(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid proposal id")
	}

	proposal, err := h.db.GetProposalByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrProposalNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "proposal not found")
		}
		return err
	}

	review := moderation.BuildReview(c.Context(), h.db, proposal)

	return c.Render("partials/moderation_review", fiber.Map{
		"Review":   review,
		"Proposal": review.Proposal,
	}, "")
}

// Approve marks a pending proposal approved.
func (h *ModerationHandler) Approve(c fiber.Ctx) error {
	return h.decide(c, models.StatusApproved)
}

// Reject marks a pending proposal rejected.
func (h *ModerationHandler) Reject(c fiber.Ctx) error {
	return h.decide(c, models.StatusRejected)
}

// decide applies the operator decision and answers HTMX. The row is only
// removed from the rendered queue when the store confirms the write; on
// failure the proposal stays visible.
func (h *ModerationHandler) decide(c fiber.Ctx, decision string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return htmxError(c, "invalid proposal id")
	}

	result := moderation.Decide(c.Context(), h.db, id, decision)
	switch result.Outcome {
	case moderation.Decided, moderation.AlreadyDecided:
		return c.Render("partials/moderation_success", fiber.Map{
			"Decision":   decision,
			"ProposalID": id,
		}, "")
	case moderation.NotFound:
		return htmxError(c, "proposal not found")
	default:
		return htmxError(c, "failed to save decision, proposal left pending")
	}
}
