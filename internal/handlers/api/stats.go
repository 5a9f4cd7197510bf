package api

import (
	"github.com/gofiber/fiber/v3"

	"detouradmin/internal/stats"
)

// StatsHandler serves the aggregate summary via JSON API.
type StatsHandler struct {
	svc stats.Service
}

// NewStatsHandler creates a new API stats handler.
func NewStatsHandler(svc stats.Service) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Summary returns the cached aggregate snapshot.
func (h *StatsHandler) Summary(c fiber.Ctx) error {
	s, err := h.svc.Snapshot(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load stats")
	}
	return jsonSuccess(c, s)
}

// Refresh recomputes the aggregates and returns the fresh snapshot.
func (h *StatsHandler) Refresh(c fiber.Ctx) error {
	s, err := h.svc.Refresh(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to refresh stats")
	}
	return jsonSuccess(c, s)
}
