package handlers

import (
	"github.com/gofiber/fiber/v3"

	"detouradmin/internal/config"
	"detouradmin/internal/stats"
)

// DashboardHandler renders the aggregate stat cards.
type DashboardHandler struct {
	svc stats.Service
	cfg *config.Config
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(svc stats.Service, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{svc: svc, cfg: cfg}
}

// Index renders the dashboard with the cached summary.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	summary, err := h.svc.Snapshot(c.Context())
	if err != nil {
		return err
	}

	return c.Render("dashboard", renderMap(c, h.cfg, fiber.Map{
		"Title": "Dashboard",
		"Stats": summary,
	}))
}

// Refresh recomputes all aggregates on demand and re-renders the stat
// cards as an HTMX fragment.
func (h *DashboardHandler) Refresh(c fiber.Ctx) error {
	summary, err := h.svc.Refresh(c.Context())
	if err != nil {
		return htmxError(c, "Failed to refresh stats")
	}

	return c.Render("partials/stat_cards", fiber.Map{
		"Stats": summary,
	}, "")
}
