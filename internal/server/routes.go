package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"detouradmin/internal/db"
	"detouradmin/internal/email"
	"detouradmin/internal/handlers"
	"detouradmin/internal/handlers/api"
	"detouradmin/internal/middleware"
	"detouradmin/internal/stats"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, statsSvc stats.Service, notifier *email.Notifier) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(s.Cfg)

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(statsSvc, s.Cfg)
	waitlistHandler := handlers.NewWaitlistHandler(database, s.Cfg, notifier)
	usersHandler := handlers.NewUsersHandler(database, s.Cfg)
	moderationHandler := handlers.NewModerationHandler(database, s.Cfg)
	probeHandler := handlers.NewProbeHandler(database)

	// Auth routes - OIDC is always required for dashboard access
	if s.Cfg.OIDCIssuer == "" {
		log.Fatal("OIDC_ISSUER is required. All operators must be authenticated.")
	}
	if len(s.Cfg.AdminEmails) == 0 {
		log.Fatal("ADMIN_EMAILS is required. An empty allow-list locks everyone out.")
	}

	authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
	if err != nil {
		return err
	}

	s.App.Get("/auth/login", authHandler.Login)
	s.App.Get("/auth/callback", authHandler.Callback)
	s.App.Get("/auth/logout", authHandler.Logout)

	// Login page (always available)
	s.App.Get("/login", func(c fiber.Ctx) error {
		return c.Render("login", fiber.Map{
			"Title":       "Sign in",
			"SiteTitle":   s.Cfg.SiteTitle,
			"SiteTagline": s.Cfg.SiteTagline,
			"SiteFooter":  s.Cfg.SiteFooter,
		})
	})

	// Dashboard
	s.App.Get("/", authMiddleware.RequireAuth, dashboardHandler.Index)
	s.App.Post("/dashboard/refresh", authMiddleware.RequireAuth, dashboardHandler.Refresh)

	// Record tables
	s.App.Get("/waitlist", authMiddleware.RequireAuth, waitlistHandler.Index)
	s.App.Post("/waitlist/:id/invite", authMiddleware.RequireAuth, waitlistHandler.Invite)
	s.App.Get("/users", authMiddleware.RequireAuth, usersHandler.Index)

	// Moderation workflow
	s.App.Get("/moderation", authMiddleware.RequireAuth, moderationHandler.Index)
	s.App.Get("/moderation/:id/review", authMiddleware.RequireAuth, moderationHandler.Review)
	s.App.Post("/moderation/:id/approve", authMiddleware.RequireAuth, moderationHandler.Approve)
	s.App.Post("/moderation/:id/reject", authMiddleware.RequireAuth, moderationHandler.Reject)

	// JSON API
	apiModeration := api.NewModerationHandler(database)
	apiStats := api.NewStatsHandler(statsSvc)

	v1 := s.App.Group("/api/v1", authMiddleware.RequireAuth)
	v1.Get("/moderation/pending", apiModeration.ListPending)
	v1.Get("/moderation/:id/review", apiModeration.Review)
	v1.Post("/moderation/:id/approve", apiModeration.Approve)
	v1.Post("/moderation/:id/reject", apiModeration.Reject)
	v1.Get("/stats", apiStats.Summary)
	v1.Post("/stats/refresh", apiStats.Refresh)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
