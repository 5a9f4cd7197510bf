package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"detouradmin/internal/config"
	"detouradmin/internal/db"
	"detouradmin/internal/models"
)

// UsersHandler renders the registered-users table.
type UsersHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewUsersHandler creates a new users handler.
func NewUsersHandler(database *db.DB, cfg *config.Config) *UsersHandler {
	return &UsersHandler{db: database, cfg: cfg}
}

// Index renders the user table. The full collection is fetched and the
// optional ?q= filter is applied in memory, matching email, display name,
// or id as a case-insensitive substring.
func (h *UsersHandler) Index(c fiber.Ctx) error {
	users, err := h.db.ListAppUsers(c.Context())
	if err != nil {
		return err
	}

	query := c.Query("q")
	filtered := FilterUsers(users, query)

	data := renderMap(c, h.cfg, fiber.Map{
		"Title": "Users",
		"Users": filtered,
		"Query": query,
		"Total": len(users),
	})

	// HTMX live-filter requests swap just the table body.
	if c.Get("HX-Request") == "true" {
		return c.Render("partials/user_rows", data, "")
	}
	return c.Render("users", data)
}

// FilterUsers returns the users whose email, display name, or id contains
// the query as a case-insensitive substring. An empty query matches all.
func FilterUsers(users []models.AppUser, query string) []models.AppUser {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return users
	}

	var filtered []models.AppUser
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Email), query) ||
			strings.Contains(strings.ToLower(u.DisplayName), query) ||
			strings.Contains(strings.ToLower(u.ID.String()), query) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}
