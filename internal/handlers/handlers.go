package handlers

import (
	"html"

	"github.com/gofiber/fiber/v3"

	"detouradmin/internal/config"
	"detouradmin/internal/middleware"
)

// renderMap merges the operator, site branding, and current path into the
// template data so the layout can render the nav shell.
func renderMap(c fiber.Ctx, cfg *config.Config, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	data["Operator"] = middleware.OperatorFromCtx(c)
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteTagline"] = cfg.SiteTagline
	data["SiteFooter"] = cfg.SiteFooter
	data["Path"] = c.Path()
	return data
}

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div class="notice notice-error text-sm">` + html.EscapeString(message) + `</div>`,
	)
}
