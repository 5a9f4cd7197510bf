package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"detouradmin/internal/config"
	"detouradmin/internal/db"
	"detouradmin/internal/email"
	"detouradmin/internal/validation"
)

// WaitlistHandler renders the waitlist table and sends invitations.
type WaitlistHandler struct {
	db       *db.DB
	cfg      *config.Config
	notifier *email.Notifier
}

// NewWaitlistHandler creates a new waitlist handler.
func NewWaitlistHandler(database *db.DB, cfg *config.Config, notifier *email.Notifier) *WaitlistHandler {
	return &WaitlistHandler{db: database, cfg: cfg, notifier: notifier}
}

// Index renders the full waitlist, newest submissions first.
func (h *WaitlistHandler) Index(c fiber.Ctx) error {
	entries, err := h.db.ListWaitlist(c.Context())
	if err != nil {
		return err
	}

	return c.Render("waitlist", renderMap(c, h.cfg, fiber.Map{
		"Title":        "Waitlist",
		"Entries":      entries,
		"MailtoFor":    MailtoLink,
		"EmailEnabled": h.cfg.IsEmailEnabled(),
	}))
}

// Invite sends an invitation email to a waitlist entry. Returns an HTMX
// fragment either way; a send failure leaves the entry untouched.
func (h *WaitlistHandler) Invite(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return htmxError(c, "invalid waitlist entry id")
	}

	entry, err := h.db.GetWaitlistEntryByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrWaitlistEntryNotFound) {
			return htmxError(c, "waitlist entry not found")
		}
		return htmxError(c, "failed to load waitlist entry")
	}

	if !validation.ValidateEmail(entry.Email) {
		return htmxError(c, "entry does not have a valid email address")
	}

	if err := h.notifier.SendWaitlistInvitation(c.Context(), entry); err != nil {
		return htmxError(c, "failed to send invitation")
	}

	return c.SendString(
		`<span class="text-sm text-green-700">Invitation sent</span>`,
	)
}

// MailtoLink builds the compose-an-email shortcut for a waitlist address.
func MailtoLink(address string) string {
	subject := "Your Detour invitation"
	body := "Hello! Welcome to Detour - your spot on the waitlist has opened up."
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		address,
		mailtoEscape(subject),
		mailtoEscape(body),
	)
}

// mailtoEscape percent-encodes for a mailto URL. QueryEscape's "+" for
// spaces is rendered literally by most mail clients.
func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
