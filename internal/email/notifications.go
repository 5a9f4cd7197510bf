package email

import (
	"context"
	"fmt"
	"log"

	"detouradmin/internal/config"
	"detouradmin/internal/models"
)

// Notifier sends operator-triggered emails.
type Notifier struct {
	service   *Service
	templates *Templates
	cfg       *config.Config
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{
		service:   NewService(cfg),
		templates: NewTemplates(cfg),
		cfg:       cfg,
	}
}

// SendWaitlistInvitation emails an invitation to a waitlist entry. Returns
// an error when sending is disabled, so the caller can surface the failure
// instead of silently pretending the invite went out.
func (n *Notifier) SendWaitlistInvitation(_ context.Context, entry *models.WaitlistEntry) error {
	if !n.service.IsEnabled() {
		return fmt.Errorf("email sending is not configured")
	}

	subject, htmlBody, textBody := n.templates.WaitlistInvitation(entry)
	if err := n.service.SendEmail([]string{entry.Email}, subject, htmlBody, textBody); err != nil {
		log.Printf("Failed to send waitlist invitation to %s: %v", entry.Email, err)
		return err
	}

	log.Printf("Sent waitlist invitation to %s", entry.Email)
	return nil
}
