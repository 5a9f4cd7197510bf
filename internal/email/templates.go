package email

import (
	"fmt"
	"html"

	"detouradmin/internal/config"
	"detouradmin/internal/models"
)

// Templates provides email template generation.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// baseHTML wraps content in a consistent HTML email template.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #2563eb; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; }
        .footer { background: #f3f4f6; padding: 15px; text-align: center; font-size: 12px; color: #6b7280; border-radius: 0 0 8px 8px; border: 1px solid #e5e7eb; border-top: none; }
        .button { display: inline-block; background: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 10px 0; }
        .button:hover { background: #1d4ed8; }
    </style>
</head>
<body>
    <div class="header">
        <h1>%s</h1>
    </div>
    <div class="content">
        %s
    </div>
    <div class="footer">
        <p>This email was sent by %s</p>
    </div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(t.cfg.SiteTitle), content, html.EscapeString(t.cfg.SiteTitle))
}

// WaitlistInvitation generates the invitation for a waitlist entry whose
// spot has opened up.
func (t *Templates) WaitlistInvitation(entry *models.WaitlistEntry) (subject, htmlBody, textBody string) {
	subject = "Your Detour invitation is ready"

	content := `
        <p>Hello!</p>
        <p>Your spot on the Detour waitlist has opened up. You can now create
        your account and start discovering places worth the detour.</p>

        <p style="text-align: center;">
            <a href="` + t.cfg.BaseURL + `" class="button">Get Started</a>
        </p>

        <p>See you out there,<br>The Detour team</p>
    `

	htmlBody = t.baseHTML(subject, content)
	textBody = fmt.Sprintf(`Hello!

Your spot on the Detour waitlist has opened up. You can now create your
account and start discovering places worth the detour.

Get started: %s

See you out there,
The Detour team
`, t.cfg.BaseURL)

	return subject, htmlBody, textBody
}
