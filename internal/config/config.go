package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string `env:"ENV" envDefault:"development"`

	// Server
	ServerAddr string `env:"SERVER_ADDR" envDefault:":3000"`
	BaseURL    string `env:"BASE_URL" envDefault:"http://localhost:3000"`

	// Database
	DatabaseURL string `env:"DATABASE_URL" envDefault:"postgres://localhost:5432/detouradmin?sslmode=disable"`

	// Redis session storage (optional; in-memory sessions when unset)
	RedisURL string `env:"REDIS_URL"`

	// TLS/mTLS
	TLSEnabled  bool   `env:"TLS_ENABLED"`
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`
	TLSCAFile   string `env:"TLS_CA_FILE"` // CA for verifying client certs (mTLS)

	// OIDC
	OIDCIssuer       string `env:"OIDC_ISSUER"`
	OIDCClientID     string `env:"OIDC_CLIENT_ID"`
	OIDCClientSecret string `env:"OIDC_CLIENT_SECRET"`
	OIDCRedirectURL  string `env:"OIDC_REDIRECT_URL" envDefault:"http://localhost:3000/auth/callback"`

	// Operator allow-list. Only these emails may use the dashboard after
	// authentication; enforced at callback time and again on every request.
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`

	// Session
	SessionSecret string `env:"SESSION_SECRET" envDefault:"change-me-in-production-min-32-chars"`

	// CORS
	CORSOrigins string `env:"CORS_ORIGINS"`

	// SMTP (optional; invitation emails disabled when unset)
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPFromName string `env:"SMTP_FROM_NAME"`

	// Stats
	StatsRefreshInterval time.Duration `env:"STATS_REFRESH_INTERVAL" envDefault:"5m"`

	// Site Branding
	SiteTitle   string `env:"SITE_TITLE" envDefault:"Detour Admin"`
	SiteTagline string `env:"SITE_TAGLINE" envDefault:"Operations dashboard for Detour"`
	SiteFooter  string `env:"SITE_FOOTER" envDefault:"Detour Admin - internal use only"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}

// IsEmailEnabled returns true if SMTP is configured.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}

// IsOperator reports whether the given email is on the operator allow-list.
// Comparison is case-insensitive and ignores surrounding whitespace.
func (c *Config) IsOperator(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, allowed := range c.AdminEmails {
		if strings.ToLower(strings.TrimSpace(allowed)) == email {
			return true
		}
	}
	return false
}
