package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"detouradmin/internal/config"
)

// Session keys written at login and read on every request.
const (
	SessionKeyEmail   = "operator_email"
	SessionKeyName    = "operator_name"
	SessionKeyPicture = "operator_picture"
)

// Operator is the authenticated dashboard identity carried in the session.
// Operators are not app users; they exist only in the identity provider and
// the allow-list.
type Operator struct {
	Email   string
	Name    string
	Picture string
}

// AuthMiddleware handles operator authentication via sessions.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// RequireAuth ensures the request carries an allow-listed operator session,
// redirecting to /login if not. The allow-list is re-checked on every
// request so removing an operator takes effect on live sessions.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return c.Redirect().To("/login")
	}

	email, _ := sess.Get(SessionKeyEmail).(string)
	if email == "" {
		if c.Method() == fiber.MethodGet {
			sess.Set("redirect_after_login", c.OriginalURL())
		}
		return c.Redirect().To("/login")
	}

	if !m.cfg.IsOperator(email) {
		sess.Destroy()
		return c.Redirect().To("/login")
	}

	name, _ := sess.Get(SessionKeyName).(string)
	picture, _ := sess.Get(SessionKeyPicture).(string)
	c.Locals("operator", &Operator{Email: email, Name: name, Picture: picture})
	return c.Next()
}

// OperatorFromCtx returns the operator set by RequireAuth, or nil.
func OperatorFromCtx(c fiber.Ctx) *Operator {
	op, _ := c.Locals("operator").(*Operator)
	return op
}
