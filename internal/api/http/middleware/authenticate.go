package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrosense/croprec-server/internal/logger"
	"github.com/agrosense/croprec-server/internal/model"
)

// Authenticate validates the session cookie and injects the user email into
// the request context. Requests without a valid session are redirected to the
// login page.
type Authenticate struct {
	sessionManager model.SessionManager
	contextManager model.ContextManager
	cookieName     string
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(sessionManager model.SessionManager, contextManager model.ContextManager, cookieName string, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		sessionManager: sessionManager,
		contextManager: contextManager,
		cookieName:     cookieName,
		logger:         logger,
	}
}

// Handle wraps next with session validation.
func (m *Authenticate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return c.Redirect(http.StatusFound, "/login")
		}

		email, err := m.sessionManager.Parse(cookie.Value)
		if err != nil {
			m.logger.Info("Authenticate middleware: rejected session token",
				"error", err.Error())
			return c.Redirect(http.StatusFound, "/login")
		}

		ctx := m.contextManager.SetUserEmailToContext(c.Request().Context(), email)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
