package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrosense/croprec-server/internal/logger"
	"github.com/agrosense/croprec-server/internal/model"
)

// Pages handles the static pages and the contact form.
type Pages struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewPages creates a new Pages handler.
func NewPages(contextManager model.ContextManager, logger *logger.Logger) *Pages {
	return &Pages{contextManager: contextManager, logger: logger}
}

type dashboardPage struct {
	Email string
}

// Home renders the landing page.
func (h *Pages) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", nil)
}

// About renders the about page.
func (h *Pages) About(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", nil)
}

// Services renders the services page.
func (h *Pages) Services(c echo.Context) error {
	return c.Render(http.StatusOK, "services.html", nil)
}

// Dashboard renders the post-login landing page.
func (h *Pages) Dashboard(c echo.Context) error {
	email, _ := h.contextManager.GetUserEmailFromContext(c.Request().Context())
	return c.Render(http.StatusOK, "dashboard.html", dashboardPage{Email: email})
}

// ContactForm renders the contact page.
func (h *Pages) ContactForm(c echo.Context) error {
	return c.Render(http.StatusOK, "contact.html", nil)
}

// SubmitContact logs the submitted message and renders a confirmation page.
// Nothing is persisted.
func (h *Pages) SubmitContact(c echo.Context) error {
	h.logger.Info("Pages handler: contact message received",
		"name", c.FormValue("name"),
		"email", c.FormValue("email"),
		"message", c.FormValue("message"))

	return c.Render(http.StatusOK, "success.html", nil)
}
