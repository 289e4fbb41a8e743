package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrosense/croprec-server/internal/logger"
	"github.com/agrosense/croprec-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) error
	Login(ctx context.Context, email, password string) (model.User, error)
}

// Auth handles the registration, login and logout pages.
type Auth struct {
	authService    AuthService
	sessionManager model.SessionManager
	cookieName     string
	sessionTTL     time.Duration
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, sessionManager model.SessionManager, cookieName string, sessionTTL time.Duration, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		sessionManager: sessionManager,
		cookieName:     cookieName,
		sessionTTL:     sessionTTL,
		logger:         logger,
	}
}

type registerPage struct {
	Name  string
	Email string
	Error string
}

type loginPage struct {
	Email string
	Error string
}

// RegisterForm renders the registration page.
func (h *Auth) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", registerPage{})
}

// Register creates a user from the submitted form. Validation failures
// re-render the form with a message and no state change.
func (h *Auth) Register(c echo.Context) error {
	params := model.RegisterParams{
		Name:            c.FormValue("name"),
		Email:           c.FormValue("email"),
		Password:        c.FormValue("password"),
		ConfirmPassword: c.FormValue("confirm_password"),
	}

	h.logger.Debug("Auth handler: processing registration request",
		"email", params.Email)

	err := h.authService.Register(c.Request().Context(), params)
	if err != nil {
		if errors.Is(err, model.ErrMissingFields) ||
			errors.Is(err, model.ErrPasswordMismatch) ||
			errors.Is(err, model.ErrEmailTaken) {
			return c.Render(http.StatusOK, "register.html", registerPage{
				Name:  params.Name,
				Email: params.Email,
				Error: err.Error(),
			})
		}

		h.logger.Error("Auth handler: registration failed",
			"email", params.Email,
			"error", err.Error())
		return c.String(http.StatusInternalServerError, "An error occurred: "+err.Error())
	}

	h.logger.Info("Auth handler: registration completed",
		"email", params.Email)

	return c.Redirect(http.StatusFound, "/login")
}

// LoginForm renders the login page.
func (h *Auth) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", loginPage{})
}

// Login establishes a session for valid credentials and redirects to the
// dashboard. Invalid credentials re-render the login page with a message.
func (h *Auth) Login(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	h.logger.Debug("Auth handler: processing login request",
		"email", email)

	user, err := h.authService.Login(c.Request().Context(), email, password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			return c.Render(http.StatusOK, "login.html", loginPage{
				Email: email,
				Error: err.Error(),
			})
		}

		h.logger.Error("Auth handler: login failed",
			"email", email,
			"error", err.Error())
		return c.String(http.StatusInternalServerError, "An error occurred: "+err.Error())
	}

	token, err := h.sessionManager.Issue(user.Email)
	if err != nil {
		h.logger.Error("Auth handler: failed to issue session token",
			"email", email,
			"error", err.Error())
		return c.String(http.StatusInternalServerError, "An error occurred: "+err.Error())
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
	})

	h.logger.Info("Auth handler: login completed",
		"email", email)

	return c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the session cookie and redirects to the login page.
func (h *Auth) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.Redirect(http.StatusFound, "/login")
}
