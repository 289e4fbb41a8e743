package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agrosense/croprec-server/internal/mocks"
	"github.com/agrosense/croprec-server/internal/testutil"
)

const cookieName = "crop_session"

func TestAuthenticate_Handle_ValidSession(t *testing.T) {
	sessionManager := mocks.NewSessionManager(t)
	sessionManager.On("Parse", "token").Return("user@example.com", nil)

	contextManager := mocks.NewContextManager(t)
	contextManager.On("SetUserEmailToContext", mock.Anything, "user@example.com").
		Return(context.Background())

	m := NewAuthenticate(sessionManager, contextManager, cookieName, testutil.MakeNoopLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	}

	require.NoError(t, m.Handle(next)(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_Handle_MissingCookie(t *testing.T) {
	sessionManager := mocks.NewSessionManager(t)
	contextManager := mocks.NewContextManager(t)

	m := NewAuthenticate(sessionManager, contextManager, cookieName, testutil.MakeNoopLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		t.Fatal("next handler should not be called")
		return nil
	}

	require.NoError(t, m.Handle(next)(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestAuthenticate_Handle_InvalidToken(t *testing.T) {
	sessionManager := mocks.NewSessionManager(t)
	sessionManager.On("Parse", "bad").Return("", errors.New("token is malformed"))

	contextManager := mocks.NewContextManager(t)

	m := NewAuthenticate(sessionManager, contextManager, cookieName, testutil.MakeNoopLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/form", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "bad"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		t.Fatal("next handler should not be called")
		return nil
	}

	require.NoError(t, m.Handle(next)(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestAuthenticate_Handle_EmptyCookieValue(t *testing.T) {
	sessionManager := mocks.NewSessionManager(t)
	contextManager := mocks.NewContextManager(t)

	m := NewAuthenticate(sessionManager, contextManager, cookieName, testutil.MakeNoopLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: ""})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		t.Fatal("next handler should not be called")
		return nil
	}

	require.NoError(t, m.Handle(next)(c))
	assert.Equal(t, http.StatusFound, rec.Code)
}
