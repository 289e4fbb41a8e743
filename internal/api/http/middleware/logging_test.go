package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrosense/croprec-server/internal/testutil"
)

func TestLogging_Handle_Success(t *testing.T) {
	m := NewLogging(testutil.MakeNoopLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	require.NoError(t, m.Handle(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogging_Handle_Error(t *testing.T) {
	m := NewLogging(testutil.MakeNoopLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/form", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	wantErr := errors.New("boom")
	next := func(c echo.Context) error {
		return wantErr
	}

	err := m.Handle(next)(c)
	require.ErrorIs(t, err, wantErr)
}
