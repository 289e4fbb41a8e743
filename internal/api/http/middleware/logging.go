package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrosense/croprec-server/internal/logger"
)

// Logging logs HTTP requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, duration and status for each request.
func (l *Logging) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		l.logger.Info("HTTP request started",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"start_time", start.Format(time.RFC3339))

		err := next(c)

		duration := time.Since(start)

		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}

		l.logger.Info("HTTP request completed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"duration_ms", duration.Milliseconds(),
			"status", status)

		if err != nil {
			l.logger.Error("HTTP request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err.Error(),
				"status", status)
		}

		return err
	}
}
