package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/agrosense/croprec-server/internal/logger"
	"github.com/agrosense/croprec-server/internal/model"
)

// ReviewService provides the administrator operations over the prediction
// history.
type ReviewService interface {
	History(ctx context.Context, requester string) ([]model.Prediction, error)
	ExportCSV(ctx context.Context, requester string) ([]byte, error)
	Delete(ctx context.Context, requester string, id int64) error
	DeleteAll(ctx context.Context, requester string) error
}

// Review handles the administrator pages: history listing, CSV download and
// record deletion.
type Review struct {
	reviewService  ReviewService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewReview creates a new Review handler.
func NewReview(reviewService ReviewService, contextManager model.ContextManager, logger *logger.Logger) *Review {
	return &Review{
		reviewService:  reviewService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type historyPage struct {
	Predictions []model.Prediction
}

// History renders the full prediction history.
func (h *Review) History(c echo.Context) error {
	email, ok := h.contextManager.GetUserEmailFromContext(c.Request().Context())
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	predictions, err := h.reviewService.History(c.Request().Context(), email)
	if err != nil {
		return h.handleError(c, email, err)
	}

	return c.Render(http.StatusOK, "history.html", historyPage{Predictions: predictions})
}

// DownloadCSV serves the prediction history as a CSV attachment.
func (h *Review) DownloadCSV(c echo.Context) error {
	email, ok := h.contextManager.GetUserEmailFromContext(c.Request().Context())
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	data, err := h.reviewService.ExportCSV(c.Request().Context(), email)
	if err != nil {
		return h.handleError(c, email, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=predictions.csv`)
	return c.Blob(http.StatusOK, "text/csv", data)
}

// Delete removes a single prediction record and returns to the history page.
func (h *Review) Delete(c echo.Context) error {
	email, ok := h.contextManager.GetUserEmailFromContext(c.Request().Context())
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid record id")
	}

	if err := h.reviewService.Delete(c.Request().Context(), email, id); err != nil {
		return h.handleError(c, email, err)
	}

	return c.Redirect(http.StatusFound, "/history")
}

// DeleteAll removes every prediction record and returns to the history page.
func (h *Review) DeleteAll(c echo.Context) error {
	email, ok := h.contextManager.GetUserEmailFromContext(c.Request().Context())
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	if err := h.reviewService.DeleteAll(c.Request().Context(), email); err != nil {
		return h.handleError(c, email, err)
	}

	return c.Redirect(http.StatusFound, "/history")
}

func (h *Review) handleError(c echo.Context, email string, err error) error {
	if errors.Is(err, model.ErrAccessDenied) {
		return c.String(http.StatusForbidden, err.Error())
	}

	h.logger.Error("Review handler: operation failed",
		"email", email,
		"error", err.Error())
	return c.String(http.StatusInternalServerError, "An error occurred: "+err.Error())
}
