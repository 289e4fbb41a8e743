package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrosense/croprec-server/internal/logger"
	"github.com/agrosense/croprec-server/internal/model"
)

// PredictionService runs the prediction workflow for a submitted form.
type PredictionService interface {
	Submit(ctx context.Context, email string, raw model.RawMeasurements) (model.Prediction, error)
}

// Prediction handles the measurement form and its submission.
type Prediction struct {
	predictionService PredictionService
	contextManager    model.ContextManager
	logger            *logger.Logger
}

// NewPrediction creates a new Prediction handler.
func NewPrediction(predictionService PredictionService, contextManager model.ContextManager, logger *logger.Logger) *Prediction {
	return &Prediction{
		predictionService: predictionService,
		contextManager:    contextManager,
		logger:            logger,
	}
}

type predictionPage struct {
	Crop string
}

// Form renders the measurement input form.
func (h *Prediction) Form(c echo.Context) error {
	return c.Render(http.StatusOK, "predict.html", nil)
}

// Submit runs the prediction workflow on the submitted measurements and
// renders the recommended crop. Validation failures are plain-text 400
// responses; any other failure is a plain-text 500 carrying the error detail.
func (h *Prediction) Submit(c echo.Context) error {
	email, ok := h.contextManager.GetUserEmailFromContext(c.Request().Context())
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	raw := model.RawMeasurements{
		Nitrogen:    c.FormValue("Nitrogen"),
		Phosphorus:  c.FormValue("Phosphorus"),
		Potassium:   c.FormValue("Potassium"),
		Temperature: c.FormValue("Temperature"),
		Humidity:    c.FormValue("Humidity"),
		PH:          c.FormValue("ph"),
		Rainfall:    c.FormValue("Rainfall"),
	}

	h.logger.Debug("Prediction handler: processing form submission",
		"email", email)

	prediction, err := h.predictionService.Submit(c.Request().Context(), email, raw)
	if err != nil {
		var invalid *model.InvalidInputError
		if errors.As(err, &invalid) || errors.Is(err, model.ErrOutOfRange) {
			return c.String(http.StatusBadRequest, err.Error())
		}

		h.logger.Error("Prediction handler: submission failed",
			"email", email,
			"error", err.Error())
		return c.String(http.StatusInternalServerError, "An error occurred: "+err.Error())
	}

	h.logger.Info("Prediction handler: submission completed",
		"email", email,
		"crop", prediction.Crop)

	return c.Render(http.StatusOK, "prediction.html", predictionPage{Crop: prediction.Crop})
}
