package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/agrosense/croprec-server/internal/logger"
	"github.com/agrosense/croprec-server/internal/model"
)

// csvHeader is the fixed export header. Column order matches the stored
// record layout.
var csvHeader = []string{
	"ID", "User Email", "Nitrogen", "Phosphorus", "Potassium",
	"Temperature", "Humidity", "pH", "Rainfall", "Predicted Crop", "Timestamp",
}

const csvTimeLayout = "2006-01-02 15:04:05"

// Review provides the administrator's view over the prediction history:
// listing, CSV export, and single or bulk deletion. Every operation is gated
// on the requester being the configured administrator.
type Review struct {
	predictionStore model.PredictionStore
	adminEmail      string
	logger          *logger.Logger
}

// NewReview creates a new Review service gated on adminEmail.
func NewReview(predictionStore model.PredictionStore, adminEmail string, logger *logger.Logger) *Review {
	return &Review{
		predictionStore: predictionStore,
		adminEmail:      adminEmail,
		logger:          logger,
	}
}

func (s *Review) authorize(requester string) error {
	if requester != s.adminEmail {
		s.logger.Info("Review service: access denied",
			"requester", requester)
		return model.ErrAccessDenied
	}
	return nil
}

// History returns every prediction record, newest first.
func (s *Review) History(ctx context.Context, requester string) ([]model.Prediction, error) {
	if err := s.authorize(requester); err != nil {
		return nil, err
	}

	predictions, err := s.predictionStore.ListAll(ctx)
	if err != nil {
		s.logger.Error("Review service: failed to list predictions",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}

	return predictions, nil
}

// ExportCSV renders the full history, newest first, as a CSV document.
func (s *Review) ExportCSV(ctx context.Context, requester string) ([]byte, error) {
	predictions, err := s.History(ctx, requester)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, p := range predictions {
		row := []string{
			strconv.FormatInt(p.ID, 10),
			p.Email,
			formatMeasurement(p.Nitrogen),
			formatMeasurement(p.Phosphorus),
			formatMeasurement(p.Potassium),
			formatMeasurement(p.Temperature),
			formatMeasurement(p.Humidity),
			formatMeasurement(p.PH),
			formatMeasurement(p.Rainfall),
			p.Crop,
			p.CreatedAt.Format(csvTimeLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	s.logger.Info("Review service: exported predictions",
		"count", len(predictions))

	return buf.Bytes(), nil
}

// Delete removes the record with the given id. Deleting an absent id
// succeeds.
func (s *Review) Delete(ctx context.Context, requester string, id int64) error {
	if err := s.authorize(requester); err != nil {
		return err
	}

	if err := s.predictionStore.Delete(ctx, id); err != nil {
		s.logger.Error("Review service: failed to delete prediction",
			"id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete prediction: %w", err)
	}

	s.logger.Info("Review service: deleted prediction",
		"id", id)

	return nil
}

// DeleteAll removes every prediction record unconditionally.
func (s *Review) DeleteAll(ctx context.Context, requester string) error {
	if err := s.authorize(requester); err != nil {
		return err
	}

	if err := s.predictionStore.DeleteAll(ctx); err != nil {
		s.logger.Error("Review service: failed to delete predictions",
			"error", err.Error())
		return fmt.Errorf("failed to delete predictions: %w", err)
	}

	s.logger.Info("Review service: deleted all predictions")

	return nil
}

func formatMeasurement(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
