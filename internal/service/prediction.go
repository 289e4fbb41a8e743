package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/agrosense/croprec-server/internal/logger"
	"github.com/agrosense/croprec-server/internal/model"
)

// Prediction runs the prediction workflow: parse the raw form fields,
// validate the measurement domains, invoke the classifier and persist the
// outcome under the session identity.
type Prediction struct {
	predictionStore model.PredictionStore
	classifier      model.Classifier
	logger          *logger.Logger
}

// NewPrediction creates a new Prediction service.
func NewPrediction(predictionStore model.PredictionStore, classifier model.Classifier, logger *logger.Logger) *Prediction {
	return &Prediction{
		predictionStore: predictionStore,
		classifier:      classifier,
		logger:          logger,
	}
}

// Submit parses and validates the seven measurements, obtains a crop label
// from the classifier and appends a prediction record for email.
//
// ph is validated on an exclusive (0, 14) interval, temperature and humidity
// on inclusive [0, 100]; nitrogen, phosphorus, potassium and rainfall are
// accepted unbounded. The asymmetry is part of the documented contract.
func (s *Prediction) Submit(ctx context.Context, email string, raw model.RawMeasurements) (model.Prediction, error) {
	s.logger.Debug("Prediction service: processing submission",
		"email", email)

	features, err := parseMeasurements(raw)
	if err != nil {
		s.logger.Info("Prediction service: rejected input",
			"email", email,
			"error", err.Error())
		return model.Prediction{}, err
	}

	if err := validateDomains(features); err != nil {
		s.logger.Info("Prediction service: rejected out-of-range input",
			"email", email)
		return model.Prediction{}, err
	}

	crop, err := s.classifier.Predict(ctx, features)
	if err != nil {
		s.logger.Error("Prediction service: classifier failed",
			"email", email,
			"error", err.Error())
		return model.Prediction{}, fmt.Errorf("failed to predict crop: %w", err)
	}

	// The model call and the insert are not wrapped in a transaction: a
	// failed insert after a successful prediction loses the record.
	prediction := model.Prediction{
		Email:       email,
		Nitrogen:    features.Nitrogen,
		Phosphorus:  features.Phosphorus,
		Potassium:   features.Potassium,
		Temperature: features.Temperature,
		Humidity:    features.Humidity,
		PH:          features.PH,
		Rainfall:    features.Rainfall,
		Crop:        crop,
		CreatedAt:   time.Now(),
	}

	saved, err := s.predictionStore.Create(ctx, prediction)
	if err != nil {
		s.logger.Error("Prediction service: failed to persist prediction",
			"email", email,
			"crop", crop,
			"error", err.Error())
		return model.Prediction{}, fmt.Errorf("failed to save prediction: %w", err)
	}

	s.logger.Info("Prediction service: prediction completed",
		"email", email,
		"crop", crop,
		"id", saved.ID)

	return saved, nil
}

func parseMeasurements(raw model.RawMeasurements) (model.FeatureVector, error) {
	var features model.FeatureVector

	fields := []struct {
		name  string
		value string
		dst   *float64
	}{
		{"Nitrogen", raw.Nitrogen, &features.Nitrogen},
		{"Phosphorus", raw.Phosphorus, &features.Phosphorus},
		{"Potassium", raw.Potassium, &features.Potassium},
		{"Temperature", raw.Temperature, &features.Temperature},
		{"Humidity", raw.Humidity, &features.Humidity},
		{"ph", raw.PH, &features.PH},
		{"Rainfall", raw.Rainfall, &features.Rainfall},
	}

	for _, f := range fields {
		v, err := strconv.ParseFloat(f.value, 64)
		if err != nil {
			return model.FeatureVector{}, &model.InvalidInputError{Field: f.name, Err: err}
		}
		*f.dst = v
	}

	return features, nil
}

func validateDomains(f model.FeatureVector) error {
	if !(f.PH > 0 && f.PH < 14) {
		return model.ErrOutOfRange
	}
	if !(f.Temperature >= 0 && f.Temperature <= 100) {
		return model.ErrOutOfRange
	}
	if !(f.Humidity >= 0 && f.Humidity <= 100) {
		return model.ErrOutOfRange
	}
	return nil
}
