package model

import (
	"context"
	"time"
)

// PredictionStore defines persistence operations for prediction records.
type PredictionStore interface {
	Create(ctx context.Context, prediction Prediction) (Prediction, error)
	ListAll(ctx context.Context) ([]Prediction, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

// Prediction is one audited outcome of the prediction workflow. Records are
// append-only; only the administrator deletes them.
type Prediction struct {
	ID          int64
	Email       string
	Nitrogen    float64
	Phosphorus  float64
	Potassium   float64
	Temperature float64
	Humidity    float64
	PH          float64
	Rainfall    float64
	Crop        string
	CreatedAt   time.Time
}

// Features returns the measurements of the record as a feature vector.
func (p Prediction) Features() FeatureVector {
	return FeatureVector{
		Nitrogen:    p.Nitrogen,
		Phosphorus:  p.Phosphorus,
		Potassium:   p.Potassium,
		Temperature: p.Temperature,
		Humidity:    p.Humidity,
		PH:          p.PH,
		Rainfall:    p.Rainfall,
	}
}

// RawMeasurements contains the seven measurement form fields before parsing.
type RawMeasurements struct {
	Nitrogen    string
	Phosphorus  string
	Potassium   string
	Temperature string
	Humidity    string
	PH          string
	Rainfall    string
}
