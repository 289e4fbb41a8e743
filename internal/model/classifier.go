package model

import "context"

// FeatureVector is the ordered 7-tuple of soil and climate measurements
// submitted to the classifier.
type FeatureVector struct {
	Nitrogen    float64
	Phosphorus  float64
	Potassium   float64
	Temperature float64
	Humidity    float64
	PH          float64
	Rainfall    float64
}

// Values returns the measurements in classifier input order:
// nitrogen, phosphorus, potassium, temperature, humidity, ph, rainfall.
func (f FeatureVector) Values() [7]float64 {
	return [7]float64{f.Nitrogen, f.Phosphorus, f.Potassium, f.Temperature, f.Humidity, f.PH, f.Rainfall}
}

// Classifier maps a feature vector to a crop label. The backing model is an
// externally trained artifact loaded once at startup and read-only afterwards.
type Classifier interface {
	Predict(ctx context.Context, features FeatureVector) (string, error)
}
