// Package classifier evaluates the pre-trained crop recommendation model.
// The model is an externally trained artifact: a serialized table of class
// centroids over the seven measurement features. Training and evaluation of
// the model happen outside this system.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/agrosense/croprec-server/internal/model"
)

// artifactFormat is the serialization format this evaluator understands.
const artifactFormat = "centroids/v1"

const featureCount = 7

var _ model.Classifier = (*Model)(nil)

type class struct {
	label    string
	centroid [featureCount]float64
}

// Model is a loaded classifier artifact. Read-only after Load.
type Model struct {
	classes []class
}

type artifact struct {
	Format  string `json:"format"`
	Classes []struct {
		Label    string    `json:"label"`
		Centroid []float64 `json:"centroid"`
	} `json:"classes"`
}

// Load reads and validates a serialized classifier artifact.
func Load(r io.Reader) (*Model, error) {
	var a artifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact: %w", err)
	}

	if a.Format != artifactFormat {
		return nil, fmt.Errorf("unsupported model artifact format %q", a.Format)
	}
	if len(a.Classes) == 0 {
		return nil, fmt.Errorf("model artifact has no classes")
	}

	m := &Model{classes: make([]class, 0, len(a.Classes))}
	for _, c := range a.Classes {
		if c.Label == "" {
			return nil, fmt.Errorf("model artifact has a class without a label")
		}
		if len(c.Centroid) != featureCount {
			return nil, fmt.Errorf("class %q has %d centroid values, want %d", c.Label, len(c.Centroid), featureCount)
		}
		cl := class{label: c.Label}
		copy(cl.centroid[:], c.Centroid)
		m.classes = append(m.classes, cl)
	}

	return m, nil
}

// Predict returns the label of the class whose centroid is nearest to the
// submitted feature vector.
func (m *Model) Predict(_ context.Context, features model.FeatureVector) (string, error) {
	if len(m.classes) == 0 {
		return "", fmt.Errorf("model is not loaded")
	}

	values := features.Values()

	best := 0
	bestDist := distance(values, m.classes[0].centroid)
	for i := 1; i < len(m.classes); i++ {
		if d := distance(values, m.classes[i].centroid); d < bestDist {
			best = i
			bestDist = d
		}
	}

	return m.classes[best].label, nil
}

// distance is the squared euclidean distance; the argmin is unaffected by
// skipping the square root.
func distance(a, b [featureCount]float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
