package ports

import (
	"context"

	"github.com/wellness/portal/internal/core/domain"
)

// Classifier is the external obesity model. It receives the fixed-order
// feature vector and returns an integer class label.
type Classifier interface {
	Predict(ctx context.Context, features []float64) (int, error)
}

// ObesityResult is returned by WellnessService.Classify.
type ObesityResult struct {
	BMI   float64
	Class int
	Label string
}

// WellnessService computes BMI and obesity classifications.
type WellnessService interface {
	BMI(heightCm, weightKg float64) (float64, error)
	Classify(ctx context.Context, in domain.ObesityInput) (*ObesityResult, error)
}
