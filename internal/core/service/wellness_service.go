package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wellness/portal/internal/core/domain"
	"github.com/wellness/portal/internal/core/ports"
)

type WellnessService struct {
	classifier ports.Classifier
	log        zerolog.Logger
}

func NewWellnessService(classifier ports.Classifier, log zerolog.Logger) *WellnessService {
	return &WellnessService{classifier: classifier, log: log}
}

func (s *WellnessService) BMI(heightCm, weightKg float64) (float64, error) {
	return domain.BMI(heightCm, weightKg)
}

// Classify encodes the questionnaire, asks the external model for a class
// and maps it to a status label.
func (s *WellnessService) Classify(ctx context.Context, in domain.ObesityInput) (*ports.ObesityResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	features, err := in.Features()
	if err != nil {
		return nil, err
	}

	class, err := s.classifier.Predict(ctx, features)
	if err != nil {
		s.log.Error().Err(err).Msg("obesity classifier failed")
		return nil, fmt.Errorf("classify: %w", err)
	}

	label, err := domain.ObesityLabel(class)
	if err != nil {
		return nil, err
	}

	return &ports.ObesityResult{BMI: in.BMI(), Class: class, Label: label}, nil
}
