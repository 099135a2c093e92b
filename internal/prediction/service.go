package prediction

import (
	"context"
	"time"

	"github.com/KAVYA-29-ai/ecommerce/internal/ai"
	"github.com/KAVYA-29-ai/ecommerce/internal/models"
)

// Service runs the prediction pipeline for a single request:
// validate specs, invoke the AI completion, sanitize the result.
type Service interface {
	Predict(ctx context.Context, specs string) (*models.PredictionResult, *models.Error)
}

type service struct {
	completer ai.Completer
	maxSpecs  int
	now       func() time.Time
}

// NewService wires the pipeline against a completion client.
func NewService(completer ai.Completer, maxSpecsLength int) Service {
	return &service{
		completer: completer,
		maxSpecs:  maxSpecsLength,
		now:       time.Now,
	}
}

func (s *service) Predict(ctx context.Context, specs string) (*models.PredictionResult, *models.Error) {
	normalized, perr := ValidateSpecs(specs, s.maxSpecs)
	if perr != nil {
		return nil, perr
	}

	raw, err := s.completer.Complete(ctx, normalized)
	if err != nil {
		return nil, models.AsError(err)
	}

	return Sanitize(raw, s.now)
}
