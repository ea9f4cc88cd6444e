// Package predictor defines the efficiency predictor used by the scheduler
// and ships two implementations: a local linear model and a remote HTTP
// model server client.
package predictor

import (
	"context"
	"errors"

	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
)

var ErrNotReady = errors.New("predictor not initialized")

// ScoringInput is one (worker, field) pairing to be scored.
type ScoringInput struct {
	Age             int                `json:"age"`
	Gender          models.Gender      `json:"gender"`
	YearsExperience int                `json:"years_experience"`
	FieldSlope      float64            `json:"field_slope"`
	QualityTier     models.QualityTier `json:"quality_tier"`
	FieldID         string             `json:"field_id"`
}

// Predictor scores harvesting efficiency in kg/hour.
//
// Initialize must succeed before PredictBatch is called. PredictBatch returns
// one value per input, in input order.
type Predictor interface {
	IsReady() bool
	Initialize(ctx context.Context) error
	PredictBatch(ctx context.Context, inputs []ScoringInput) ([]float64, error)
}
