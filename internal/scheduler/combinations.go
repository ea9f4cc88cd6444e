package scheduler

import (
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/parse"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/predictor"
)

// GenerateCombinations returns one scoring input per (worker, field) pair,
// workers in the outer loop and fields in the inner loop. Ties in the
// optimizer are broken by this order.
func GenerateCombinations(workers []models.Worker, fields []models.Field, tier models.QualityTier) []predictor.ScoringInput {
	inputs := make([]predictor.ScoringInput, 0, len(workers)*len(fields))
	for _, w := range workers {
		years := parse.Years(w.Experience)
		for _, f := range fields {
			inputs = append(inputs, predictor.ScoringInput{
				Age: w.Age,
				// Other is passed through as is; the predictor has no category for it.
				Gender:          w.Gender,
				YearsExperience: years,
				FieldSlope:      f.Slope,
				QualityTier:     tier,
				FieldID:         f.ID,
			})
		}
	}
	return inputs
}
