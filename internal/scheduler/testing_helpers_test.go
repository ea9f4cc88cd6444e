package scheduler

import (
	"context"
	"fmt"

	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/predictor"
)

// fakePredictor scores by (worker age, field id); tests use ages as worker keys.
type fakePredictor struct {
	ready        bool
	initErr      error
	initCalls    int
	predictCalls int
	dropLast     bool
	score        func(in predictor.ScoringInput) float64
	lastBatch    []predictor.ScoringInput
}

func (f *fakePredictor) IsReady() bool { return f.ready }

func (f *fakePredictor) Initialize(ctx context.Context) error {
	f.initCalls++
	if f.initErr != nil {
		return f.initErr
	}
	f.ready = true
	return nil
}

func (f *fakePredictor) PredictBatch(ctx context.Context, inputs []predictor.ScoringInput) ([]float64, error) {
	f.predictCalls++
	f.lastBatch = inputs
	out := make([]float64, len(inputs))
	for i, in := range inputs {
		if f.score != nil {
			out[i] = f.score(in)
		}
	}
	if f.dropLast && len(out) > 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

// tableScore builds a score func from table[age][fieldID].
func tableScore(table map[int]map[string]float64) func(predictor.ScoringInput) float64 {
	return func(in predictor.ScoringInput) float64 {
		return table[in.Age][in.FieldID]
	}
}

func makeWorkers(n int) []models.Worker {
	workers := make([]models.Worker, n)
	for i := range workers {
		workers[i] = models.Worker{
			ID:         fmt.Sprintf("W%d", i+1),
			Name:       fmt.Sprintf("Worker %d", i+1),
			Age:        i + 1,
			Experience: fmt.Sprintf("%d years", i%7),
			Gender:     models.GenderFemale,
		}
	}
	return workers
}

func makeFields(n int) []models.Field {
	fields := make([]models.Field, n)
	for i := range fields {
		fields[i] = models.Field{
			ID:         fmt.Sprintf("F%d", i+1),
			Name:       fmt.Sprintf("Field %d", i+1),
			Slope:      float64(i * 5),
			MaxWorkers: 1,
		}
	}
	return fields
}
