package scheduler

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/predictor"
)

// Options configure one optimization run.
type Options struct {
	// Date is stamped on every assignment (YYYY-MM-DD).
	Date        string
	QualityTier models.QualityTier
}

// Optimizer allocates every worker to exactly one field.
type Optimizer struct {
	predictor predictor.Predictor
	initMu    sync.Mutex
}

func NewOptimizer(p predictor.Predictor) *Optimizer {
	return &Optimizer{predictor: p}
}

// Optimize scores all pairings in one predictor call and assigns workers to
// fields in round-robin passes. Assignments are returned in creation order:
// by round, then by field order within the round.
func (o *Optimizer) Optimize(ctx context.Context, workers []models.Worker, fields []models.Field, opts Options) ([]models.WorkerAssignment, error) {
	if len(workers) == 0 {
		return nil, ErrNoWorkers
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	candidates, err := o.Score(ctx, workers, fields, opts.QualityTier)
	if err != nil {
		return nil, err
	}

	fieldOrder, ranked := rankByField(fields, candidates)
	return allocate(fieldOrder, ranked, opts.Date), nil
}

// Score runs the combination generator and the predictor over the whole
// batch, zipping the results back onto the pairings.
func (o *Optimizer) Score(ctx context.Context, workers []models.Worker, fields []models.Field, tier models.QualityTier) ([]ScoredCandidate, error) {
	if err := o.ensureReady(ctx); err != nil {
		return nil, err
	}

	inputs := GenerateCombinations(workers, fields, tier)
	scores, err := o.predictor.PredictBatch(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("predict batch: %w", err)
	}
	if len(scores) != len(inputs) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrPredictionMismatch, len(scores), len(inputs))
	}

	candidates := make([]ScoredCandidate, len(inputs))
	for i, score := range scores {
		w := workers[i/len(fields)]
		f := fields[i%len(fields)]
		candidates[i] = ScoredCandidate{
			WorkerID:            w.ID,
			WorkerName:          w.Name,
			FieldID:             f.ID,
			FieldName:           f.Name,
			PredictedEfficiency: score,
		}
	}
	return candidates, nil
}

func (o *Optimizer) ensureReady(ctx context.Context) error {
	o.initMu.Lock()
	defer o.initMu.Unlock()

	if o.predictor.IsReady() {
		return nil
	}
	if err := o.predictor.Initialize(ctx); err != nil {
		return &PredictorInitError{Err: err}
	}
	return nil
}

// rankByField groups candidates per field id, keeping the first-seen field
// order, and sorts each group by efficiency, highest first. The sort is
// stable so equal scores keep generation order.
func rankByField(fields []models.Field, candidates []ScoredCandidate) ([]string, map[string][]ScoredCandidate) {
	order := make([]string, 0, len(fields))
	ranked := make(map[string][]ScoredCandidate, len(fields))
	for _, f := range fields {
		if _, ok := ranked[f.ID]; !ok {
			order = append(order, f.ID)
			ranked[f.ID] = nil
		}
	}

	for _, c := range candidates {
		ranked[c.FieldID] = append(ranked[c.FieldID], c)
	}

	for _, id := range order {
		slices.SortStableFunc(ranked[id], func(a, b ScoredCandidate) int {
			switch {
			case a.PredictedEfficiency > b.PredictedEfficiency:
				return -1
			case a.PredictedEfficiency < b.PredictedEfficiency:
				return 1
			default:
				return 0
			}
		})
	}
	return order, ranked
}

func allocate(fieldOrder []string, ranked map[string][]ScoredCandidate, date string) []models.WorkerAssignment {
	assigned := make(map[string]struct{})
	var out []models.WorkerAssignment

	for {
		progressed := false
		for _, fieldID := range fieldOrder {
			for _, c := range ranked[fieldID] {
				if _, taken := assigned[c.WorkerID]; taken {
					continue
				}
				assigned[c.WorkerID] = struct{}{}
				out = append(out, models.WorkerAssignment{
					WorkerID:            c.WorkerID,
					WorkerName:          c.WorkerName,
					FieldID:             c.FieldID,
					FieldName:           c.FieldName,
					PredictedEfficiency: c.PredictedEfficiency,
					Date:                date,
					Status:              models.AssignmentPending,
				})
				progressed = true
				break
			}
		}
		if !progressed {
			return out
		}
	}
}
