package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/database"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/predictor"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubPredictor scores by (worker age, field id) lookup; unknown pairs get 1.
type stubPredictor struct {
	mu       sync.Mutex
	ready    bool
	initErr  error
	scores   map[int]map[string]float64
	batches  [][]predictor.ScoringInput
	initRuns int
}

func (p *stubPredictor) IsReady() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

func (p *stubPredictor) Initialize(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.initRuns++
	if p.initErr != nil {
		return p.initErr
	}
	p.ready = true
	return nil
}

func (p *stubPredictor) PredictBatch(_ context.Context, inputs []predictor.ScoringInput) ([]float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.batches = append(p.batches, inputs)
	out := make([]float64, len(inputs))
	for i, in := range inputs {
		out[i] = 1
		if byField, ok := p.scores[in.Age]; ok {
			if v, ok := byField[in.FieldID]; ok {
				out[i] = v
			}
		}
	}
	return out, nil
}

type testRepos struct {
	db        *gorm.DB
	workers   *repository.WorkerRepository
	fields    *repository.FieldRepository
	schedules *repository.ScheduleRepository
}

func setupServiceTestDB(t *testing.T) testRepos {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	clock := time.Date(2026, 10, 18, 5, 0, 0, 0, time.UTC)
	return testRepos{
		db:      db,
		workers: repository.NewWorkerRepository(db),
		fields:  repository.NewFieldRepository(db),
		schedules: repository.NewScheduleRepository(db, 0).WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}),
	}
}

// seedScenario stores W1..W3 (ages 31..33) and F1, F2 for plantation p1 in
// creation order.
func seedScenario(t *testing.T, repos testRepos) {
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"W1", "W2", "W3"} {
		require.NoError(t, repos.workers.Create(ctx, &models.Worker{
			ID: name, PlantationID: "p1", Name: name, Experience: "5 years",
			Age: 31 + i, Gender: models.GenderFemale, CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
	for i, name := range []string{"F1", "F2"} {
		require.NoError(t, repos.fields.Create(ctx, &models.Field{
			ID: name, PlantationID: "p1", Name: name, Slope: 10, MaxWorkers: 1,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
}

// scenarioScores ranks W1>W2>W3 on F1 and W2>W1>W3 on F2.
func scenarioScores() map[int]map[string]float64 {
	return map[int]map[string]float64{
		31: {"F1": 12, "F2": 9},
		32: {"F1": 10, "F2": 11},
		33: {"F1": 4, "F2": 3},
	}
}
