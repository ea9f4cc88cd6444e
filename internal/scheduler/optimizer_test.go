package scheduler

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/predictor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOpts = Options{Date: "2026-10-18", QualityTier: models.QualityMedium}

func TestOptimizer_RoundRobinScenario(t *testing.T) {
	p := &fakePredictor{score: tableScore(map[int]map[string]float64{
		1: {"F1": 9, "F2": 8},
		2: {"F1": 8, "F2": 9},
		3: {"F1": 7, "F2": 7},
	})}
	opt := NewOptimizer(p)

	got, err := opt.Optimize(context.Background(), makeWorkers(3), makeFields(2), testOpts)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "W1", got[0].WorkerID)
	assert.Equal(t, "F1", got[0].FieldID)
	assert.Equal(t, "W2", got[1].WorkerID)
	assert.Equal(t, "F2", got[1].FieldID)
	// W3 is the only one left and F1 is iterated first in round two.
	assert.Equal(t, "W3", got[2].WorkerID)
	assert.Equal(t, "F1", got[2].FieldID)

	assert.Equal(t, "Worker 1", got[0].WorkerName)
	assert.Equal(t, "Field 2", got[1].FieldName)
	assert.Equal(t, 9.0, got[0].PredictedEfficiency)
	for _, a := range got {
		assert.Equal(t, models.AssignmentPending, a.Status)
		assert.Equal(t, "2026-10-18", a.Date)
	}
}

func TestOptimizer_TiesKeepGenerationOrder(t *testing.T) {
	p := &fakePredictor{score: func(predictor.ScoringInput) float64 { return 5 }}
	opt := NewOptimizer(p)

	got, err := opt.Optimize(context.Background(), makeWorkers(4), makeFields(2), testOpts)
	require.NoError(t, err)

	pairs := make([][2]string, len(got))
	for i, a := range got {
		pairs[i] = [2]string{a.FieldID, a.WorkerID}
	}
	assert.Equal(t, [][2]string{{"F1", "W1"}, {"F2", "W2"}, {"F1", "W3"}, {"F2", "W4"}}, pairs)
}

func TestOptimizer_BestWorkerContested(t *testing.T) {
	// Both fields rank W1 first; F1 claims it because it is iterated first.
	p := &fakePredictor{score: tableScore(map[int]map[string]float64{
		1: {"F1": 10, "F2": 10},
		2: {"F1": 1, "F2": 6},
		3: {"F1": 2, "F2": 5},
	})}

	got, err := NewOptimizer(p).Optimize(context.Background(), makeWorkers(3), makeFields(2), testOpts)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, [2]string{"F1", "W1"}, [2]string{got[0].FieldID, got[0].WorkerID})
	assert.Equal(t, [2]string{"F2", "W2"}, [2]string{got[1].FieldID, got[1].WorkerID})
	assert.Equal(t, [2]string{"F1", "W3"}, [2]string{got[2].FieldID, got[2].WorkerID})
}

func TestOptimizer_Properties(t *testing.T) {
	score := func(in predictor.ScoringInput) float64 {
		return float64((in.Age*31+int(in.FieldSlope)*13+len(in.FieldID)*7)%17) + float64(in.YearsExperience)/10
	}

	for _, size := range []struct{ workers, fields int }{
		{1, 1}, {1, 4}, {4, 1}, {5, 3}, {7, 7}, {12, 5}, {3, 8}, {25, 6},
	} {
		workers := makeWorkers(size.workers)
		fields := makeFields(size.fields)

		got, err := NewOptimizer(&fakePredictor{score: score}).Optimize(context.Background(), workers, fields, testOpts)
		require.NoError(t, err)
		require.Len(t, got, size.workers)

		seen := make(map[string]int)
		perField := make(map[string]int)
		for _, a := range got {
			seen[a.WorkerID]++
			perField[a.FieldID]++
		}
		for _, w := range workers {
			assert.Equal(t, 1, seen[w.ID], "worker %s assigned once", w.ID)
		}

		counts := make([]int, 0, len(fields))
		for _, f := range fields {
			counts = append(counts, perField[f.ID])
		}
		minC, maxC := counts[0], counts[0]
		for _, c := range counts {
			minC = min(minC, c)
			maxC = max(maxC, c)
		}
		assert.LessOrEqual(t, maxC-minC, 1, "balance for %d workers / %d fields", size.workers, size.fields)

		var sum float64
		for _, a := range got {
			sum += a.PredictedEfficiency
		}
		s := Summarize(got)
		assert.InDelta(t, sum/float64(len(got)), s.AverageEfficiency, 1e-9)
	}
}

func TestOptimizer_Deterministic(t *testing.T) {
	score := func(in predictor.ScoringInput) float64 {
		return math.Mod(float64(in.Age)*1.7+in.FieldSlope*0.3, 4)
	}
	workers := makeWorkers(9)
	fields := makeFields(4)

	first, err := NewOptimizer(&fakePredictor{score: score}).Optimize(context.Background(), workers, fields, testOpts)
	require.NoError(t, err)
	second, err := NewOptimizer(&fakePredictor{score: score}).Optimize(context.Background(), workers, fields, testOpts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOptimizer_IgnoresFieldCapacity(t *testing.T) {
	fields := makeFields(2)
	for i := range fields {
		fields[i].MaxWorkers = 1
	}

	got, err := NewOptimizer(&fakePredictor{}).Optimize(context.Background(), makeWorkers(5), fields, testOpts)
	require.NoError(t, err)
	assert.Len(t, got, 5)

	perField := map[string]int{}
	for _, a := range got {
		perField[a.FieldID]++
	}
	assert.Equal(t, 3, perField["F1"])
	assert.Equal(t, 2, perField["F2"])
}

func TestOptimizer_SingleBatchCall(t *testing.T) {
	p := &fakePredictor{}
	_, err := NewOptimizer(p).Optimize(context.Background(), makeWorkers(6), makeFields(4), Options{Date: "2026-10-18", QualityTier: models.QualityLow})
	require.NoError(t, err)

	assert.Equal(t, 1, p.predictCalls)
	assert.Len(t, p.lastBatch, 24)
	for _, in := range p.lastBatch {
		assert.Equal(t, models.QualityLow, in.QualityTier)
	}
}

func TestOptimizer_InitializesOnce(t *testing.T) {
	p := &fakePredictor{}
	opt := NewOptimizer(p)

	for i := 0; i < 3; i++ {
		_, err := opt.Optimize(context.Background(), makeWorkers(2), makeFields(2), testOpts)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, p.initCalls)
	assert.Equal(t, 3, p.predictCalls)
}

func TestOptimizer_SkipsInitializeWhenReady(t *testing.T) {
	p := &fakePredictor{ready: true}
	_, err := NewOptimizer(p).Optimize(context.Background(), makeWorkers(2), makeFields(1), testOpts)
	require.NoError(t, err)
	assert.Equal(t, 0, p.initCalls)
}

func TestOptimizer_InitializationFailure(t *testing.T) {
	cause := errors.New("model weights missing")
	p := &fakePredictor{initErr: cause}

	got, err := NewOptimizer(p).Optimize(context.Background(), makeWorkers(2), makeFields(2), testOpts)
	require.Error(t, err)
	assert.Nil(t, got)

	var initErr *PredictorInitError
	require.ErrorAs(t, err, &initErr)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 0, p.predictCalls)
}

func TestOptimizer_EmptyInput(t *testing.T) {
	p := &fakePredictor{}
	opt := NewOptimizer(p)

	_, err := opt.Optimize(context.Background(), nil, makeFields(2), testOpts)
	assert.ErrorIs(t, err, ErrNoWorkers)
	assert.True(t, IsValidation(err))

	_, err = opt.Optimize(context.Background(), makeWorkers(2), []models.Field{}, testOpts)
	assert.ErrorIs(t, err, ErrNoFields)
	assert.True(t, IsValidation(err))

	assert.Equal(t, 0, p.initCalls)
	assert.Equal(t, 0, p.predictCalls)
}

func TestOptimizer_PredictionMismatch(t *testing.T) {
	p := &fakePredictor{dropLast: true}
	_, err := NewOptimizer(p).Optimize(context.Background(), makeWorkers(2), makeFields(2), testOpts)
	assert.ErrorIs(t, err, ErrPredictionMismatch)
	assert.False(t, IsValidation(err))
}

func TestOptimizer_Score(t *testing.T) {
	p := &fakePredictor{score: tableScore(map[int]map[string]float64{
		1: {"F1": 1.5, "F2": 2.5},
		2: {"F1": 3.5, "F2": 4.5},
	})}

	got, err := NewOptimizer(p).Score(context.Background(), makeWorkers(2), makeFields(2), models.QualityHigh)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, ScoredCandidate{WorkerID: "W1", WorkerName: "Worker 1", FieldID: "F2", FieldName: "Field 2", PredictedEfficiency: 2.5}, got[1])
	assert.Equal(t, ScoredCandidate{WorkerID: "W2", WorkerName: "Worker 2", FieldID: "F1", FieldName: "Field 1", PredictedEfficiency: 3.5}, got[2])
}
