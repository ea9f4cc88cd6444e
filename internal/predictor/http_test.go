package predictor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModelServer(t *testing.T, loadStatus int, predictCalls *atomic.Int32) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/model/load", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.WriteHeader(loadStatus)
	})
	mux.HandleFunc("/v1/predict", func(w http.ResponseWriter, r *http.Request) {
		predictCalls.Add(1)
		var req predictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		out := predictResponse{Efficiencies: make([]float64, len(req.Inputs))}
		for i, in := range req.Inputs {
			out.Efficiencies[i] = float64(in.YearsExperience) + in.FieldSlope/10
		}
		json.NewEncoder(w).Encode(out)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTP_InitializeAndPredict(t *testing.T) {
	var calls atomic.Int32
	srv := newModelServer(t, http.StatusOK, &calls)

	p := NewHTTP(srv.URL+"/", "secret", time.Second)
	assert.False(t, p.IsReady())

	_, err := p.PredictBatch(context.Background(), []ScoringInput{{}})
	assert.ErrorIs(t, err, ErrNotReady)

	require.NoError(t, p.Initialize(context.Background()))
	assert.True(t, p.IsReady())

	out, err := p.PredictBatch(context.Background(), []ScoringInput{
		{YearsExperience: 3, FieldSlope: 20, Gender: models.GenderMale},
		{YearsExperience: 1, FieldSlope: 0, Gender: models.GenderOther},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 1}, out)
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTP_InitializeFailure(t *testing.T) {
	var calls atomic.Int32
	srv := newModelServer(t, http.StatusServiceUnavailable, &calls)

	p := NewHTTP(srv.URL, "secret", time.Second)
	err := p.Initialize(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.False(t, p.IsReady())
}
