// Package metrics records schedule generation telemetry.
package metrics

import "time"

// Generation outcomes used as the "outcome" label.
const (
	OutcomeSuccess          = "success"
	OutcomeValidation       = "validation_error"
	OutcomePredictorInit    = "predictor_init_error"
	OutcomePredictorFailure = "predictor_error"
	OutcomePersistence      = "persistence_error"
	OutcomeRosterFailure    = "roster_error"
)

// Recorder is the set of measurements taken by the schedule service.
type Recorder interface {
	ObserveGeneration(outcome string, elapsed time.Duration)
	ObservePredictorBatch(size int)
	AddAssignments(n int)
}

// NopRecorder discards every measurement.
type NopRecorder struct{}

var _ Recorder = NopRecorder{}

func NewNop() NopRecorder { return NopRecorder{} }

func (NopRecorder) ObserveGeneration(string, time.Duration) {}
func (NopRecorder) ObservePredictorBatch(int)               {}
func (NopRecorder) AddAssignments(int)                      {}
