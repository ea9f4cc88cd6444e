package scheduler

import (
	"errors"
	"fmt"
)

var (
	ErrNoWorkers          = errors.New("no workers available for assignment")
	ErrNoFields           = errors.New("no fields available for assignment")
	ErrPredictionMismatch = errors.New("predictor returned a different number of scores than inputs")
)

// PredictorInitError reports that the predictor could not be initialized.
// The underlying error is kept as is.
type PredictorInitError struct {
	Err error
}

func (e *PredictorInitError) Error() string {
	return fmt.Sprintf("predictor initialization failed: %v", e.Err)
}

func (e *PredictorInitError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is caused by empty scheduling input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNoWorkers) || errors.Is(err, ErrNoFields)
}
