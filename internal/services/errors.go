package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrFieldNotFound    = errors.New("field not found")
)

// PersistenceError reports that a generated schedule could not be stored.
// The schedule returned alongside it is still complete and usable.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist schedule: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs struct tag validation and wraps failures in
// ErrInvalidRequest with a readable field list.
func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q", ErrInvalidRequest, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

func isInvalid(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}
