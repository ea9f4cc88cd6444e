package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/scheduler"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/services"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps service and scheduler errors onto HTTP status codes.
func statusFor(err error) int {
	var initErr *scheduler.PredictorInitError
	var persistErr *services.PersistenceError
	switch {
	case errors.Is(err, services.ErrInvalidRequest), scheduler.IsValidation(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrScheduleNotFound),
		errors.Is(err, services.ErrWorkerNotFound),
		errors.Is(err, services.ErrFieldNotFound):
		return http.StatusNotFound
	case errors.As(err, &initErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &persistErr):
		return http.StatusInternalServerError
	case errors.Is(err, scheduler.ErrPredictionMismatch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
}
