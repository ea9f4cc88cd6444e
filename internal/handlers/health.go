package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/predictor"
)

type HealthResponse struct {
	Status         string `json:"status"`
	PredictorReady bool   `json:"predictor_ready"`
}

type HealthHandler struct {
	predictor predictor.Predictor
}

func NewHealthHandler(p predictor.Predictor) *HealthHandler {
	return &HealthHandler{predictor: p}
}

// Health godoc
// @Summary Service health
// @Description Report liveness and whether the efficiency predictor has been initialized
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:         "ok",
		PredictorReady: h.predictor != nil && h.predictor.IsReady(),
	})
}
