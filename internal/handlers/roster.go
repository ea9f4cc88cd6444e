package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/services"
)

type RosterHandler struct {
	rosterService *services.RosterService
}

func NewRosterHandler(rosterService *services.RosterService) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

type WorkerResponse struct {
	ID           string    `json:"id"`
	PlantationID string    `json:"plantation_id"`
	Name         string    `json:"name"`
	Experience   string    `json:"experience"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender"`
	CreatedAt    time.Time `json:"created_at"`
}

type FieldResponse struct {
	ID           string    `json:"id"`
	PlantationID string    `json:"plantation_id"`
	Name         string    `json:"name"`
	Slope        float64   `json:"slope"`
	MaxWorkers   int       `json:"max_workers"`
	Location     string    `json:"location,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toWorkerResponse(w models.Worker) WorkerResponse {
	return WorkerResponse{
		ID:           w.ID,
		PlantationID: w.PlantationID,
		Name:         w.Name,
		Experience:   w.Experience,
		Age:          w.Age,
		Gender:       string(w.Gender),
		CreatedAt:    w.CreatedAt,
	}
}

func toFieldResponse(f models.Field) FieldResponse {
	return FieldResponse{
		ID:           f.ID,
		PlantationID: f.PlantationID,
		Name:         f.Name,
		Slope:        f.Slope,
		MaxWorkers:   f.MaxWorkers,
		Location:     f.Location,
		CreatedAt:    f.CreatedAt,
	}
}

// ListWorkers godoc
// @Summary List workers
// @Description List a plantation's workers in creation order
// @Tags roster
// @Produce json
// @Param plantationID path string true "Plantation ID"
// @Success 200 {array} WorkerResponse
// @Failure 500 {object} ErrorResponse
// @Router /plantations/{plantationID}/workers [get]
func (h *RosterHandler) ListWorkers(c *gin.Context) {
	workers, err := h.rosterService.ListWorkers(c.Request.Context(), c.Param("plantationID"))
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]WorkerResponse, len(workers))
	for i, w := range workers {
		response[i] = toWorkerResponse(w)
	}
	c.JSON(http.StatusOK, response)
}

// CreateWorker godoc
// @Summary Add a worker
// @Description Add a worker to a plantation
// @Tags roster
// @Accept json
// @Produce json
// @Param plantationID path string true "Plantation ID"
// @Param request body services.WorkerInput true "Worker"
// @Success 201 {object} WorkerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plantations/{plantationID}/workers [post]
func (h *RosterHandler) CreateWorker(c *gin.Context) {
	var req services.WorkerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	worker, err := h.rosterService.CreateWorker(c.Request.Context(), c.Param("plantationID"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toWorkerResponse(*worker))
}

// UpdateWorker godoc
// @Summary Update a worker
// @Description Replace a worker's name, experience, age and gender
// @Tags roster
// @Accept json
// @Produce json
// @Param plantationID path string true "Plantation ID"
// @Param id path string true "Worker ID"
// @Param request body services.WorkerInput true "Worker"
// @Success 200 {object} WorkerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plantations/{plantationID}/workers/{id} [put]
func (h *RosterHandler) UpdateWorker(c *gin.Context) {
	var req services.WorkerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	worker, err := h.rosterService.UpdateWorker(c.Request.Context(), c.Param("plantationID"), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWorkerResponse(*worker))
}

// DeleteWorker godoc
// @Summary Remove a worker
// @Tags roster
// @Param plantationID path string true "Plantation ID"
// @Param id path string true "Worker ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plantations/{plantationID}/workers/{id} [delete]
func (h *RosterHandler) DeleteWorker(c *gin.Context) {
	if err := h.rosterService.DeleteWorker(c.Request.Context(), c.Param("plantationID"), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListFields godoc
// @Summary List fields
// @Description List a plantation's fields in creation order
// @Tags roster
// @Produce json
// @Param plantationID path string true "Plantation ID"
// @Success 200 {array} FieldResponse
// @Failure 500 {object} ErrorResponse
// @Router /plantations/{plantationID}/fields [get]
func (h *RosterHandler) ListFields(c *gin.Context) {
	fields, err := h.rosterService.ListFields(c.Request.Context(), c.Param("plantationID"))
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]FieldResponse, len(fields))
	for i, f := range fields {
		response[i] = toFieldResponse(f)
	}
	c.JSON(http.StatusOK, response)
}

// CreateField godoc
// @Summary Add a field
// @Description Add a field to a plantation. The declared capacity is informational.
// @Tags roster
// @Accept json
// @Produce json
// @Param plantationID path string true "Plantation ID"
// @Param request body services.FieldInput true "Field"
// @Success 201 {object} FieldResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plantations/{plantationID}/fields [post]
func (h *RosterHandler) CreateField(c *gin.Context) {
	var req services.FieldInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	field, err := h.rosterService.CreateField(c.Request.Context(), c.Param("plantationID"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFieldResponse(*field))
}

// UpdateField godoc
// @Summary Update a field
// @Description Replace a field's name, slope, capacity and location
// @Tags roster
// @Accept json
// @Produce json
// @Param plantationID path string true "Plantation ID"
// @Param id path string true "Field ID"
// @Param request body services.FieldInput true "Field"
// @Success 200 {object} FieldResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plantations/{plantationID}/fields/{id} [put]
func (h *RosterHandler) UpdateField(c *gin.Context) {
	var req services.FieldInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	field, err := h.rosterService.UpdateField(c.Request.Context(), c.Param("plantationID"), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFieldResponse(*field))
}

// DeleteField godoc
// @Summary Remove a field
// @Tags roster
// @Param plantationID path string true "Plantation ID"
// @Param id path string true "Field ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plantations/{plantationID}/fields/{id} [delete]
func (h *RosterHandler) DeleteField(c *gin.Context) {
	if err := h.rosterService.DeleteField(c.Request.Context(), c.Param("plantationID"), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
