package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/scheduler"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
	exportService   *services.ExportService
}

func NewScheduleHandler(scheduleService *services.ScheduleService, exportService *services.ExportService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService, exportService: exportService}
}

type GenerateScheduleRequest struct {
	Date        string `json:"date" binding:"required" example:"2026-10-18"`
	QualityTier string `json:"quality_tier" example:"Medium"`
}

// GenerateFailureResponse carries the generated schedule when it could not be
// stored.
type GenerateFailureResponse struct {
	Error    string                        `json:"error"`
	Schedule *scheduler.AssignmentSchedule `json:"schedule"`
}

// GenerateSchedule godoc
// @Summary Generate a schedule
// @Description Assign every worker of the plantation to one field for the given day and store the result. Regenerating a day updates its schedule in place.
// @Tags schedules
// @Accept json
// @Produce json
// @Param plantationID path string true "Plantation ID"
// @Param request body GenerateScheduleRequest true "Generation request"
// @Success 201 {object} scheduler.AssignmentSchedule
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} GenerateFailureResponse
// @Failure 503 {object} ErrorResponse
// @Router /plantations/{plantationID}/schedules [post]
func (h *ScheduleHandler) GenerateSchedule(c *gin.Context) {
	var req GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	schedule, err := h.scheduleService.Generate(c.Request.Context(), services.GenerateRequest{
		PlantationID: c.Param("plantationID"),
		Date:         req.Date,
		QualityTier:  models.QualityTier(req.QualityTier),
	})
	if err != nil {
		var persistErr *services.PersistenceError
		if errors.As(err, &persistErr) {
			c.JSON(http.StatusInternalServerError, GenerateFailureResponse{Error: err.Error(), Schedule: schedule})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// GetLatestSchedule godoc
// @Summary Latest schedule
// @Description Get the most recent active schedule of a plantation
// @Tags schedules
// @Produce json
// @Param plantationID path string true "Plantation ID"
// @Success 200 {object} models.Schedule
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plantations/{plantationID}/schedules/latest [get]
func (h *ScheduleHandler) GetLatestSchedule(c *gin.Context) {
	schedule, err := h.scheduleService.Latest(c.Request.Context(), c.Param("plantationID"))
	if err != nil {
		writeError(c, err)
		return
	}
	if schedule == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no active schedule"})
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// GetScheduleByDate godoc
// @Summary Schedule of a day
// @Description Get the active schedule of a plantation for one date
// @Tags schedules
// @Produce json
// @Param plantationID path string true "Plantation ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} models.Schedule
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /plantations/{plantationID}/schedules/{date} [get]
func (h *ScheduleHandler) GetScheduleByDate(c *gin.Context) {
	schedule, err := h.scheduleService.ByDate(c.Request.Context(), c.Param("plantationID"), c.Param("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	if schedule == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no active schedule for " + c.Param("date")})
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule godoc
// @Summary Archive a schedule
// @Description Soft delete: the schedule is archived and no longer returned by lookups
// @Tags schedules
// @Param id path string true "Schedule ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	if err := h.scheduleService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportSchedule godoc
// @Summary Export a schedule
// @Description Download a schedule as an Excel workbook
// @Tags schedules
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Schedule ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /schedules/{id}/export [get]
func (h *ScheduleHandler) ExportSchedule(c *gin.Context) {
	data, filename, err := h.exportService.ExportXLSX(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
