package services

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/repository"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/scheduler"
	"github.com/xuri/excelize/v2"
)

const ExportSheet = "Schedule"

var exportHeaders = []string{
	"Worker ID", "Worker", "Field ID", "Field", "Predicted Efficiency (kg/h)", "Date", "Status",
}

type ExportService struct {
	scheduleRepo *repository.ScheduleRepository
}

func NewExportService(scheduleRepo *repository.ScheduleRepository) *ExportService {
	return &ExportService{scheduleRepo: scheduleRepo}
}

// ExportXLSX renders a stored schedule, active or archived, as a workbook.
func (s *ExportService) ExportXLSX(ctx context.Context, id string) ([]byte, string, error) {
	schedule, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if schedule == nil {
		return nil, "", ErrScheduleNotFound
	}

	var buf bytes.Buffer
	if err := WriteScheduleXLSX(&buf, ScheduleFromModel(schedule)); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("schedule-%s-%s.xlsx", schedule.PlantationID, schedule.Date)
	return buf.Bytes(), filename, nil
}

// ScheduleFromModel converts a stored schedule into its in-memory form.
func ScheduleFromModel(m *models.Schedule) *scheduler.AssignmentSchedule {
	return &scheduler.AssignmentSchedule{
		ID:                m.ID,
		Date:              m.Date,
		Assignments:       []models.WorkerAssignment(m.Assignments),
		TotalWorkers:      m.TotalWorkers,
		TotalFields:       m.TotalFields,
		AverageEfficiency: m.AverageEfficiency,
		Status:            m.Status,
	}
}

// WriteScheduleXLSX writes one "Schedule" sheet: a header row, one row per
// assignment, then a summary block two rows below the table.
func WriteScheduleXLSX(w io.Writer, schedule *scheduler.AssignmentSchedule) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	for col, header := range exportHeaders {
		if err := setCell(f, col+1, 1, header); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(ExportSheet, "A1", "G1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, a := range schedule.Assignments {
		row := i + 2
		values := []any{a.WorkerID, a.WorkerName, a.FieldID, a.FieldName, a.PredictedEfficiency, a.Date, string(a.Status)}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return err
			}
		}
	}

	summaryRow := len(schedule.Assignments) + 3
	summary := [][2]any{
		{"Total Workers", schedule.TotalWorkers},
		{"Total Fields", schedule.TotalFields},
		{"Average Efficiency (kg/h)", schedule.AverageEfficiency},
	}
	for i, kv := range summary {
		if err := setCell(f, 1, summaryRow+i, kv[0]); err != nil {
			return err
		}
		if err := setCell(f, 2, summaryRow+i, kv[1]); err != nil {
			return err
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, summaryRow)
	last, _ := excelize.CoordinatesToCellName(1, summaryRow+len(summary)-1)
	if err := f.SetCellStyle(ExportSheet, first, last, bold); err != nil {
		return fmt.Errorf("style summary: %w", err)
	}

	if err := f.SetColWidth(ExportSheet, "A", "G", 18); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(ExportSheet, cell, value); err != nil {
		return fmt.Errorf("set %s: %w", cell, err)
	}
	return nil
}
