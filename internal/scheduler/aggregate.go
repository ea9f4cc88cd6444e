package scheduler

import "github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"

// Summary holds the totals derived from an assignment list.
type Summary struct {
	TotalWorkers      int
	TotalFields       int
	AverageEfficiency float64
}

// Summarize computes totals over a non-empty assignment list.
func Summarize(assignments []models.WorkerAssignment) Summary {
	if len(assignments) == 0 {
		return Summary{}
	}

	fields := make(map[string]struct{})
	var sum float64
	for _, a := range assignments {
		fields[a.FieldID] = struct{}{}
		sum += a.PredictedEfficiency
	}

	return Summary{
		TotalWorkers:      len(assignments),
		TotalFields:       len(fields),
		AverageEfficiency: sum / float64(len(assignments)),
	}
}

// BuildSchedule wraps an assignment list and its summary into a schedule.
func BuildSchedule(id, date string, assignments []models.WorkerAssignment) *AssignmentSchedule {
	s := Summarize(assignments)
	return &AssignmentSchedule{
		ID:                id,
		Date:              date,
		Assignments:       assignments,
		TotalWorkers:      s.TotalWorkers,
		TotalFields:       s.TotalFields,
		AverageEfficiency: s.AverageEfficiency,
		Status:            models.ScheduleActive,
	}
}
