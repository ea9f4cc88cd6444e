package scheduler

import "github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"

// ScoredCandidate is a (worker, field) pairing with its predicted efficiency.
type ScoredCandidate struct {
	WorkerID            string
	WorkerName          string
	FieldID             string
	FieldName           string
	PredictedEfficiency float64
}

// AssignmentSchedule is the in-memory result of one generation run.
type AssignmentSchedule struct {
	ID                string                    `json:"id" yaml:"id"`
	Date              string                    `json:"date" yaml:"date"`
	Assignments       []models.WorkerAssignment `json:"assignments" yaml:"assignments"`
	TotalWorkers      int                       `json:"total_workers" yaml:"total_workers"`
	TotalFields       int                       `json:"total_fields" yaml:"total_fields"`
	AverageEfficiency float64                   `json:"average_efficiency" yaml:"average_efficiency"`
	Status            models.ScheduleStatus     `json:"status" yaml:"status"`
}
