package models

import (
	"time"

	"gorm.io/datatypes"
)

type QualityTier string

const (
	QualityHigh   QualityTier = "High"
	QualityMedium QualityTier = "Medium"
	QualityLow    QualityTier = "Low"
)

type ScheduleStatus string

const (
	ScheduleActive   ScheduleStatus = "active"
	ScheduleArchived ScheduleStatus = "archived"
)

type AssignmentStatus string

const (
	AssignmentPending AssignmentStatus = "pending"
)

// DateLayout is the layout of the plantation-day key.
const DateLayout = "2006-01-02"

type WorkerAssignment struct {
	WorkerID            string           `json:"worker_id" yaml:"worker_id"`
	WorkerName          string           `json:"worker_name" yaml:"worker_name"`
	FieldID             string           `json:"field_id" yaml:"field_id"`
	FieldName           string           `json:"field_name" yaml:"field_name"`
	PredictedEfficiency float64          `json:"predicted_efficiency" yaml:"predicted_efficiency"`
	Date                string           `json:"date" yaml:"date"`
	Status              AssignmentStatus `json:"status" yaml:"status"`
}

// Schedule is the persisted schedule of one plantation-day. At most one row
// per (PlantationID, Date) is expected to be active.
type Schedule struct {
	ID                string                               `gorm:"primaryKey;size:36" json:"id"`
	PlantationID      string                               `gorm:"not null;size:64;index:idx_schedules_plantation_date" json:"plantation_id"`
	Date              string                               `gorm:"not null;size:10;index:idx_schedules_plantation_date;index" json:"date"`
	TotalWorkers      int                                  `gorm:"not null" json:"total_workers"`
	TotalFields       int                                  `gorm:"not null" json:"total_fields"`
	AverageEfficiency float64                              `gorm:"not null" json:"average_efficiency"`
	Assignments       datatypes.JSONSlice[WorkerAssignment] `json:"assignments"`
	Status            ScheduleStatus                       `gorm:"size:16;not null;default:active;index" json:"status"`
	CreatedAt         time.Time                            `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt         time.Time                            `gorm:"autoUpdateTime:false" json:"updated_at"`
}
