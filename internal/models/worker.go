package models

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	// GenderOther is accepted on workers but has no dedicated scoring category.
	GenderOther Gender = "Other"
)

// Worker ids are unique within a plantation.
type Worker struct {
	PlantationID string    `gorm:"primaryKey;size:64" json:"plantation_id"`
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Experience   string    `gorm:"size:128" json:"experience"`
	Age          int       `gorm:"not null" json:"age"`
	Gender       Gender    `gorm:"size:16;not null" json:"gender"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
