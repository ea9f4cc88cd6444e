package models

import "time"

// Field ids are unique within a plantation. Some callers use the display
// name as the id.
type Field struct {
	PlantationID string  `gorm:"primaryKey;size:64" json:"plantation_id"`
	ID           string  `gorm:"primaryKey;size:128" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Slope        float64 `gorm:"not null" json:"slope"`
	// MaxWorkers is the declared capacity. The scheduler does not enforce it.
	MaxWorkers int       `gorm:"not null;default:0" json:"max_workers"`
	Location   string    `json:"location,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
