package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrScheduleNotFound = errors.New("schedule not found")

const DefaultScanLimit = 100

// ScheduleTotals are the aggregate values stored with a schedule.
type ScheduleTotals struct {
	TotalWorkers      int
	TotalFields       int
	AverageEfficiency float64
}

// ScheduleRepository persists one active schedule per plantation-day.
//
// Save reads then writes without a transaction or lock: two concurrent saves
// for the same plantation-day can both miss the existing row and create two
// active schedules. Callers that need stronger guarantees must serialize
// saves per (plantation, date) themselves.
type ScheduleRepository struct {
	db        *gorm.DB
	scanLimit int
	now       func() time.Time
}

func NewScheduleRepository(db *gorm.DB, scanLimit int) *ScheduleRepository {
	if scanLimit <= 0 {
		scanLimit = DefaultScanLimit
	}
	return &ScheduleRepository{db: db, scanLimit: scanLimit, now: time.Now}
}

// WithClock replaces the time source used for created/updated timestamps.
func (r *ScheduleRepository) WithClock(now func() time.Time) *ScheduleRepository {
	r.now = now
	return r
}

// Save creates the plantation-day schedule or overwrites the active one in
// place, keeping its id and creation time.
func (r *ScheduleRepository) Save(ctx context.Context, plantationID, date string, totals ScheduleTotals, assignments []models.WorkerAssignment) (*models.Schedule, error) {
	existing, err := r.FindByDate(ctx, plantationID, date)
	if err != nil {
		return nil, fmt.Errorf("lookup schedule for %s on %s: %w", plantationID, date, err)
	}

	now := r.now().UTC()
	if existing != nil {
		existing.TotalWorkers = totals.TotalWorkers
		existing.TotalFields = totals.TotalFields
		existing.AverageEfficiency = totals.AverageEfficiency
		existing.Assignments = datatypes.NewJSONSlice(assignments)
		existing.UpdatedAt = now

		if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
			return nil, fmt.Errorf("update schedule %s: %w", existing.ID, err)
		}
		return existing, nil
	}

	schedule := &models.Schedule{
		ID:                uuid.NewString(),
		PlantationID:      plantationID,
		Date:              date,
		TotalWorkers:      totals.TotalWorkers,
		TotalFields:       totals.TotalFields,
		AverageEfficiency: totals.AverageEfficiency,
		Assignments:       datatypes.NewJSONSlice(assignments),
		Status:            models.ScheduleActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := r.db.WithContext(ctx).Create(schedule).Error; err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}
	return schedule, nil
}

// FindByDate returns the active schedule of a plantation-day, or nil.
func (r *ScheduleRepository) FindByDate(ctx context.Context, plantationID, date string) (*models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.WithContext(ctx).
		Where("plantation_id = ? AND date = ?", plantationID, date).
		Order("updated_at DESC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}

	for i := range schedules {
		if schedules[i].Status == models.ScheduleActive {
			return &schedules[i], nil
		}
	}
	return nil, nil
}

// FindLatest scans the most recent schedules across all plantations, newest
// date first, and returns the first active one for plantationID. Filtering
// happens here rather than in the query so no compound index is needed; a
// plantation whose schedules fall outside the scan window gets nil.
func (r *ScheduleRepository) FindLatest(ctx context.Context, plantationID string) (*models.Schedule, error) {
	var recent []models.Schedule
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Order("updated_at DESC").
		Limit(r.scanLimit).
		Find(&recent).Error
	if err != nil {
		return nil, err
	}

	for i := range recent {
		if recent[i].PlantationID == plantationID && recent[i].Status == models.ScheduleActive {
			return &recent[i], nil
		}
	}
	return nil, nil
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

// Delete archives a schedule. Rows are never removed.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     models.ScheduleArchived,
			"updated_at": r.now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrScheduleNotFound
	}
	return nil
}
