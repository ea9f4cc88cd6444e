package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"gorm.io/gorm"
)

type WorkerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func (r *WorkerRepository) Create(ctx context.Context, worker *models.Worker) error {
	if worker.ID == "" {
		worker.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(worker).Error
}

func (r *WorkerRepository) FindByID(ctx context.Context, plantationID, id string) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.WithContext(ctx).
		Where("plantation_id = ? AND id = ?", plantationID, id).
		First(&worker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &worker, nil
}

// FindByPlantation returns the plantation's workers in creation order.
func (r *WorkerRepository) FindByPlantation(ctx context.Context, plantationID string) ([]models.Worker, error) {
	var workers []models.Worker
	err := r.db.WithContext(ctx).
		Where("plantation_id = ?", plantationID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&workers).Error
	return workers, err
}

func (r *WorkerRepository) Update(ctx context.Context, worker *models.Worker) error {
	return r.db.WithContext(ctx).Save(worker).Error
}

func (r *WorkerRepository) Delete(ctx context.Context, plantationID, id string) error {
	return r.db.WithContext(ctx).
		Where("plantation_id = ? AND id = ?", plantationID, id).
		Delete(&models.Worker{}).Error
}
