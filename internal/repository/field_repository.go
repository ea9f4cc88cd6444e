package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"gorm.io/gorm"
)

type FieldRepository struct {
	db *gorm.DB
}

func NewFieldRepository(db *gorm.DB) *FieldRepository {
	return &FieldRepository{db: db}
}

func (r *FieldRepository) Create(ctx context.Context, field *models.Field) error {
	if field.ID == "" {
		field.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(field).Error
}

func (r *FieldRepository) FindByID(ctx context.Context, plantationID, id string) (*models.Field, error) {
	var field models.Field
	err := r.db.WithContext(ctx).
		Where("plantation_id = ? AND id = ?", plantationID, id).
		First(&field).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &field, nil
}

// FindByPlantation returns the plantation's fields in creation order.
func (r *FieldRepository) FindByPlantation(ctx context.Context, plantationID string) ([]models.Field, error) {
	var fields []models.Field
	err := r.db.WithContext(ctx).
		Where("plantation_id = ?", plantationID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&fields).Error
	return fields, err
}

func (r *FieldRepository) Update(ctx context.Context, field *models.Field) error {
	return r.db.WithContext(ctx).Save(field).Error
}

func (r *FieldRepository) Delete(ctx context.Context, plantationID, id string) error {
	return r.db.WithContext(ctx).
		Where("plantation_id = ? AND id = ?", plantationID, id).
		Delete(&models.Field{}).Error
}
