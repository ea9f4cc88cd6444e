package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/repository"
	"go.uber.org/zap"
)

type WorkerInput struct {
	ID         string        `json:"id" yaml:"id"`
	Name       string        `json:"name" yaml:"name" validate:"required"`
	Experience string        `json:"experience" yaml:"experience"`
	Age        int           `json:"age" yaml:"age" validate:"gte=0"`
	Gender     models.Gender `json:"gender" yaml:"gender" validate:"required,oneof=Male Female Other"`
}

type FieldInput struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name" validate:"required"`
	Slope      float64 `json:"slope" yaml:"slope" validate:"gte=0"`
	MaxWorkers int     `json:"max_workers" yaml:"max_workers" validate:"gte=0"`
	Location   string  `json:"location" yaml:"location"`
}

// Roster is a bulk import payload for one plantation.
type Roster struct {
	PlantationID string        `json:"plantation_id" yaml:"plantation_id"`
	Workers      []WorkerInput `json:"workers" yaml:"workers"`
	Fields       []FieldInput  `json:"fields" yaml:"fields"`
}

type ImportOptions struct {
	// UseNameAsID keys fields without an id by their display name.
	UseNameAsID bool
	// Strict aborts on the first invalid entry instead of skipping it.
	Strict bool
}

type ImportResult struct {
	WorkersCreated int      `json:"workers_created"`
	FieldsCreated  int      `json:"fields_created"`
	Skipped        []string `json:"skipped,omitempty"`
}

type RosterService struct {
	workerRepo *repository.WorkerRepository
	fieldRepo  *repository.FieldRepository
	logger     *zap.Logger
}

func NewRosterService(workerRepo *repository.WorkerRepository, fieldRepo *repository.FieldRepository, logger *zap.Logger) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{workerRepo: workerRepo, fieldRepo: fieldRepo, logger: logger}
}

func (s *RosterService) CreateWorker(ctx context.Context, plantationID string, in WorkerInput) (*models.Worker, error) {
	if plantationID == "" {
		return nil, fmt.Errorf("%w: plantation id is required", ErrInvalidRequest)
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	worker := &models.Worker{
		ID:           in.ID,
		PlantationID: plantationID,
		Name:         in.Name,
		Experience:   in.Experience,
		Age:          in.Age,
		Gender:       in.Gender,
	}
	if err := s.workerRepo.Create(ctx, worker); err != nil {
		return nil, fmt.Errorf("create worker: %w", err)
	}
	return worker, nil
}

func (s *RosterService) CreateField(ctx context.Context, plantationID string, in FieldInput) (*models.Field, error) {
	return s.createField(ctx, plantationID, in, false)
}

func (s *RosterService) createField(ctx context.Context, plantationID string, in FieldInput, nameAsID bool) (*models.Field, error) {
	if plantationID == "" {
		return nil, fmt.Errorf("%w: plantation id is required", ErrInvalidRequest)
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	field := &models.Field{
		ID:           in.ID,
		PlantationID: plantationID,
		Name:         in.Name,
		Slope:        in.Slope,
		MaxWorkers:   in.MaxWorkers,
		Location:     in.Location,
	}
	if field.ID == "" && nameAsID {
		field.ID = in.Name
	}
	if err := s.fieldRepo.Create(ctx, field); err != nil {
		return nil, fmt.Errorf("create field: %w", err)
	}
	return field, nil
}

func (s *RosterService) ListWorkers(ctx context.Context, plantationID string) ([]models.Worker, error) {
	return s.workerRepo.FindByPlantation(ctx, plantationID)
}

func (s *RosterService) ListFields(ctx context.Context, plantationID string) ([]models.Field, error) {
	return s.fieldRepo.FindByPlantation(ctx, plantationID)
}

// UpdateWorker replaces the mutable attributes of an existing worker.
// The id and plantation of a worker never change.
func (s *RosterService) UpdateWorker(ctx context.Context, plantationID, id string, in WorkerInput) (*models.Worker, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	worker, err := s.workerRepo.FindByID(ctx, plantationID, id)
	if err != nil {
		return nil, fmt.Errorf("find worker: %w", err)
	}
	if worker == nil {
		return nil, ErrWorkerNotFound
	}

	worker.Name = in.Name
	worker.Experience = in.Experience
	worker.Age = in.Age
	worker.Gender = in.Gender
	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, fmt.Errorf("update worker: %w", err)
	}
	return worker, nil
}

func (s *RosterService) DeleteWorker(ctx context.Context, plantationID, id string) error {
	worker, err := s.workerRepo.FindByID(ctx, plantationID, id)
	if err != nil {
		return fmt.Errorf("find worker: %w", err)
	}
	if worker == nil {
		return ErrWorkerNotFound
	}
	if err := s.workerRepo.Delete(ctx, plantationID, id); err != nil {
		return fmt.Errorf("delete worker: %w", err)
	}
	return nil
}

func (s *RosterService) UpdateField(ctx context.Context, plantationID, id string, in FieldInput) (*models.Field, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	field, err := s.fieldRepo.FindByID(ctx, plantationID, id)
	if err != nil {
		return nil, fmt.Errorf("find field: %w", err)
	}
	if field == nil {
		return nil, ErrFieldNotFound
	}

	field.Name = in.Name
	field.Slope = in.Slope
	field.MaxWorkers = in.MaxWorkers
	field.Location = in.Location
	if err := s.fieldRepo.Update(ctx, field); err != nil {
		return nil, fmt.Errorf("update field: %w", err)
	}
	return field, nil
}

func (s *RosterService) DeleteField(ctx context.Context, plantationID, id string) error {
	field, err := s.fieldRepo.FindByID(ctx, plantationID, id)
	if err != nil {
		return fmt.Errorf("find field: %w", err)
	}
	if field == nil {
		return ErrFieldNotFound
	}
	if err := s.fieldRepo.Delete(ctx, plantationID, id); err != nil {
		return fmt.Errorf("delete field: %w", err)
	}
	return nil
}

// ImportRoster creates every worker and field of roster in payload order.
// Invalid entries are skipped and reported unless opts.Strict is set.
// Store failures always abort the import.
func (s *RosterService) ImportRoster(ctx context.Context, roster Roster, opts ImportOptions) (*ImportResult, error) {
	if roster.PlantationID == "" {
		return nil, fmt.Errorf("%w: plantation id is required", ErrInvalidRequest)
	}

	result := &ImportResult{}
	log := s.logger.With(zap.String("plantation_id", roster.PlantationID))

	for i, in := range roster.Workers {
		if _, err := s.CreateWorker(ctx, roster.PlantationID, in); err != nil {
			if !isInvalid(err) || opts.Strict {
				return result, fmt.Errorf("worker %d: %w", i, err)
			}
			log.Warn("skipping invalid worker", zap.Int("index", i), zap.Error(err))
			result.Skipped = append(result.Skipped, fmt.Sprintf("worker %d: %v", i, err))
			continue
		}
		result.WorkersCreated++
	}

	for i, in := range roster.Fields {
		if _, err := s.createField(ctx, roster.PlantationID, in, opts.UseNameAsID); err != nil {
			if !isInvalid(err) || opts.Strict {
				return result, fmt.Errorf("field %d: %w", i, err)
			}
			log.Warn("skipping invalid field", zap.Int("index", i), zap.Error(err))
			result.Skipped = append(result.Skipped, fmt.Sprintf("field %d: %v", i, err))
			continue
		}
		result.FieldsCreated++
	}

	log.Info("roster imported",
		zap.Int("workers", result.WorkersCreated),
		zap.Int("fields", result.FieldsCreated),
		zap.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}
