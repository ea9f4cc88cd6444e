package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/metrics"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/repository"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/scheduler"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GenerateRequest asks for the schedule of one plantation-day.
type GenerateRequest struct {
	PlantationID string             `json:"plantation_id" validate:"required"`
	Date         string             `json:"date" validate:"required,datetime=2006-01-02"`
	QualityTier  models.QualityTier `json:"quality_tier" validate:"omitempty,oneof=High Medium Low"`
}

type ScheduleService struct {
	workerRepo   *repository.WorkerRepository
	fieldRepo    *repository.FieldRepository
	scheduleRepo *repository.ScheduleRepository
	optimizer    *scheduler.Optimizer
	defaultTier  models.QualityTier
	metrics      metrics.Recorder
	logger       *zap.Logger
}

type ScheduleServiceOption func(*ScheduleService)

func WithDefaultQualityTier(tier models.QualityTier) ScheduleServiceOption {
	return func(s *ScheduleService) {
		if tier != "" {
			s.defaultTier = tier
		}
	}
}

func WithMetrics(rec metrics.Recorder) ScheduleServiceOption {
	return func(s *ScheduleService) {
		if rec != nil {
			s.metrics = rec
		}
	}
}

func WithLogger(logger *zap.Logger) ScheduleServiceOption {
	return func(s *ScheduleService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewScheduleService(
	workerRepo *repository.WorkerRepository,
	fieldRepo *repository.FieldRepository,
	scheduleRepo *repository.ScheduleRepository,
	optimizer *scheduler.Optimizer,
	opts ...ScheduleServiceOption,
) *ScheduleService {
	s := &ScheduleService{
		workerRepo:   workerRepo,
		fieldRepo:    fieldRepo,
		scheduleRepo: scheduleRepo,
		optimizer:    optimizer,
		defaultTier:  models.QualityMedium,
		metrics:      metrics.NewNop(),
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate builds and stores the schedule for a plantation-day.
//
// When storing fails the generated schedule is returned together with a
// *PersistenceError. Every other error returns a nil schedule and nothing is
// stored.
func (s *ScheduleService) Generate(ctx context.Context, req GenerateRequest) (*scheduler.AssignmentSchedule, error) {
	start := time.Now()
	if req.QualityTier == "" {
		req.QualityTier = s.defaultTier
	}
	if err := validateStruct(req); err != nil {
		s.metrics.ObserveGeneration(metrics.OutcomeValidation, time.Since(start))
		return nil, err
	}

	log := s.logger.With(
		zap.String("plantation_id", req.PlantationID),
		zap.String("date", req.Date),
		zap.String("quality_tier", string(req.QualityTier)),
	)
	log.Info("generating schedule")

	workers, fields, err := s.loadRoster(ctx, req.PlantationID)
	if err != nil {
		log.Error("failed to load roster", zap.Error(err))
		s.metrics.ObserveGeneration(metrics.OutcomeRosterFailure, time.Since(start))
		return nil, err
	}
	log.Debug("roster loaded", zap.Int("workers", len(workers)), zap.Int("fields", len(fields)))

	assignments, err := s.optimizer.Optimize(ctx, workers, fields, scheduler.Options{
		Date:        req.Date,
		QualityTier: req.QualityTier,
	})
	if err != nil {
		outcome := metrics.OutcomePredictorFailure
		var initErr *scheduler.PredictorInitError
		switch {
		case scheduler.IsValidation(err):
			outcome = metrics.OutcomeValidation
			log.Warn("schedule generation rejected", zap.Error(err))
		case errors.As(err, &initErr):
			outcome = metrics.OutcomePredictorInit
			log.Error("predictor initialization failed", zap.Error(err))
		default:
			log.Error("schedule generation failed", zap.Error(err))
		}
		s.metrics.ObserveGeneration(outcome, time.Since(start))
		return nil, err
	}
	s.metrics.ObservePredictorBatch(len(workers) * len(fields))

	result := scheduler.BuildSchedule(uuid.NewString(), req.Date, assignments)

	saved, err := s.scheduleRepo.Save(ctx, req.PlantationID, req.Date, repository.ScheduleTotals{
		TotalWorkers:      result.TotalWorkers,
		TotalFields:       result.TotalFields,
		AverageEfficiency: result.AverageEfficiency,
	}, result.Assignments)
	if err != nil {
		log.Error("failed to save schedule", zap.Error(err), zap.Int("assignments", len(result.Assignments)))
		s.metrics.ObserveGeneration(metrics.OutcomePersistence, time.Since(start))
		return result, &PersistenceError{Err: err}
	}
	result.ID = saved.ID

	s.metrics.ObserveGeneration(metrics.OutcomeSuccess, time.Since(start))
	s.metrics.AddAssignments(len(result.Assignments))
	log.Info("schedule generated",
		zap.String("schedule_id", result.ID),
		zap.Int("assignments", len(result.Assignments)),
		zap.Int("fields", result.TotalFields),
		zap.Float64("average_efficiency", result.AverageEfficiency),
	)
	return result, nil
}

// loadRoster fetches workers and fields concurrently.
func (s *ScheduleService) loadRoster(ctx context.Context, plantationID string) ([]models.Worker, []models.Field, error) {
	var (
		workers []models.Worker
		fields  []models.Field
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		workers, err = s.workerRepo.FindByPlantation(gctx, plantationID)
		if err != nil {
			return fmt.Errorf("load workers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		fields, err = s.fieldRepo.FindByPlantation(gctx, plantationID)
		if err != nil {
			return fmt.Errorf("load fields: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return workers, fields, nil
}

// Latest returns the newest active schedule of a plantation, or nil.
func (s *ScheduleService) Latest(ctx context.Context, plantationID string) (*models.Schedule, error) {
	if plantationID == "" {
		return nil, fmt.Errorf("%w: plantation id is required", ErrInvalidRequest)
	}
	return s.scheduleRepo.FindLatest(ctx, plantationID)
}

// ByDate returns the active schedule of a plantation-day, or nil.
func (s *ScheduleService) ByDate(ctx context.Context, plantationID, date string) (*models.Schedule, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidRequest)
	}
	return s.scheduleRepo.FindByDate(ctx, plantationID, date)
}

// Get returns a schedule by id regardless of its status.
func (s *ScheduleService) Get(ctx context.Context, id string) (*models.Schedule, error) {
	schedule, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}
	return schedule, nil
}

// Delete archives a schedule.
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	err := s.scheduleRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrScheduleNotFound) {
		return ErrScheduleNotFound
	}
	if err != nil {
		return err
	}
	s.logger.Info("schedule archived", zap.String("schedule_id", id))
	return nil
}
