package main

import (
	"fmt"

	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/config"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/database"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/metrics"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/predictor"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/repository"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/scheduler"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app is the wiring shared by every command.
type app struct {
	db        *gorm.DB
	predictor predictor.Predictor
	schedules *services.ScheduleService
	roster    *services.RosterService
	export    *services.ExportService
}

func newApp(cfg *config.Config, logger *zap.Logger, rec metrics.Recorder) (*app, error) {
	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	p := newPredictor(cfg.Predictor)
	logger.Info("predictor configured", zap.String("kind", cfg.Predictor.Kind))

	workerRepo := repository.NewWorkerRepository(db)
	fieldRepo := repository.NewFieldRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db, cfg.Scheduler.ScanLimit)

	return &app{
		db:        db,
		predictor: p,
		schedules: services.NewScheduleService(
			workerRepo, fieldRepo, scheduleRepo,
			scheduler.NewOptimizer(p),
			services.WithDefaultQualityTier(models.QualityTier(cfg.Scheduler.DefaultQualityTier)),
			services.WithMetrics(rec),
			services.WithLogger(logger.Named("schedule")),
		),
		roster: services.NewRosterService(workerRepo, fieldRepo, logger.Named("roster")),
		export: services.NewExportService(scheduleRepo),
	}, nil
}

func newPredictor(cfg config.PredictorConfig) predictor.Predictor {
	if cfg.Kind == "http" {
		return predictor.NewHTTP(cfg.Endpoint, cfg.APIKey, cfg.Timeout)
	}
	return predictor.NewLinear(cfg.ModelPath)
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
