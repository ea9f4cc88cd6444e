package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/middleware"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/predictor"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/services"
	"github.com/patrickmn/go-cache"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
)

type RouterConfig struct {
	Predictor predictor.Predictor
	Schedules *services.ScheduleService
	Roster    *services.RosterService
	Export    *services.ExportService

	// Cache holds GET responses for CacheTTL; nil disables caching.
	Cache    *cache.Cache
	CacheTTL time.Duration

	// GenerateRate limits schedule generation per client IP; 0 disables it.
	GenerateRate  rate.Limit
	GenerateBurst int

	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := NewHealthHandler(cfg.Predictor)
	rosterHandler := NewRosterHandler(cfg.Roster)
	scheduleHandler := NewScheduleHandler(cfg.Schedules, cfg.Export)

	caching := middleware.Cache(cfg.Cache, cfg.CacheTTL)
	generateLimit := middleware.RateLimiter(cfg.GenerateRate, cfg.GenerateBurst)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/docs", SwaggerUI("/swagger/doc.json"))
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics))
	}

	api := router.Group("/api/v1")
	api.Use(middleware.FlushCache(cfg.Cache))
	{
		api.GET("/health", healthHandler.Health)

		plantation := api.Group("/plantations/:plantationID")
		{
			plantation.GET("/workers", caching, rosterHandler.ListWorkers)
			plantation.POST("/workers", rosterHandler.CreateWorker)
			plantation.PUT("/workers/:id", rosterHandler.UpdateWorker)
			plantation.DELETE("/workers/:id", rosterHandler.DeleteWorker)
			plantation.GET("/fields", caching, rosterHandler.ListFields)
			plantation.POST("/fields", rosterHandler.CreateField)
			plantation.PUT("/fields/:id", rosterHandler.UpdateField)
			plantation.DELETE("/fields/:id", rosterHandler.DeleteField)

			plantation.POST("/schedules", generateLimit, scheduleHandler.GenerateSchedule)
			plantation.GET("/schedules/latest", caching, scheduleHandler.GetLatestSchedule)
			plantation.GET("/schedules/:date", caching, scheduleHandler.GetScheduleByDate)
		}

		api.DELETE("/schedules/:id", scheduleHandler.DeleteSchedule)
		api.GET("/schedules/:id/export", caching, scheduleHandler.ExportSchedule)
	}

	return router
}
