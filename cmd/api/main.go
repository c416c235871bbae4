package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/schedule-assistant/soc-api/api/swagger"
	"github.com/schedule-assistant/soc-api/internal/handler"
	"github.com/schedule-assistant/soc-api/internal/middleware"
	"github.com/schedule-assistant/soc-api/internal/repository"
	"github.com/schedule-assistant/soc-api/internal/service"
	"github.com/schedule-assistant/soc-api/internal/storage"
	"github.com/schedule-assistant/soc-api/pkg/cache"
	"github.com/schedule-assistant/soc-api/pkg/config"
	"github.com/schedule-assistant/soc-api/pkg/logger"
	corsmiddleware "github.com/schedule-assistant/soc-api/pkg/middleware/cors"
	reqidmiddleware "github.com/schedule-assistant/soc-api/pkg/middleware/requestid"
)

// @title Schedule of Classes API
// @version 0.1.0
// @description Simple API to get schedule of classes from Rutgers University
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	redisClient := cache.NewRedis(cfg.Redis, logr)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Schedule.CacheTTL, logr)

	store, err := storage.NewS3Store(context.Background(), cfg.Store, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to construct schedule store", "error", err)
	}

	validate := validator.New()
	scheduleSvc := service.NewScheduleService(store, cacheSvc, metricsSvc, cfg.Schedule, validate, logr)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET(cfg.App.DocsPath+"/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, cfg.App.DocsPath+"/index.html")
		})
	}

	api := r.Group(cfg.APIPrefix)
	api.GET("/schedules", scheduleHandler.Retrieve)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "app", cfg.App.Title)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
