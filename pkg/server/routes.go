package server

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/helmcode/rawmat/pkg/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyze", RateLimitMiddleware(limiter), handler.Analyze)
		v1.GET("/probe", RateLimitMiddleware(limiter), handler.Probe)
		v1.GET("/suppliers", handler.Suppliers)

		export := v1.Group("/export")
		{
			export.POST("/json", handler.ExportJSON)
			export.POST("/report", handler.ExportReport)
		}
	}

	return router
}
