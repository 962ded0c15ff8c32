package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/vitalog/backend/internal/database"
	"github.com/pageza/vitalog/backend/internal/middleware"
	"github.com/pageza/vitalog/backend/internal/service"
)

const apiVersion = "v1.0.0"

// Dependencies are the services the API routes are built from. Redis and
// ExportLimiter are nil when Redis is not configured.
type Dependencies struct {
	DB                    *gorm.DB
	Redis                 *redis.Client
	AuthService           service.IAuthService
	ProfileService        service.IProfileService
	DailyLogService       service.IDailyLogService
	DashboardService      service.IDashboardService
	RecommendationService service.IRecommendationService
	ExportService         service.IExportService
	ExportLimiter         *middleware.RateLimiter
}

// HealthHandler reports whether the API and its backing stores are reachable
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthHandler creates a new HealthHandler. redisClient may be nil.
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := http.StatusOK
	checks := gin.H{"database": "ok", "redis": "disabled"}

	if h.db == nil {
		status = http.StatusServiceUnavailable
		checks["database"] = "unavailable"
	} else if err := database.Ping(c.Request.Context(), h.db); err != nil {
		status = http.StatusServiceUnavailable
		checks["database"] = err.Error()
	}

	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			status = http.StatusServiceUnavailable
			checks["redis"] = err.Error()
		} else {
			checks["redis"] = "ok"
		}
	}

	health := "healthy"
	if status != http.StatusOK {
		health = "unhealthy"
	}
	c.JSON(status, gin.H{
		"status":  health,
		"message": "Vitalog API is running",
		"version": apiVersion,
		"checks":  checks,
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	// Health check endpoint (no auth required)
	health := NewHealthHandler(deps.DB, deps.Redis)
	router.GET("/health", health.HealthCheck)
	router.GET("/api/health", health.HealthCheck)

	v1 := router.Group("/api/v1")

	// Plans are static content
	NewPlansHandler().RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.AuthService))

	NewProfileHandler(deps.ProfileService).RegisterRoutes(protected)
	var exportLimit gin.HandlerFunc
	if deps.ExportLimiter != nil {
		exportLimit = deps.ExportLimiter.RateLimitMiddleware()
	}
	NewDailyLogHandler(deps.DailyLogService, deps.DashboardService, deps.ExportService, exportLimit).RegisterRoutes(protected)
	NewDashboardHandler(deps.DashboardService).RegisterRoutes(protected)
	NewRecommendationHandler(deps.RecommendationService).RegisterRoutes(protected)

	// Rate limit status endpoint
	if deps.ExportLimiter != nil {
		RegisterRateLimitRoutes(protected, deps.ExportLimiter)
	}
}

// RegisterRateLimitRoutes registers endpoints for checking rate limit status
func RegisterRateLimitRoutes(router *gin.RouterGroup, exportLimiter *middleware.RateLimiter) {
	rateLimits := router.Group("/rate-limits")
	{
		rateLimits.GET("/export", func(c *gin.Context) {
			userID, ok := currentUser(c)
			if !ok {
				return
			}

			remaining, resetTime, err := exportLimiter.GetRemainingRequests(c.Request.Context(), userID.String())
			if err != nil {
				log.Printf("[API] Failed to check rate limit: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check rate limit"})
				return
			}

			limits := exportLimiter.Config()
			c.JSON(http.StatusOK, gin.H{
				"limit":      limits.Limit,
				"remaining":  remaining,
				"reset_time": resetTime.Unix(),
				"window":     limits.Window.String(),
			})
		})
	}
}
