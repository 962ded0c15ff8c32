package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/vitalog/backend/config"
	"github.com/pageza/vitalog/backend/internal/api"
	"github.com/pageza/vitalog/backend/internal/database"
	"github.com/pageza/vitalog/backend/internal/middleware"
	"github.com/pageza/vitalog/backend/internal/router"
	"github.com/pageza/vitalog/backend/internal/server"
	"github.com/pageza/vitalog/backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis backs the dashboard cache and export rate limiting
	var (
		redisClient   *redis.Client
		cache         service.DashboardCache
		exportLimiter *middleware.RateLimiter
	)
	if cfg.RedisEnabled() {
		redisClient, err = database.NewRedisClient(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		cache = service.NewRedisDashboardCache(redisClient)
		exportLimiter = middleware.NewExportRateLimiter(redisClient)
	} else {
		log.Println("Warning: Redis is not configured; dashboard caching and export rate limits are disabled")
	}

	// S3 stores exported logs
	var store service.ObjectStore
	if cfg.ExportEnabled() {
		s3Config, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
		store = s3Config
	} else {
		log.Println("Warning: S3 is not configured; log exports are disabled")
	}

	// Initialize services
	authService := service.NewAuthService(cfg.JWTSecret, cfg.JWTIssuer)
	profileService := service.NewProfileService(db)
	logService := service.NewDailyLogService(db, cache)
	dashboardService := service.NewDashboardService(logService, cache)

	r := router.SetupRouter(cfg, api.Dependencies{
		DB:                    db,
		Redis:                 redisClient,
		AuthService:           authService,
		ProfileService:        profileService,
		DailyLogService:       logService,
		DashboardService:      dashboardService,
		RecommendationService: service.NewRecommendationService(profileService),
		ExportService:         service.NewExportService(logService, store),
		ExportLimiter:         exportLimiter,
	})

	// Create and start server
	srv := server.New(cfg, r)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
