package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"lexi2/internal/caching"
	"lexi2/internal/handlers"
	"lexi2/internal/logger"
	"lexi2/internal/middleware"
	"lexi2/internal/repositories"
	"lexi2/internal/services"
	"lexi2/pkg/database"
)

const version = "1.0.0"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	development := os.Getenv("ENV") != "production"
	if err := logger.Init(development, logger.LogLevel(os.Getenv("LOG_LEVEL"))); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = random.String(32) // Generate random secret for development
		logger.Get().Warn("JWT_SECRET not set, using generated secret; tokens will not survive restarts")
	}

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}

	// MinIO is optional; without it avatar object keys are served as stored.
	var storageSvc services.StorageService
	if minioEndpoint := os.Getenv("MINIO_ENDPOINT"); minioEndpoint != "" {
		storageSvc, err = services.NewMinioService(
			minioEndpoint,
			os.Getenv("MINIO_ACCESS_KEY"),
			os.Getenv("MINIO_SECRET_KEY"),
			os.Getenv("MINIO_USE_SSL") == "true",
		)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO service: %v", err)
		}
	}

	// Create repositories
	userRepo := repositories.NewUserRepo(pool)
	leadRepo := repositories.NewLeadRepo(pool)
	contactRepo := repositories.NewContactRepo(pool)
	testimonialRepo := repositories.NewTestimonialRepo(pool)
	faqRepo := repositories.NewFAQRepo(pool)

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Create services
	authSvc := services.NewAuthService(jwtSecret)
	leadSvc := services.NewLeadService(leadRepo)
	contentSvc := services.NewContentService(testimonialRepo, faqRepo, storageSvc)
	analyticsSvc := services.NewAnalyticsService(userRepo, leadRepo, cacheSvc)

	// Seed initial content
	seedSvc := services.NewSeedService(testimonialRepo, faqRepo)
	if err := seedSvc.SeedInitialData(ctx); err != nil {
		log.Fatalf("Failed to seed initial data: %v", err)
	}

	// Create handlers
	authHandlers := handlers.NewAuthHandlers(authSvc, userRepo)
	leadHandlers := handlers.NewLeadHandlers(leadSvc)
	contactHandlers := handlers.NewContactHandlers(contactRepo)
	contentHandlers := handlers.NewContentHandlers(contentSvc)
	analyticsHandlers := handlers.NewAnalyticsHandlers(analyticsSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	requireAuth := middleware.RequireAuth(authSvc)
	optionalAuth := middleware.OptionalAuth(authSvc)

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)

	// API routes
	api := e.Group("/api")
	api.GET("", healthHandlers.Root)

	// Authentication routes
	auth := api.Group("/auth")
	auth.POST("/register", authHandlers.Register)
	auth.POST("/login", authHandlers.Login)
	auth.GET("/profile", authHandlers.Profile, requireAuth)
	auth.POST("/logout", authHandlers.Logout)

	// Lead routes. The listing is admin-intended but deliberately left
	// unauthenticated to match the existing surface.
	api.POST("/leads", leadHandlers.Create, optionalAuth)
	api.GET("/leads", leadHandlers.List)

	// Content routes
	content := api.Group("/content")
	content.GET("/testimonials", contentHandlers.Testimonials)
	content.GET("/faq", contentHandlers.FAQs)

	// Analytics routes
	analytics := api.Group("/analytics")
	analytics.GET("/stats", analyticsHandlers.Stats)
	analytics.POST("/track", analyticsHandlers.Track, optionalAuth, echoMiddleware.BodyLimit("16K"))

	// Contact routes. Same access-control gap as the lead listing.
	api.POST("/contact", contactHandlers.Create)
	api.GET("/contact", contactHandlers.List)

	// Start server
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Fatalf("Invalid port %s: %v", portStr, err)
	}

	logger.Get().Info("Lexi API starting", zap.String("version", version), zap.Int("port", port))

	// Returning instead of exiting lets the pool close and log buffers flush.
	if err := e.Start(fmt.Sprintf(":%d", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Get().Error("server stopped", zap.Error(err))
	}
}
