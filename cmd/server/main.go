package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fitforge/fitness-app/internal/ai"
	"fitforge/fitness-app/internal/api"
	"fitforge/fitness-app/internal/config"
	"fitforge/fitness-app/internal/repository/gormdb"
	"fitforge/fitness-app/internal/service"
	"fitforge/fitness-app/internal/storage"
)

// @title FitForge API
// @version 1.0
// @description API for user accounts, an exercise library, AI-assisted plan generation, workout logging and body-progress tracking.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.Info("Starting FitForge server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.WithError(err).Fatal("Could not load config")
	}
	log.Info("Configuration loaded.")

	if cfg.JWT.Secret == config.DefaultJWTSecret {
		log.Warn("Running with the default JWT secret; set JWT_SECRET in production")
	}

	// --- Database ---
	db, err := gormdb.Connect(cfg.Database.DSN)
	if err != nil {
		log.WithError(err).Fatal("Could not connect to database")
	}
	if err := gormdb.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("Could not run database migrations")
	}
	log.Info("Database connection established, schema migrated.")

	// --- File storage ---
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize S3 storage")
	}

	// --- Repositories ---
	userRepo := gormdb.NewUserRepository(db)
	exerciseRepo := gormdb.NewExerciseRepository(db)
	planRepo := gormdb.NewPlanRepository(db)
	workoutRepo := gormdb.NewWorkoutRepository(db)
	progressRepo := gormdb.NewProgressRepository(db)
	uploadRepo := gormdb.NewUploadRepository(db)
	aiJobRepo := gormdb.NewAiJobRepository(db)

	// --- AI client (nil when no API key; plan service falls back to the
	// template generator) ---
	aiClient := ai.NewClient(cfg.OpenAI)
	if aiClient == nil {
		log.Warn("OPENAI_API_KEY not set; plan generation uses the built-in template only")
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	userService := service.NewUserService(userRepo, workoutRepo, uploadRepo, fileStorage)
	exerciseService := service.NewExerciseService(exerciseRepo)
	planService := service.NewPlanService(planRepo, aiClient)
	workoutService := service.NewWorkoutService(workoutRepo)
	progressService := service.NewProgressService(progressRepo)
	uploadService := service.NewUploadService(uploadRepo, fileStorage)
	adminService := service.NewAdminService(userRepo, exerciseRepo, planRepo, workoutRepo, progressRepo, uploadRepo, aiJobRepo, fileStorage)

	// --- Gin engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()

	log.Info("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret,
		authService, userService, exerciseService, planService,
		workoutService, progressService, uploadService, adminService)

	// --- HTTP server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.WithField("address", cfg.Server.Address).Info("Server starting")

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("ListenAndServe error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}

	log.Info("Server exiting.")
}
