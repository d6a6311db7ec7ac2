// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"isidro-api/config"
	"isidro-api/db"
	"isidro-api/handler"
	"isidro-api/logger"
	"isidro-api/repository"
	"isidro-api/router"
	"isidro-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// buildRouter wires every layer together: repositories over the database,
// services over the repositories, handlers over the services.
func buildRouter(database *sql.DB, cache service.ICacheClient) http.Handler {
	tokenService := service.NewTokenService([]byte(config.AppConfig.JWT.SecretKey))

	userRepo := repository.NewUserRepository(database)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(database, userRepo, authService)

	devotionRepo := repository.NewDevotionRepository(database)
	devotionService := service.NewDevotionService(devotionRepo, cache)

	personalInfoRepo := repository.NewPersonalInfoRepository(database)
	discipleInfoRepo := repository.NewDiscipleInfoRepository(database)
	trainingRepo := repository.NewTrainingRepository(database)
	categoryRepo := repository.NewTrainingCategoryRepository(database)
	activityRepo := repository.NewMinistryActivityRepository(database)
	attendanceRepo := repository.NewAttendanceRepository(database)
	outreachRepo := repository.NewOutreachRepository(database)

	return router.NewRouter(router.Handlers{
		Auth:             handler.NewAuthHandler(authService, tokenService, config.AppConfig.JWT.SecureCookie),
		AuthMiddleware:   handler.NewAuthMiddleware(tokenService),
		User:             handler.NewUserHandler(userService),
		PersonalInfo:     handler.NewPersonalInfoHandler(personalInfoRepo, userRepo),
		DiscipleInfo:     handler.NewDiscipleInfoHandler(discipleInfoRepo, userRepo),
		Devotion:         handler.NewDevotionHandler(devotionService),
		Training:         handler.NewTrainingHandler(trainingRepo, categoryRepo),
		TrainingCategory: handler.NewTrainingCategoryHandler(categoryRepo),
		MinistryActivity: handler.NewMinistryActivityHandler(activityRepo),
		Attendance:       handler.NewAttendanceHandler(attendanceRepo),
		Outreach:         handler.NewOutreachHandler(outreachRepo),
	})
}

// TestApp exposes the wired router and database to integration tests.
type TestApp struct {
	DB     *sql.DB
	Router http.Handler
}

// NewTestApp builds the full application on top of an externally managed
// database and cache, without starting an HTTP server.
func NewTestApp(database *sql.DB, cache service.ICacheClient) *TestApp {
	return &TestApp{
		DB:     database,
		Router: buildRouter(database, cache),
	}
}

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	r := buildRouter(database, redisClient)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
