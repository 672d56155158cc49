package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-creators-backend/config"
	_ "go-creators-backend/docs" // Important for Swagger
	v1 "go-creators-backend/internal/delivery/http/v1"
	"go-creators-backend/internal/repository/postgres"
	"go-creators-backend/internal/usecase"
	"go-creators-backend/pkg/database"
	"go-creators-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// @title           Creators Backend API
// @version         1.0
// @description     Registration, login and profile/skill management for creators.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting creators backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Idempotent schema creation; safe on every boot.
	if err := postgres.EnsureSchema(context.Background(), dbPool); err != nil {
		logger.Log.Error("Failed to ensure schema", "error", err)
		os.Exit(1)
	}

	// 4. Setup Repositories
	creatorRepo := postgres.NewCreatorRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)

	// 5. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(creatorRepo, validate)
	creatorUC := usecase.NewCreatorUsecase(creatorRepo, skillRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:    authUC,
		CreatorUC: creatorUC,
		SkillUC:   skillUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
