package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pickme-backend/config"
	v1 "pickme-backend/internal/delivery/http/v1"
	"pickme-backend/internal/repository/postgres"
	"pickme-backend/internal/usecase"
	"pickme-backend/pkg/database"
	"pickme-backend/pkg/email"
	"pickme-backend/pkg/logger"
	"pickme-backend/pkg/redis"
	"pickme-backend/pkg/token"

	"github.com/go-playground/validator/v10"
)

// @title           PickMe Backend API
// @version         1.0
// @description     Recruiting platform backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting pickme backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory store", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	accountRepo := postgres.NewAccountRepository(dbPool)
	enterpriseRepo := postgres.NewEnterpriseRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)
	licenseRepo := postgres.NewLicenseRepository(dbPool)
	prizeRepo := postgres.NewPrizeRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	selfInterviewRepo := postgres.NewSelfInterviewRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - suggestions will be unavailable")
	}

	// 7. Setup Token Service
	tokens := token.NewService(cfg.JWTSecret, time.Duration(cfg.JWTExpireMinutes)*time.Minute)

	// 8. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(accountRepo, tokens, validate)
	accountUC := usecase.NewAccountUsecase(accountRepo, validate)
	enterpriseUC := usecase.NewEnterpriseUsecase(enterpriseRepo, accountRepo, emailService, validate)
	experienceUC := usecase.NewExperienceUsecase(experienceRepo, validate)
	licenseUC := usecase.NewLicenseUsecase(licenseRepo, validate)
	prizeUC := usecase.NewPrizeUsecase(prizeRepo, validate)
	projectUC := usecase.NewProjectUsecase(projectRepo, validate)
	selfInterviewUC := usecase.NewSelfInterviewUsecase(selfInterviewRepo, validate)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:          authUC,
		AccountUC:       accountUC,
		EnterpriseUC:    enterpriseUC,
		ExperienceUC:    experienceUC,
		LicenseUC:       licenseUC,
		PrizeUC:         prizeUC,
		ProjectUC:       projectUC,
		SelfInterviewUC: selfInterviewUC,
		Tokens:          tokens,
		Config:          cfg,
	})

	// 10. Start Server
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
