package main

import (
	"context"
	"go-culturematch-backend/config"
	v1 "go-culturematch-backend/internal/delivery/http/v1"
	"go-culturematch-backend/internal/matching"
	"go-culturematch-backend/internal/repository/postgres"
	"go-culturematch-backend/internal/usecase"
	"go-culturematch-backend/pkg/database"
	"go-culturematch-backend/pkg/logger"
	"go-culturematch-backend/pkg/redis"
	"go-culturematch-backend/pkg/validation"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
)

// @title           CultureMatch Backend API
// @version         1.0
// @description     Cultural compatibility scoring backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting culturematch backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, continuing without cache", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool)

	// 6. Setup Scoring Engine. Weight invariants are checked here so a
	// misconfigured deployment dies at boot instead of mid-request.
	engine, err := matching.NewEngine(matching.Config{
		Aggregator: matching.AggregatorConfig{
			DimensionWeights: map[matching.Dimension]float64{
				matching.DimensionHarmony:     cfg.DimensionWeightHarmony,
				matching.DimensionImprovement: cfg.DimensionWeightImprovement,
				matching.DimensionService:     cfg.DimensionWeightService,
				matching.DimensionDedication:  cfg.DimensionWeightDedication,
				matching.DimensionConsensus:   cfg.DimensionWeightConsensus,
			},
			DimensionShare:   cfg.DimensionShare,
			SkillsWeight:     cfg.SkillsWeight,
			ExperienceWeight: cfg.ExperienceWeight,
		},
		RecommendationThreshold: cfg.RecommendationThreshold,
	})
	if err != nil {
		logger.Log.Error("Invalid scoring configuration", "error", err)
		os.Exit(1)
	}

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo)
	matchUC := usecase.NewMatchUsecase(engine, candidateRepo, jobRepo, matchRepo, redis.Client(), usecase.MatchUsecaseConfig{
		BatchConcurrency: cfg.MatchBatchConcurrency,
		CacheTTL:         time.Duration(cfg.MatchCacheTTLSeconds) * time.Second,
	})
	reportUC := usecase.NewReportUsecase(matchRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC: candidateUC,
		JobUC:       jobUC,
		MatchUC:     matchUC,
		ReportUC:    reportUC,
		Config:      cfg,
	})

	// 9. Start Server
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
