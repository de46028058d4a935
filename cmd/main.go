package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/learnhub-grader.net/internal/adapter/crypto"
	"gitlab.com/learnhub-grader.net/internal/adapter/judge0"
	"gitlab.com/learnhub-grader.net/internal/adapter/postgres/assessmentrepository"
	"gitlab.com/learnhub-grader.net/internal/adapter/postgres/attemptrepository"
	"gitlab.com/learnhub-grader.net/internal/adapter/redis/resultstore"
	"gitlab.com/learnhub-grader.net/internal/config"
	"gitlab.com/learnhub-grader.net/internal/core/ports/primary"
	"gitlab.com/learnhub-grader.net/internal/core/ports/secondary"
	"gitlab.com/learnhub-grader.net/internal/core/services/history"
	"gitlab.com/learnhub-grader.net/internal/core/services/submission"
	logger2 "gitlab.com/learnhub-grader.net/internal/global/logger"
	"gitlab.com/learnhub-grader.net/internal/handlers"
	http2 "gitlab.com/learnhub-grader.net/internal/http"
)

const shutdownTimeout = 30 * time.Second

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sysCfg := config.NewSystemConfig()
	logger2.Init(sysCfg.LogLevel)
	defer logger2.Sync()
	logger := logger2.Logger
	logger.Info("Starting grading service", "mode", sysCfg.Judge0Config.Mode, "perCase", sysCfg.GradingConfig.PerCaseExecution)

	// SECONDARY PORTS
	var (
		assessments secondary.AssessmentRepository
		attempts    secondary.AttemptRepository
		results     secondary.ResultRepository
	)

	if sysCfg.PostgresConfig.Enabled {
		db, err := setupDatabase(sysCfg.PostgresConfig)
		if err != nil {
			logger.Error("Failed to set up database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		assessments = assessmentrepository.NewAssessmentRepository(db, sysCfg.PostgresConfig.Schema, logger.Named("assessments"))
		attempts = attemptrepository.NewAttemptRepository(db, sysCfg.PostgresConfig.Schema, logger.Named("attempts"))
	}

	if sysCfg.RedisConfig.Enabled {
		redisClient, err := setupRedis(sysCfg.RedisConfig)
		if err != nil {
			logger.Error("Failed to set up redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		results = resultstore.NewResultRepository(redisClient, sysCfg.RedisConfig.ResultTTL, logger.Named("results"))
	}

	executor := judge0.NewClient(sysCfg.Judge0Config, logger.Named("judge0"))

	//services
	submissionSvc := submission.NewSubmissionService(executor, assessments, sysCfg.GradingConfig, logger.Named("submission"))
	historySvc := history.NewHistoryService(results, attempts, logger.Named("history"))
	serviceProvider := http2.NewServiceProvider(submissionSvc, historySvc)

	//server
	var tokens primary.TokenService
	if sysCfg.JwtConfig.Secret != "" {
		tokens = crypto.NewJWTService(sysCfg.JwtConfig)
	} else {
		logger.Warn("JWT_SECRET not set, accepting anonymous submissions")
	}
	middleware := handlers.New(tokens, logger.Named("auth"))
	httpServer := http2.NewServer(sysCfg.HTTPConfig, *serviceProvider, middleware, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}

	ctxBg, cancel := context.WithCancel(context.Background())
	defer cancel()
	serverErr := httpServer.Start(ctxBg)

	select {
	case <-quit:
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server stopped unexpectedly", "error", err)
		}
	}
	logger.Info("Shutting down server...")

	ctx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := httpServer.Stop(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	cancel()

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// setupRedis sets up the Redis connection
func setupRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Url,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
