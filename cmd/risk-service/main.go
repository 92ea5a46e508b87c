package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/veyra-labs/veyra-risk-service/internal/app/background"
	"github.com/veyra-labs/veyra-risk-service/internal/config"
	"github.com/veyra-labs/veyra-risk-service/internal/delivery/http/handlers"
	publisher "github.com/veyra-labs/veyra-risk-service/internal/infrastructure/kafka"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/metrics"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/migrate"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres/repository"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/provider"
	"github.com/veyra-labs/veyra-risk-service/internal/risk"
	"github.com/veyra-labs/veyra-risk-service/internal/risk/strategies"
	"github.com/veyra-labs/veyra-risk-service/internal/scheduler"
	"github.com/veyra-labs/veyra-risk-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	logger := setupLogger(cfg)
	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.RiskDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.RiskDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v\n", err)
		}
	}

	riskMetrics := metrics.NewRiskMetrics()

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	eventPublisher := publisher.NewDefaultKafkaPublisher(brokers)

	// Init repos
	orderRepo := repository.NewDefaultOrderRepository(db)
	postAuthRepo := repository.NewDefaultPostAuthRepository(db)
	configRepo := repository.NewDefaultMonitoringConfigRepository(db)
	settingsRepo := repository.NewDefaultMerchantSettingsRepository(db)
	cacheRepo := repository.NewDefaultValidationCacheRepository(db)

	// Init fusion engine
	validationProvider := provider.NewHTTPValidationProvider(
		cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Provider.Timeout)
	engine := risk.NewEngine(
		cacheRepo,
		validationProvider,
		risk.FusionConfig{
			AmbiguousLow:       cfg.Risk.AmbiguousLow,
			AmbiguousHigh:      cfg.Risk.AmbiguousHigh,
			HighValueThreshold: cfg.Risk.HighValueThreshold,
		},
		cfg.Provider.Timeout,
		logger,
		riskMetrics,
	)
	engine.RegisterStrategy(strategies.NewVelocityStrategy(orderRepo))
	engine.RegisterStrategy(strategies.NewPatternStrategy())
	engine.RegisterStrategy(strategies.NewBehaviorStrategy())

	// Init usecases
	intakeUC := usecase.NewDefaultIntakeUsecase(orderRepo, riskMetrics)
	processorUC := usecase.NewDefaultProcessorUsecase(
		orderRepo, postAuthRepo, settingsRepo, engine, eventPublisher, logger, riskMetrics)
	monitoringUC := usecase.NewDefaultMonitoringUsecase(
		postAuthRepo, configRepo, logger, riskMetrics)

	monitoringScheduler := scheduler.NewScheduler(
		configRepo, monitoringUC, cfg.Scheduler.TickInterval, logger, riskMetrics)

	tasks := background.NewBackgroundTasks(
		processorUC, monitoringScheduler, cfg.Processor.BatchSize, cfg.Processor.DrainInterval)
	tasks.StartAll(context.Background())

	// HTTP API
	router := gin.Default()
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	handlers.NewOrderHandler(intakeUC).RegisterRoutes(api)
	handlers.NewMonitoringHandler(monitoringUC, configRepo, settingsRepo).RegisterRoutes(api)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg *config.RiskConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
