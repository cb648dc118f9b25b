package main

import (
	"log"

	"github.com/autotoll/tollway/internal/pkg/config"
	"github.com/autotoll/tollway/internal/pkg/database"
	"github.com/autotoll/tollway/internal/pkg/health"
	"github.com/autotoll/tollway/internal/pkg/logger"
	"github.com/autotoll/tollway/internal/pkg/middleware"
	nsqpkg "github.com/autotoll/tollway/internal/pkg/nsq"
	"github.com/autotoll/tollway/internal/pkg/retry"
	"github.com/autotoll/tollway/internal/pkg/server"
	"github.com/autotoll/tollway/services/collector/gateway"
	"github.com/autotoll/tollway/services/collector/handler"
	"github.com/autotoll/tollway/services/collector/repository"
	"github.com/autotoll/tollway/services/collector/usecase"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func main() {
	appName := "collector-service"
	configs := config.InitConfig("config/collector.env")

	appLogger, err := logger.NewAppLogger(configs.Logger, appName)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithFields(logrus.Fields{
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	}).Info("Starting application")

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to NSQ")
	}
	defer producer.Stop()

	// Initialize repository
	collectorRepo := repository.NewCollectorRepository(redisClient, postgresClient.GetDB())

	// Initialize gateway
	collectorGW := gateway.NewCollectorGW(producer, retry.NewWithDefaults(appLogger))

	// Initialize usecase
	collectorUC := usecase.NewCollectorUC(collectorRepo, collectorGW, configs, appLogger)

	// Initialize handler
	httpHandler := handler.NewHTTPHandler(collectorUC, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.LoggerMiddleware(appLogger.Logger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	httpHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Fatal("Server stopped with error")
	}
}
