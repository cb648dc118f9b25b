package main

import (
	"context"
	"log"

	"github.com/autotoll/tollway/internal/pkg/config"
	"github.com/autotoll/tollway/internal/pkg/health"
	"github.com/autotoll/tollway/internal/pkg/logger"
	"github.com/autotoll/tollway/internal/pkg/server"
	"github.com/autotoll/tollway/services/reporter/gateway"
	"github.com/autotoll/tollway/services/reporter/handler"
	"github.com/autotoll/tollway/services/reporter/provider"
	"github.com/autotoll/tollway/services/reporter/status"
	"github.com/autotoll/tollway/services/reporter/usecase"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Default simulated route center (downtown San Francisco)
const (
	simulatedCenterLat = 37.7749
	simulatedCenterLon = -122.4194
)

func main() {
	appName := "reporter-agent"
	configs := config.InitConfig("config/reporter.env")

	appLogger, err := logger.NewAppLogger(configs.Logger, appName)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithFields(logrus.Fields{
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
		"provider":    configs.Reporter.Provider,
	}).Info("Starting application")

	// Select the location provider
	var locationProvider provider.Provider
	switch configs.Reporter.Provider {
	case "simulated":
		locationProvider = provider.NewSimulatedProvider(simulatedCenterLat, simulatedCenterLon)
	default:
		locationProvider = provider.NewSerialProvider(provider.SerialConfig{
			Port:     configs.Reporter.SerialPort,
			BaudRate: configs.Reporter.BaudRate,
		})
	}
	defer locationProvider.Close()

	// Initialize the collector gateway
	collectorGW := gateway.NewCollectorGateway(configs.Reporter.CollectorURL, configs.Reporter.SessionToken)

	// Initialize the session
	cell := status.NewCell()
	session := usecase.NewSession(locationProvider, collectorGW, cell, configs.Reporter, appLogger)

	// Run the reporting loop until shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := session.Run(ctx); err != nil && err != context.Canceled {
			appLogger.WithError(err).Error("Reporting session ended with error")
		}
	}()

	// Expose the session status over HTTP
	e := echo.New()
	e.HideBanner = true

	health.RegisterHealthEndpoints(e, appName)
	handler.NewStatusHandler(cell).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, appLogger, configs.Reporter.StatusPort)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Fatal("Server stopped with error")
	}
}
