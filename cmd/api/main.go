package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/karibustays/karibu/internal/pkg/config"
	"github.com/karibustays/karibu/internal/pkg/database"
	"github.com/karibustays/karibu/internal/pkg/health"
	"github.com/karibustays/karibu/internal/pkg/logger"
	"github.com/karibustays/karibu/internal/pkg/middleware"
	natspkg "github.com/karibustays/karibu/internal/pkg/nats"
	nrpkg "github.com/karibustays/karibu/internal/pkg/newrelic"
	bookingHTTP "github.com/karibustays/karibu/services/booking/handler/http"
	bookingRepository "github.com/karibustays/karibu/services/booking/repository"
	bookingUsecase "github.com/karibustays/karibu/services/booking/usecase"
	paymentGateway "github.com/karibustays/karibu/services/payment/gateway"
	paymentHTTP "github.com/karibustays/karibu/services/payment/handler/http"
	paymentRepository "github.com/karibustays/karibu/services/payment/repository"
	paymentUsecase "github.com/karibustays/karibu/services/payment/usecase"
)

func main() {
	appName := "karibu-booking-api"
	configPath := config.GetEnv("CONFIG_PATH", ".env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	bookingRepo := bookingRepository.NewBookingRepository(configs, postgresClient.GetDB())
	paymentRepo := paymentRepository.NewPaymentRepository(configs, postgresClient.GetDB())

	// Initialize gateways
	mpesaGW := paymentGateway.NewMpesaGateway(&configs.Mpesa, redisClient)
	paystackGW := paymentGateway.NewPaystackGateway(&configs.Paystack)
	settlementGW := paymentGateway.NewNATSGateway(natsClient)

	// Initialize usecases
	bookingUC := bookingUsecase.NewBookingUC(configs, bookingRepo)
	paymentUC := paymentUsecase.NewPaymentUC(configs, paymentRepo, bookingRepo, mpesaGW, paystackGW, settlementGW, redisClient)

	// Initialize HTTP handlers
	bookingHandler := bookingHTTP.NewBookingHandler(bookingUC)
	paymentHandler := paymentHTTP.NewPaymentHandler(configs, paymentUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	bookingHandler.RegisterRoutes(e)
	paymentHandler.RegisterRoutes(e)

	// Start server
	go func() {
		zapLogger.Info("Starting server",
			zap.String("app", appName),
			zap.Int("port", configs.Server.Port),
		)
		if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
			zapLogger.Info("Server stopped", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	zapLogger.Info("Shutting down server", zap.String("app", appName))
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Forced shutdown", zap.Error(err))
	}
}
