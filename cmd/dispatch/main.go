package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/zamcare/medirush/internal/pkg/config"
	"github.com/zamcare/medirush/internal/pkg/database"
	"github.com/zamcare/medirush/internal/pkg/logger"
	"github.com/zamcare/medirush/internal/pkg/middleware"
	natspkg "github.com/zamcare/medirush/internal/pkg/nats"
	"github.com/zamcare/medirush/internal/pkg/server"
	"github.com/zamcare/medirush/services/dispatch/gateway"
	"github.com/zamcare/medirush/services/dispatch/handler"
	httpHandler "github.com/zamcare/medirush/services/dispatch/handler/http"
	"github.com/zamcare/medirush/services/dispatch/repository"
	"github.com/zamcare/medirush/services/dispatch/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/dispatch.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repository
	dispatchRepo := repository.NewDispatchRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	dispatchGW := gateway.NewDispatchGW(natsClient)

	// Initialize usecase
	dispatchUC := usecase.NewDispatchUC(dispatchRepo, dispatchGW, configs)

	// Initialize handlers
	dispatchHandler := httpHandler.NewDispatchHandler(dispatchUC)
	Handler := handler.NewHandler(dispatchHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
