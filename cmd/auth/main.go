package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/zamcare/medirush/internal/pkg/config"
	"github.com/zamcare/medirush/internal/pkg/database"
	"github.com/zamcare/medirush/internal/pkg/logger"
	"github.com/zamcare/medirush/internal/pkg/middleware"
	"github.com/zamcare/medirush/internal/pkg/server"
	"github.com/zamcare/medirush/services/auth/gateway"
	"github.com/zamcare/medirush/services/auth/handler"
	httpHandler "github.com/zamcare/medirush/services/auth/handler/http"
	"github.com/zamcare/medirush/services/auth/repository"
	"github.com/zamcare/medirush/services/auth/usecase"
)

func main() {
	appName := "auth-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/auth.env"
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

	// Initialize repository
	authRepo := repository.NewAuthRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	authGW := gateway.NewAuthGW(configs)

	// Initialize usecase
	authUC := usecase.NewAuthUC(authRepo, authGW, configs)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUC)
	Handler := handler.NewHandler(authHandler, configs)

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
