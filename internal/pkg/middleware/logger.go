package middleware

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/zamcare/medirush/internal/pkg/logger"
)

// LoggerMiddleware creates a middleware for request logging
func LoggerMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Start timer
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			// Process request
			err := next(c)

			latency := time.Since(start)
			clientIP := c.RealIP()
			statusCode := c.Response().Status
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			// Get user ID if available
			userIDStr := "anonymous"
			if userID := c.Get("user_id"); userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			requestID := c.Response().Header().Get("X-Request-ID")

			fields := []logger.Field{
				logger.Int("status", statusCode),
				logger.Duration("latency", latency),
				logger.String("client_ip", clientIP),
				logger.String("method", method),
				logger.String("path", path),
				logger.String("user_id", userIDStr),
				logger.String("request_id", requestID),
			}

			// Log with appropriate level based on status code
			switch {
			case statusCode >= 500:
				zapLogger.Error("Server error", fields...)
			case statusCode >= 400:
				zapLogger.Warn("Client error", fields...)
			default:
				zapLogger.Info("Request processed", fields...)
			}

			return err
		}
	}
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get request ID from header or generate a new one
			requestID := c.Request().Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Response().Header().Set("X-Request-ID", requestID)
			return next(c)
		}
	}
}
