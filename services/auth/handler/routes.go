package handler

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/zamcare/medirush/internal/pkg/models"
	"github.com/zamcare/medirush/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(authHandler *http.AuthHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		cfg:         cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			// Parse the token directly from the Authorization header to
			// surface claims as context values.
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString := authHeader[7:]
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(h.cfg.JWT.Secret), nil
				})
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if userID, exists := claims["user_id"]; exists {
							c.Set("user_id", userID)
						}
						if scope, exists := claims["scope"]; exists {
							c.Set("scope", scope)
						}
					}
				}
			}
		},
	})
}

// RegisterRoutes registers all HTTP routes for the auth service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	e.POST("/register", h.authHandler.Register)
	e.POST("/staff-login", h.authHandler.StaffLogin)
	e.POST("/forgot-password", h.authHandler.ForgotPassword)
	e.POST("/refresh-token", h.authHandler.RefreshToken)

	// Protected routes with JWT middleware
	protected := e.Group("", h.GetJWTMiddleware())
	protected.POST("/verify-otp", h.authHandler.VerifyOTP)
	protected.GET("/me", h.authHandler.Me)
}
