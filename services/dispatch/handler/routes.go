package handler

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/zamcare/medirush/internal/pkg/models"
	"github.com/zamcare/medirush/services/dispatch/handler/http"
)

// Handler coordinates the HTTP handlers for the dispatch service
type Handler struct {
	dispatchHandler *http.DispatchHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(dispatchHandler *http.DispatchHandler, cfg *models.Config) *Handler {
	return &Handler{
		dispatchHandler: dispatchHandler,
		cfg:             cfg,
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

// RegisterRoutes registers all HTTP routes for the dispatch service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes: emergency reporting must never require a login
	e.POST("/emergency-help", h.dispatchHandler.ReportEmergency)
	e.GET("/active-staffs", h.dispatchHandler.GetActiveStaff)

	// Protected routes with JWT middleware
	protected := e.Group("", h.GetJWTMiddleware())
	protected.POST("/staff", h.dispatchHandler.RegisterStaff)
	protected.POST("/update-location", h.dispatchHandler.UpdateLocation)
	protected.POST("/update-fcm-token", h.dispatchHandler.UpdateFCMToken)
	protected.POST("/incident-reports", h.dispatchHandler.SubmitIncidentReport)
	protected.GET("/emergency-statuses/:id", h.dispatchHandler.GetIncidentsByStaff)
}
