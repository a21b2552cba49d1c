package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/zamcare/medirush/internal/pkg/apperrors"
	"github.com/zamcare/medirush/internal/pkg/logger"
	"github.com/zamcare/medirush/internal/pkg/models"
	"github.com/zamcare/medirush/internal/utils"
	"github.com/zamcare/medirush/services/auth"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// Register handles OTP issuance requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.RequestOTP(c.Request().Context(), &req)
	if err != nil {
		var vErr *apperrors.ValidationError
		if errors.As(err, &vErr) {
			return utils.ValidationErrorResponse(c, vErr.Fields)
		}
		logger.Error("Failed to issue OTP",
			logger.String("endpoint", "Register"),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	message := "User registered successfully"
	if resp.IsExistingUser {
		message = "Welcome back! OTP sent."
	}

	return utils.SuccessResponse(c, http.StatusCreated, message, resp)
}

// VerifyOTP handles OTP verification requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.authUC.VerifyOTP(c.Request().Context(), &req)
	if err != nil {
		var vErr *apperrors.ValidationError
		if errors.As(err, &vErr) {
			return utils.ValidationErrorResponse(c, vErr.Fields)
		}
		if errors.Is(err, apperrors.ErrInvalidOTP) {
			return utils.ErrorResponseHandler(c, http.StatusUnprocessableEntity, "Invalid or expired OTP code")
		}
		logger.Error("Failed to verify OTP",
			logger.String("endpoint", "VerifyOTP"),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// RefreshToken rotates the refresh token presented in the Authorization header
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return utils.UnauthorizedResponse(c, "Missing bearer token")
	}

	pair, err := h.authUC.RefreshTokenPair(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRefreshToken) {
			return utils.UnauthorizedResponse(c, "Invalid or expired refresh token")
		}
		logger.Error("Failed to rotate refresh token",
			logger.String("endpoint", "RefreshToken"),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token refreshed", pair)
}

// StaffLogin handles staff email+password login
func (h *AuthHandler) StaffLogin(c echo.Context) error {
	var req models.StaffLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.StaffLogin(c.Request().Context(), &req)
	if err != nil {
		var vErr *apperrors.ValidationError
		if errors.As(err, &vErr) {
			return utils.ValidationErrorResponse(c, vErr.Fields)
		}
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		if errors.Is(err, apperrors.ErrStaffRecordNotFound) {
			return utils.ForbiddenResponse(c, "Account exists, but no associated staff record found.")
		}
		var aErr *apperrors.ApprovalError
		if errors.As(err, &aErr) {
			return utils.ForbiddenResponse(c, "Your staff account is currently "+aErr.StatusText()+".")
		}
		logger.Error("Failed staff login",
			logger.String("endpoint", "StaffLogin"),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// ForgotPassword sends a password reset link to a known email address
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" {
		return utils.ValidationErrorResponse(c, map[string]string{
			"email": "The email field is required.",
		})
	}

	if err := h.authUC.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "We could not find a user with that email address.")
		}
		logger.Error("Failed to send reset link",
			logger.String("endpoint", "ForgotPassword"),
			logger.Err(err))
		return utils.BadRequestResponse(c, "Unable to send reset link. Please try again later.")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password reset link sent to your email.", nil)
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "Missing user ID in token")
	}

	user, err := h.authUC.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to retrieve user")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// bearerToken extracts the token from the Authorization header
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
