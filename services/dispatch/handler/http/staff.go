package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zamcare/medirush/internal/pkg/apperrors"
	"github.com/zamcare/medirush/internal/pkg/logger"
	"github.com/zamcare/medirush/internal/pkg/models"
	"github.com/zamcare/medirush/internal/utils"
)

// RegisterStaff creates a staff profile for an existing user
func (h *DispatchHandler) RegisterStaff(c echo.Context) error {
	var req models.StaffRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	staff, err := h.dispatchUC.RegisterStaff(c.Request().Context(), &req)
	if err != nil {
		var vErr *apperrors.ValidationError
		if errors.As(err, &vErr) {
			return utils.ValidationErrorResponse(c, vErr.Fields)
		}
		logger.Error("Failed to register staff",
			logger.String("endpoint", "RegisterStaff"),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Staff profile created, pending approval", staff)
}

// UpdateLocation stores the authenticated staff member's current coordinates
func (h *DispatchHandler) UpdateLocation(c echo.Context) error {
	var req models.LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "Missing user ID in token")
	}

	if err := h.dispatchUC.UpdateLocation(c.Request().Context(), userID, &req); err != nil {
		var vErr *apperrors.ValidationError
		if errors.As(err, &vErr) {
			return utils.ValidationErrorResponse(c, vErr.Fields)
		}
		if errors.Is(err, apperrors.ErrStaffNotFound) {
			return utils.NotFoundResponse(c, "Staff not found")
		}
		logger.Error("Failed to update location",
			logger.String("endpoint", "UpdateLocation"),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", nil)
}

// UpdateFCMToken stores a staff member's push-notification token
func (h *DispatchHandler) UpdateFCMToken(c echo.Context) error {
	var req models.FCMTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.dispatchUC.UpdateFCMToken(c.Request().Context(), &req); err != nil {
		var vErr *apperrors.ValidationError
		if errors.As(err, &vErr) {
			return utils.ValidationErrorResponse(c, vErr.Fields)
		}
		if errors.Is(err, apperrors.ErrStaffNotFound) {
			return utils.NotFoundResponse(c, "Staff not found")
		}
		logger.Error("Failed to update FCM token",
			logger.String("endpoint", "UpdateFCMToken"),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "FCM token updated successfully", nil)
}

// GetActiveStaff lists every staff member with a known location
func (h *DispatchHandler) GetActiveStaff(c echo.Context) error {
	staffs, err := h.dispatchUC.ListActiveStaff(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list active staff",
			logger.String("endpoint", "GetActiveStaff"),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active staff retrieved successfully", staffs)
}
