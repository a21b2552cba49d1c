package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zamcare/medirush/internal/pkg/apperrors"
	"github.com/zamcare/medirush/internal/pkg/logger"
	"github.com/zamcare/medirush/internal/pkg/models"
	"github.com/zamcare/medirush/internal/utils"
	"github.com/zamcare/medirush/services/dispatch"
)

// DispatchHandler handles HTTP requests for emergency dispatch operations
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
	}
}

// ReportEmergency handles an inbound help request
func (h *DispatchHandler) ReportEmergency(c echo.Context) error {
	var req models.EmergencyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.dispatchUC.ReportEmergency(c.Request().Context(), &req)
	if err != nil {
		var vErr *apperrors.ValidationError
		if errors.As(err, &vErr) {
			return utils.ValidationErrorResponse(c, vErr.Fields)
		}
		if errors.Is(err, apperrors.ErrNoAvailableResponder) {
			return utils.NotFoundResponse(c, "No active health practitioners found with known location")
		}
		logger.Error("Failed to dispatch emergency",
			logger.String("endpoint", "ReportEmergency"),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// GetIncidentsByStaff returns the incidents attended by a staff member
func (h *DispatchHandler) GetIncidentsByStaff(c echo.Context) error {
	staffID := c.Param("id")

	incidents, err := h.dispatchUC.ListIncidentsByStaff(c.Request().Context(), staffID)
	if err != nil {
		var vErr *apperrors.ValidationError
		if errors.As(err, &vErr) {
			return utils.ValidationErrorResponse(c, vErr.Fields)
		}
		logger.Error("Failed to list incidents",
			logger.String("endpoint", "GetIncidentsByStaff"),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Incidents retrieved successfully", incidents)
}

// SubmitIncidentReport records a staff follow-up report on an incident
func (h *DispatchHandler) SubmitIncidentReport(c echo.Context) error {
	var req models.IncidentReportRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "Missing user ID in token")
	}

	report, err := h.dispatchUC.SubmitIncidentReport(c.Request().Context(), userID, &req)
	if err != nil {
		var vErr *apperrors.ValidationError
		if errors.As(err, &vErr) {
			return utils.ValidationErrorResponse(c, vErr.Fields)
		}
		if errors.Is(err, apperrors.ErrStaffRecordNotFound) {
			return utils.ForbiddenResponse(c, "Account exists, but no associated staff record found.")
		}
		if errors.Is(err, apperrors.ErrIncidentNotFound) {
			return utils.NotFoundResponse(c, "Emergency incident not found")
		}
		logger.Error("Failed to submit incident report",
			logger.String("endpoint", "SubmitIncidentReport"),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Incident report submitted", report)
}
