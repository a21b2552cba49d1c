package dispatch

import (
	"context"

	"github.com/zamcare/medirush/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/zamcare/medirush/services/dispatch DispatchUC

// DispatchUC represents the dispatch usecase interface
type DispatchUC interface {
	// emergency flow
	ReportEmergency(ctx context.Context, req *models.EmergencyRequest) (*models.DispatchResult, error)

	// staff self-service
	RegisterStaff(ctx context.Context, req *models.StaffRegistrationRequest) (*models.Staff, error)
	UpdateLocation(ctx context.Context, userID string, req *models.LocationUpdateRequest) error
	UpdateFCMToken(ctx context.Context, req *models.FCMTokenRequest) error

	// listings
	ListActiveStaff(ctx context.Context) ([]*models.Staff, error)
	ListIncidentsByStaff(ctx context.Context, staffID string) ([]*models.EmergencyIncident, error)

	// follow-up reports
	SubmitIncidentReport(ctx context.Context, userID string, req *models.IncidentReportRequest) (*models.IncidentReport, error)
}
