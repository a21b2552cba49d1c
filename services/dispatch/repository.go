package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/zamcare/medirush/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/zamcare/medirush/services/dispatch DispatchRepo

// DispatchRepo represents the dispatch repository interface
type DispatchRepo interface {
	// staff directory
	GetLocatedStaff(ctx context.Context) ([]*models.Staff, error)
	GetStaffByUserID(ctx context.Context, userID uuid.UUID) (*models.Staff, error)
	CreateStaff(ctx context.Context, staff *models.Staff) error
	UpdateStaffLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error
	UpdateStaffFCMTokenByEmail(ctx context.Context, email, fcmToken string) error

	// incidents
	CreateIncident(ctx context.Context, incident *models.EmergencyIncident) error
	GetIncidentByID(ctx context.Context, id uuid.UUID) (*models.EmergencyIncident, error)
	GetIncidentsByStaff(ctx context.Context, staffID uuid.UUID) ([]*models.EmergencyIncident, error)
	CreateIncidentReport(ctx context.Context, report *models.IncidentReport) error
}
