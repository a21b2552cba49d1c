package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zamcare/medirush/internal/pkg/apperrors"
	"github.com/zamcare/medirush/internal/pkg/logger"
	"github.com/zamcare/medirush/internal/pkg/models"
	"github.com/zamcare/medirush/internal/utils"
)

// RegisterStaff creates a new staff profile. Approval always starts out
// pending; an administrator flips it out of band.
func (uc *DispatchUC) RegisterStaff(ctx context.Context, req *models.StaffRegistrationRequest) (*models.Staff, error) {
	fields := map[string]string{}
	if req.UserID == "" {
		fields["user_id"] = "The user id field is required."
	}
	if req.HPCZNumber == "" {
		fields["hpcz_number"] = "The hpcz number field is required."
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, apperrors.NewValidationError(map[string]string{
			"user_id": "The user id must be a valid UUID.",
		})
	}

	staff := &models.Staff{
		ID:               uuid.New(),
		UserID:           userID,
		Address:          req.Address,
		HPCZNumber:       req.HPCZNumber,
		NRCNumber:        req.NRCNumber,
		IsApproved:       models.StaffPending,
		HasAcceptedTerms: req.HasAcceptedTerms,
	}
	if err := uc.dispatchRepo.CreateStaff(ctx, staff); err != nil {
		return nil, fmt.Errorf("failed to create staff profile: %w", err)
	}

	return staff, nil
}

// UpdateLocation stores a staff member's last known coordinates and mirrors
// them into the geo set for listings.
func (uc *DispatchUC) UpdateLocation(ctx context.Context, userID string, req *models.LocationUpdateRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return apperrors.NewValidationError(map[string]string{
			"user_id": "The user id must be a valid UUID.",
		})
	}
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return apperrors.NewValidationError(map[string]string{
			"latitude":  "Coordinates are out of range.",
			"longitude": "Coordinates are out of range.",
		})
	}

	if err := uc.dispatchRepo.UpdateStaffLocation(ctx, id, req.Latitude, req.Longitude); err != nil {
		return err
	}

	logger.Debug("Staff location updated",
		logger.String("user_id", userID),
		logger.String("area", utils.EncodeLocation(req.Latitude, req.Longitude, areaGeohashPrecision)))

	return nil
}

// UpdateFCMToken stores a staff member's push-notification token, keyed by
// account email.
func (uc *DispatchUC) UpdateFCMToken(ctx context.Context, req *models.FCMTokenRequest) error {
	fields := map[string]string{}
	if req.Email == "" {
		fields["email"] = "The email field is required."
	}
	if req.FCMToken == "" {
		fields["fcm_token"] = "The fcm token field is required."
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}

	return uc.dispatchRepo.UpdateStaffFCMTokenByEmail(ctx, req.Email, req.FCMToken)
}

// ListActiveStaff returns every staff member with a known location
func (uc *DispatchUC) ListActiveStaff(ctx context.Context) ([]*models.Staff, error) {
	return uc.dispatchRepo.GetLocatedStaff(ctx)
}

// ListIncidentsByStaff returns the incidents attended by a staff member,
// newest first.
func (uc *DispatchUC) ListIncidentsByStaff(ctx context.Context, staffID string) ([]*models.EmergencyIncident, error) {
	id, err := uuid.Parse(staffID)
	if err != nil {
		return nil, apperrors.NewValidationError(map[string]string{
			"id": "The staff id must be a valid UUID.",
		})
	}

	return uc.dispatchRepo.GetIncidentsByStaff(ctx, id)
}

// SubmitIncidentReport records a staff member's follow-up note on an
// incident they attended.
func (uc *DispatchUC) SubmitIncidentReport(ctx context.Context, userID string, req *models.IncidentReportRequest) (*models.IncidentReport, error) {
	fields := map[string]string{}
	if req.EmergencyID == "" {
		fields["emergency_id"] = "The emergency id field is required."
	}
	if req.Notes == "" {
		fields["notes"] = "The notes field is required."
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.NewValidationError(map[string]string{
			"user_id": "The user id must be a valid UUID.",
		})
	}
	emergencyID, err := uuid.Parse(req.EmergencyID)
	if err != nil {
		return nil, apperrors.NewValidationError(map[string]string{
			"emergency_id": "The emergency id must be a valid UUID.",
		})
	}

	staff, err := uc.dispatchRepo.GetStaffByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if _, err := uc.dispatchRepo.GetIncidentByID(ctx, emergencyID); err != nil {
		return nil, err
	}

	report := &models.IncidentReport{
		ID:          uuid.New(),
		EmergencyID: emergencyID,
		StaffID:     staff.ID,
		Notes:       req.Notes,
	}
	if err := uc.dispatchRepo.CreateIncidentReport(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create incident report: %w", err)
	}

	return report, nil
}
