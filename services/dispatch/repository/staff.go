package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zamcare/medirush/internal/pkg/apperrors"
	"github.com/zamcare/medirush/internal/pkg/constants"
	"github.com/zamcare/medirush/internal/pkg/logger"
	"github.com/zamcare/medirush/internal/pkg/models"
)

const staffColumns = `s.id, s.user_id, s.address, s.hpcz_number, s.nrc_number,
	s.is_approved, s.has_accepted_terms, s.last_known_latitude,
	s.last_known_longitude, s.fcm_token, s.created_at, s.updated_at,
	u.fullname AS user_fullname, u.phone_number AS user_phone`

// GetLocatedStaff retrieves every staff member with both coordinates known,
// joined with their user record for name and phone.
func (r *DispatchRepo) GetLocatedStaff(ctx context.Context) ([]*models.Staff, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM staff s
		JOIN users u ON u.id = s.user_id
		WHERE s.last_known_latitude IS NOT NULL
			AND s.last_known_longitude IS NOT NULL
		ORDER BY s.created_at ASC
	`, staffColumns)

	var staffs []*models.Staff
	err := r.db.SelectContext(ctx, &staffs, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get located staff: %w", err)
	}

	return staffs, nil
}

// GetStaffByUserID retrieves the staff profile attached to a user
func (r *DispatchRepo) GetStaffByUserID(ctx context.Context, userID uuid.UUID) (*models.Staff, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM staff s
		JOIN users u ON u.id = s.user_id
		WHERE s.user_id = $1
	`, staffColumns)

	var staff models.Staff
	err := r.db.GetContext(ctx, &staff, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrStaffRecordNotFound
		}
		return nil, fmt.Errorf("failed to get staff record: %w", err)
	}

	return &staff, nil
}

// CreateStaff creates a new staff profile in the database
func (r *DispatchRepo) CreateStaff(ctx context.Context, staff *models.Staff) error {
	if staff.ID == uuid.Nil {
		staff.ID = uuid.New()
	}
	now := time.Now()
	staff.CreatedAt = now
	staff.UpdatedAt = now

	query := `
		INSERT INTO staff (id, user_id, address, hpcz_number, nrc_number,
			is_approved, has_accepted_terms, last_known_latitude,
			last_known_longitude, fcm_token, created_at, updated_at
		) VALUES (:id, :user_id, :address, :hpcz_number, :nrc_number,
			:is_approved, :has_accepted_terms, :last_known_latitude,
			:last_known_longitude, :fcm_token, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, staff)
	if err != nil {
		return fmt.Errorf("failed to insert staff: %w", err)
	}

	return nil
}

// UpdateStaffLocation stores a staff member's last known coordinates and
// mirrors them into the Redis geo set. The geo mirror is best effort, the
// database row is the source of truth for dispatch.
func (r *DispatchRepo) UpdateStaffLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error {
	query := `
		UPDATE staff
		SET last_known_latitude = $1, last_known_longitude = $2, updated_at = $3
		WHERE user_id = $4
	`
	result, err := r.db.ExecContext(ctx, query, latitude, longitude, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update staff location: %w", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return apperrors.ErrStaffNotFound
	}

	err = r.redisClient.GeoAdd(ctx, constants.KeyStaffGeo, longitude, latitude, userID.String())
	if err != nil {
		logger.Warn("Failed to mirror staff location to geo set",
			logger.String("user_id", userID.String()),
			logger.ErrorField(err))
	}

	return nil
}

// UpdateStaffFCMTokenByEmail stores a push token on the staff row whose user
// has the given email.
func (r *DispatchRepo) UpdateStaffFCMTokenByEmail(ctx context.Context, email, fcmToken string) error {
	query := `
		UPDATE staff
		SET fcm_token = $1, updated_at = $2
		WHERE user_id = (SELECT id FROM users WHERE email = $3 ORDER BY created_at DESC LIMIT 1)
	`
	result, err := r.db.ExecContext(ctx, query, fcmToken, time.Now(), email)
	if err != nil {
		return fmt.Errorf("failed to update staff fcm token: %w", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return apperrors.ErrStaffNotFound
	}

	return nil
}
