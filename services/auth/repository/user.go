package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zamcare/medirush/internal/pkg/apperrors"
	"github.com/zamcare/medirush/internal/pkg/models"
)

const userColumns = `id, phone_number, email, fullname, password, is_onboarded, otp_code, otp_expires_at, created_at, updated_at`

// GetUserByPhoneSuffix retrieves the most recently created user whose stored
// phone number ends with the given digits.
func (r *AuthRepo) GetUserByPhoneSuffix(ctx context.Context, suffix string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE phone_number LIKE '%%' || $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userColumns)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, suffix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by phone suffix: %w", err)
	}

	return &user, nil
}

// GetUserByPhone retrieves the most recently created user with an exact
// phone number match.
func (r *AuthRepo) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.getUserByField(ctx, "phone_number", phone)
}

// GetUserByEmail retrieves the most recently created user with the given email
func (r *AuthRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByField(ctx, "email", email)
}

// GetUserByID retrieves a user by id
func (r *AuthRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

// getUserByField is a helper function to get a user by a specific field
func (r *AuthRepo) getUserByField(ctx context.Context, field, value string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE %s = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userColumns, field)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// CreateUser creates a new user in the database
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, phone_number, email, fullname, password,
			is_onboarded, otp_code, otp_expires_at, created_at, updated_at
		) VALUES (:id, :phone_number, :email, :fullname, :password,
			:is_onboarded, :otp_code, :otp_expires_at, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// SetUserOTP stores a pending OTP code and its expiry on the user row
func (r *AuthRepo) SetUserOTP(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error {
	query := `
		UPDATE users
		SET otp_code = $1, otp_expires_at = $2, updated_at = $3
		WHERE id = $4
	`
	_, err := r.db.ExecContext(ctx, query, code, expiresAt, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to set user OTP: %w", err)
	}

	return nil
}

// MarkUserOnboarded flips the onboarded flag and clears the OTP fields in a
// single statement, keeping code and expiry mutually present or absent.
func (r *AuthRepo) MarkUserOnboarded(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE users
		SET is_onboarded = TRUE, otp_code = NULL, otp_expires_at = NULL, updated_at = $1
		WHERE id = $2
	`
	_, err := r.db.ExecContext(ctx, query, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to mark user onboarded: %w", err)
	}

	return nil
}

// GetStaffByUserID retrieves the staff profile attached to a user
func (r *AuthRepo) GetStaffByUserID(ctx context.Context, userID uuid.UUID) (*models.Staff, error) {
	query := `
		SELECT id, user_id, address, hpcz_number, nrc_number, is_approved,
			has_accepted_terms, last_known_latitude, last_known_longitude,
			fcm_token, created_at, updated_at
		FROM staff
		WHERE user_id = $1
	`

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
