package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/zamcare/medirush/internal/pkg/apperrors"
	"github.com/zamcare/medirush/internal/pkg/logger"
	"github.com/zamcare/medirush/internal/pkg/models"
)

// StaffLogin authenticates a staff member by email and password. Only a
// staff profile with approved status may log in; pending and rejected
// accounts get a status-specific refusal.
func (u *AuthUC) StaffLogin(ctx context.Context, req *models.StaffLoginRequest) (*models.StaffLoginResponse, error) {
	fields := map[string]string{}
	if req.Email == "" {
		fields["email"] = "The email field is required."
	}
	if len(req.Password) < 6 {
		fields["password"] = "The password must be at least 6 characters."
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	user, err := u.authRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	staff, err := u.authRepo.GetStaffByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStaffRecordNotFound) {
			return nil, apperrors.ErrStaffRecordNotFound
		}
		return nil, fmt.Errorf("failed to look up staff record: %w", err)
	}

	if staff.IsApproved != models.StaffApproved {
		return nil, &apperrors.ApprovalError{Status: staff.IsApproved}
	}

	pair, err := u.issueTokenPair(ctx, user.ID, user.PhoneNumber)
	if err != nil {
		return nil, err
	}

	logger.Info("Staff login successful",
		logger.String("user_id", user.ID.String()),
		logger.String("staff_id", staff.ID.String()))

	return &models.StaffLoginResponse{
		User:  user,
		Staff: staff,
		Pair:  pair,
	}, nil
}

// ForgotPassword looks up the account and hands a reset link to the mail
// gateway. The reset token is stored so the link can be redeemed later.
func (u *AuthUC) ForgotPassword(ctx context.Context, email string) error {
	user, err := u.authRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user.Email == nil {
		return apperrors.ErrUserNotFound
	}

	token := uuid.New().String()
	if err := u.authRepo.StorePasswordResetToken(ctx, token, *user.Email); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", u.cfg.App.BaseURL, token)
	if err := u.authGW.SendPasswordResetEmail(ctx, *user.Email, resetLink); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	return nil
}

// GetUserByID retrieves the authenticated user's profile
func (u *AuthUC) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return u.authRepo.GetUserByID(ctx, id)
}
