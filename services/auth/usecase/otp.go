package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/zamcare/medirush/internal/pkg/apperrors"
	"github.com/zamcare/medirush/internal/pkg/logger"
	"github.com/zamcare/medirush/internal/pkg/models"
	"github.com/zamcare/medirush/internal/utils"
)

// placeholderPassword is a throwaway credential set on users created through
// the OTP registration path. It is replaced once the user sets a real one.
const placeholderPassword = "qwertyuiop"

// generateOTPCode returns a uniformly random 6-digit numeric code.
func generateOTPCode() string {
	return fmt.Sprintf("%d", 100000+rand.Intn(900000))
}

// RequestOTP issues a one-time passcode for the given phone number. An
// existing user (matched on the last 9 digits) gets a guest-login record so
// their User row stays untouched; a new user is created with the code stored
// on the row itself. A token pair is synthesized either way.
func (u *AuthUC) RequestOTP(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	if !utils.ValidatePhoneNumber(req.PhoneNumber) {
		return nil, apperrors.NewValidationError(map[string]string{
			"phone_number": "The phone number format is invalid.",
		})
	}

	suffix := utils.NormalizePhoneNumber(req.PhoneNumber)

	existing, err := u.authRepo.GetUserByPhoneSuffix(ctx, suffix)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	code := generateOTPCode()
	expiresAt := time.Now().Add(time.Duration(u.cfg.OTP.ExpiryMinutes) * time.Minute)

	var user *models.User
	if existing != nil {
		// Returning user: upsert a guest-login record keyed by the stored
		// phone number. The User row is left untouched.
		user = existing
		login := &models.GuestLogin{
			PhoneNumber: existing.PhoneNumber,
			OTPCode:     code,
			ExpiresAt:   expiresAt,
		}
		if err := u.authRepo.UpsertGuestLogin(ctx, login); err != nil {
			return nil, fmt.Errorf("failed to upsert guest login: %w", err)
		}
	} else {
		hashed, err := bcrypt.GenerateFromPassword([]byte(placeholderPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
		}

		user = &models.User{
			ID:          uuid.New(),
			PhoneNumber: req.PhoneNumber,
			Password:    string(hashed),
		}
		if err := u.authRepo.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		if err := u.authRepo.SetUserOTP(ctx, user.ID, code, expiresAt); err != nil {
			return nil, fmt.Errorf("failed to store OTP: %w", err)
		}
	}

	pair, err := u.issueTokenPair(ctx, user.ID, user.PhoneNumber)
	if err != nil {
		return nil, err
	}

	// SMS dispatch is awaited but never fails the request.
	message := fmt.Sprintf("Your OTP verification code is %s your OTP is valid for %d minutes.", code, u.cfg.OTP.ExpiryMinutes)
	if err := u.authGW.SendSMS(ctx, user.PhoneNumber, message); err != nil {
		logger.Error("Failed to send OTP SMS",
			logger.String("phone_number", user.PhoneNumber),
			logger.Err(err))
	}

	return &models.RegisterResponse{
		Phone:                 user.PhoneNumber,
		Email:                 user.Email,
		AccessToken:           pair.AccessToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshToken:          pair.RefreshToken,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
		IsExistingUser:        existing != nil,
	}, nil
}

// VerifyOTP checks a presented code against the guest-login path first and
// the new-registration path second. Neither path reveals which one was
// attempted on failure.
func (u *AuthUC) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.VerifyOTPResult, error) {
	fields := map[string]string{}
	if req.PhoneNumber == "" {
		fields["phone_number"] = "The phone number field is required."
	}
	if req.OTPCode == "" {
		fields["otp_code"] = "The otp code field is required."
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	suffix := utils.NormalizePhoneNumber(req.PhoneNumber)

	// 1. Guest path: resolve the user by suffix, then look for a live
	// guest-login record under the user's stored phone number.
	user, err := u.authRepo.GetUserByPhoneSuffix(ctx, suffix)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user != nil {
		login, err := u.authRepo.GetGuestLogin(ctx, user.PhoneNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to look up guest login: %w", err)
		}
		if login != nil && login.OTPCode == req.OTPCode && !time.Now().After(login.ExpiresAt) {
			// Single use: the record is deleted before reporting success.
			if err := u.authRepo.DeleteGuestLogin(ctx, user.PhoneNumber); err != nil {
				return nil, fmt.Errorf("failed to delete guest login: %w", err)
			}
			return &models.VerifyOTPResult{
				Message:  "OTP verified successfully (guest login)",
				UserType: models.UserTypeExisting,
			}, nil
		}
	}

	// 2. New-registration path: exact match on the raw input phone number
	// against the code stored on the User row.
	newUser, err := u.authRepo.GetUserByPhone(ctx, req.PhoneNumber)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if newUser != nil && newUser.OTPCode != nil && *newUser.OTPCode == req.OTPCode &&
		newUser.OTPExpiresAt != nil && !time.Now().After(*newUser.OTPExpiresAt) {
		if err := u.authRepo.MarkUserOnboarded(ctx, newUser.ID); err != nil {
			return nil, fmt.Errorf("failed to mark user onboarded: %w", err)
		}
		return &models.VerifyOTPResult{
			Message: "OTP verified successfully",
		}, nil
	}

	return nil, apperrors.ErrInvalidOTP
}
