package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zamcare/medirush/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/zamcare/medirush/services/auth AuthRepo

// AuthRepo represents the auth repository interface. User and Staff rows
// live in Postgres; GuestLogin, refresh-token and reset-token records live
// in Redis.
type AuthRepo interface {
	// users
	GetUserByPhoneSuffix(ctx context.Context, suffix string) (*models.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	SetUserOTP(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error
	MarkUserOnboarded(ctx context.Context, userID uuid.UUID) error

	// guest logins (single-use OTP records for returning users)
	UpsertGuestLogin(ctx context.Context, login *models.GuestLogin) error
	GetGuestLogin(ctx context.Context, phoneNumber string) (*models.GuestLogin, error)
	DeleteGuestLogin(ctx context.Context, phoneNumber string) error

	// refresh tokens
	StoreRefreshToken(ctx context.Context, token string, record *models.RefreshRecord) error
	ConsumeRefreshToken(ctx context.Context, token string) (*models.RefreshRecord, error)

	// password reset
	StorePasswordResetToken(ctx context.Context, token, email string) error

	// staff
	GetStaffByUserID(ctx context.Context, userID uuid.UUID) (*models.Staff, error)
}
