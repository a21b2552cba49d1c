package auth

import (
	"context"

	"github.com/zamcare/medirush/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/zamcare/medirush/services/auth AuthUC

// AuthUC represents the auth usecase interface
type AuthUC interface {
	// handle OTP
	RequestOTP(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error)
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.VerifyOTPResult, error)

	// handle token rotation
	RefreshTokenPair(ctx context.Context, refreshToken string) (*models.TokenPair, error)

	// handle staff credential login
	StaffLogin(ctx context.Context, req *models.StaffLoginRequest) (*models.StaffLoginResponse, error)
	ForgotPassword(ctx context.Context, email string) error

	// profile
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
