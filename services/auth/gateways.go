package auth

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/zamcare/medirush/services/auth AuthGW

// AuthGW defines the auth gateways interface
type AuthGW interface {
	// SMS Gateway
	SendSMS(ctx context.Context, phoneNumber, message string) error

	// Mail Gateway
	SendPasswordResetEmail(ctx context.Context, email, resetLink string) error
}
