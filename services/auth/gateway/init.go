package gateway

import (
	"context"

	"github.com/zamcare/medirush/internal/pkg/models"
)

// AuthGW bundles the outbound collaborators of the auth service: the SMS
// gateway used for OTP delivery and the SMTP mailer used for reset links.
type AuthGW struct {
	sms    *SMSClient
	mailer *Mailer
}

// NewAuthGW creates a new auth gateway instance
func NewAuthGW(cfg *models.Config) *AuthGW {
	return &AuthGW{
		sms:    NewSMSClient(cfg.SMS),
		mailer: NewMailer(cfg.Mail),
	}
}

// SendSMS delivers a message through the SMS gateway
func (g *AuthGW) SendSMS(ctx context.Context, phoneNumber, message string) error {
	return g.sms.SendSMS(ctx, phoneNumber, message)
}

// SendPasswordResetEmail mails a reset link through the SMTP gateway
func (g *AuthGW) SendPasswordResetEmail(ctx context.Context, email, resetLink string) error {
	return g.mailer.SendPasswordResetEmail(ctx, email, resetLink)
}
