package gateway

import (
	"context"
	"fmt"

	"github.com/zamcare/medirush/internal/pkg/models"
	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail over SMTP
type Mailer struct {
	cfg    models.MailConfig
	dialer *gomail.Dialer
}

// NewMailer creates a new SMTP mailer
func NewMailer(cfg models.MailConfig) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendPasswordResetEmail mails a reset link to the given address
func (m *Mailer) SendPasswordResetEmail(ctx context.Context, email, resetLink string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Reset your password")
	msg.SetBody("text/plain", fmt.Sprintf(
		"We received a request to reset your password.\n\n"+
			"Use the link below to choose a new one. The link is valid for 30 minutes.\n\n%s\n\n"+
			"If you did not request this, you can ignore this email.", resetLink))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	return nil
}
