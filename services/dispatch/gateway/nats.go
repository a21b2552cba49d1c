package gateway

import (
	"context"
	"fmt"

	"github.com/zamcare/medirush/internal/pkg/constants"
	"github.com/zamcare/medirush/internal/pkg/logger"
	"github.com/zamcare/medirush/internal/pkg/models"
)

// PublishEmergencyAlert broadcasts an alert on the selected staff member's
// subject. The publish itself is non-blocking; the context only guards the
// caller's deadline before we hand off to NATS.
func (g *DispatchGW) PublishEmergencyAlert(ctx context.Context, event *models.EmergencyAlertEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf(constants.SubjectEmergencyAlert, event.StaffID.String())
	if err := g.producer.Publish(subject, event); err != nil {
		return fmt.Errorf("failed to publish emergency alert: %w", err)
	}

	logger.Info("Emergency alert published",
		logger.String("subject", subject),
		logger.String("emergency_id", event.Incident.ID.String()))

	return nil
}
