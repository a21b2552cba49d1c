package dispatch

import (
	"context"

	"github.com/zamcare/medirush/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/zamcare/medirush/services/dispatch DispatchGW

// DispatchGW defines the dispatch gateways interface
type DispatchGW interface {
	// Real-time broadcast sink, fire-and-forget
	PublishEmergencyAlert(ctx context.Context, event *models.EmergencyAlertEvent) error
}
