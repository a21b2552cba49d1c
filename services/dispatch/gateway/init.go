package gateway

import (
	natspkg "github.com/zamcare/medirush/internal/pkg/nats"
)

// DispatchGW bundles the outbound collaborators of the dispatch service.
// Its only sink today is the NATS broadcast channel for emergency alerts.
type DispatchGW struct {
	producer *natspkg.Producer
}

// NewDispatchGW creates a new dispatch gateway instance
func NewDispatchGW(client *natspkg.Client) *DispatchGW {
	return &DispatchGW{
		producer: natspkg.NewProducer(client),
	}
}
