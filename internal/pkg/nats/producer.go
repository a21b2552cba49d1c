package nats

import (
	"encoding/json"
	"fmt"
)

// Producer handles publishing JSON messages to NATS subjects
type Producer struct {
	client *Client
}

// NewProducer creates a new NATS producer on top of an existing client
func NewProducer(client *Client) *Producer {
	return &Producer{client: client}
}

// Publish marshals the message and sends it to the specified subject.
// NATS publishes are non-blocking; delivery is not awaited.
func (p *Producer) Publish(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.client.Publish(subject, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}
