package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/zamcare/medirush/internal/pkg/logger"
	"github.com/zamcare/medirush/internal/pkg/models"
)

// SMSClient talks to the SwiftSMS-style HTTP gateway
type SMSClient struct {
	cfg        models.SMSConfig
	httpClient *http.Client
}

// NewSMSClient creates a new SMS gateway client
func NewSMSClient(cfg models.SMSConfig) *SMSClient {
	return &SMSClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SendSMS delivers a message through the gateway. A non-2xx reply is an
// error; the caller decides whether that is fatal.
func (s *SMSClient) SendSMS(ctx context.Context, phoneNumber, message string) error {
	endpoint := s.cfg.BaseURI + s.cfg.Endpoint

	params := url.Values{}
	params.Set("sender_id", s.cfg.SenderID)
	params.Set("numbers", phoneNumber)
	params.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call SMS gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		logger.Error("SMS gateway send failed",
			logger.Int("status", resp.StatusCode),
			logger.String("response", string(body)))
		return fmt.Errorf("SMS gateway returned status %d", resp.StatusCode)
	}

	return nil
}
