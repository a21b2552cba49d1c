package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zamcare/medirush/internal/pkg/models"
)

func TestSendSMS_Success(t *testing.T) {
	var gotQuery map[string][]string
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewSMSClient(models.SMSConfig{
		BaseURI:  server.URL,
		Endpoint: "/v1/send",
		SenderID: "MEDIRUSH",
		Token:    "sms-api-token",
	})

	err := client.SendSMS(context.Background(), "0971234567", "Your OTP verification code is 123456")

	assert.NoError(t, err)
	assert.Equal(t, "Bearer sms-api-token", gotAuth)
	assert.Equal(t, []string{"MEDIRUSH"}, gotQuery["sender_id"])
	assert.Equal(t, []string{"0971234567"}, gotQuery["numbers"])
	assert.Contains(t, gotQuery["message"][0], "123456")
}

func TestSendSMS_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"insufficient credit"}`, http.StatusPaymentRequired)
	}))
	defer server.Close()

	client := NewSMSClient(models.SMSConfig{
		BaseURI:  server.URL,
		Endpoint: "/v1/send",
	})

	err := client.SendSMS(context.Background(), "0971234567", "hello")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "402")
}

func TestSendSMS_ConnectionRefused(t *testing.T) {
	client := NewSMSClient(models.SMSConfig{
		BaseURI:  "http://127.0.0.1:1",
		Endpoint: "/v1/send",
	})

	err := client.SendSMS(context.Background(), "0971234567", "hello")

	assert.Error(t, err)
}
