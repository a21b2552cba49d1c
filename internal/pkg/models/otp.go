package models

import (
	"time"
)

// GuestLogin is a short-lived OTP record for a returning user's phone number.
// It lives in Redis keyed by the user's stored phone number so the User row
// itself stays untouched during a guest login.
type GuestLogin struct {
	PhoneNumber string    `json:"phone_number"`
	OTPCode     string    `json:"otp_code"`
	ExpiresAt   time.Time `json:"otp_expires_at"`
}

// RegisterRequest represents an OTP issuance request
type RegisterRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// VerifyOTPRequest represents an OTP verification request
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number"`
	OTPCode     string `json:"otp_code"`
}

// User types reported on successful verification
const (
	UserTypeExisting = "existing"
)

// RegisterResponse is returned after an OTP has been issued. Tokens are
// synthesized immediately so the frontend can proceed before verification.
type RegisterResponse struct {
	Phone                 string    `json:"phone"`
	Email                 *string   `json:"email"`
	AccessToken           string    `json:"access_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshToken          string    `json:"refresh_token"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	IsExistingUser        bool      `json:"is_existing_user"`
}

// VerifyOTPResult reports the outcome of a verification attempt
type VerifyOTPResult struct {
	Message  string `json:"message"`
	UserType string `json:"user_type,omitempty"`
}
