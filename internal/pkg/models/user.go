package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an identity record. OTPCode and OTPExpiresAt are only
// populated during a new user's registration flow and are cleared once the
// code is verified.
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	PhoneNumber  string     `json:"phone_number" db:"phone_number"`
	Email        *string    `json:"email,omitempty" db:"email"`
	FullName     string     `json:"fullname" db:"fullname"`
	Password     string     `json:"-" db:"password"`
	IsOnboarded  bool       `json:"is_onboarded" db:"is_onboarded"`
	OTPCode      *string    `json:"-" db:"otp_code"`
	OTPExpiresAt *time.Time `json:"-" db:"otp_expires_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// Staff approval statuses
const (
	StaffApproved = 1
	StaffPending  = 2
	StaffRejected = 3
)

// Staff represents a medical practitioner's responder profile, one-to-one
// with a User. A staff member with unknown last location is never a dispatch
// candidate.
type Staff struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	UserID             uuid.UUID `json:"user_id" db:"user_id"`
	Address            string    `json:"address" db:"address"`
	HPCZNumber         string    `json:"hpcz_number" db:"hpcz_number"`
	NRCNumber          string    `json:"nrc_number" db:"nrc_number"`
	IsApproved         int       `json:"is_approved" db:"is_approved"`
	HasAcceptedTerms   bool      `json:"has_accepted_terms" db:"has_accepted_terms"`
	LastKnownLatitude  *float64  `json:"last_known_latitude" db:"last_known_latitude"`
	LastKnownLongitude *float64  `json:"last_known_longitude" db:"last_known_longitude"`
	FCMToken           *string   `json:"fcm_token,omitempty" db:"fcm_token"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`

	// Joined from users for dispatch responses and listings.
	UserName  string `json:"name,omitempty" db:"user_fullname"`
	UserPhone string `json:"phone,omitempty" db:"user_phone"`
}

// HasLocation reports whether both coordinates are known.
func (s *Staff) HasLocation() bool {
	return s.LastKnownLatitude != nil && s.LastKnownLongitude != nil
}

// StaffRegistrationRequest represents a request to create a staff profile
type StaffRegistrationRequest struct {
	UserID           string `json:"user_id"`
	Address          string `json:"address"`
	HPCZNumber       string `json:"hpcz_number"`
	NRCNumber        string `json:"nrc_number"`
	HasAcceptedTerms bool   `json:"has_accepted_terms_and_conditions"`
}

// LocationUpdateRequest represents a staff self-service location update
type LocationUpdateRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FCMTokenRequest represents a staff push-token update keyed by email
type FCMTokenRequest struct {
	Email    string `json:"email"`
	FCMToken string `json:"fcm_token"`
}

// StaffLoginRequest represents a staff email+password login attempt
type StaffLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest represents a password reset request
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}
