package apperrors

import (
	"errors"
	"fmt"

	"github.com/zamcare/medirush/internal/pkg/models"
)

// Sentinel errors shared by the auth and dispatch services. Handlers map
// these onto HTTP status codes; everything else is treated as an unexpected
// fault.
var (
	ErrInvalidOTP           = errors.New("invalid or expired OTP code")
	ErrInvalidRefreshToken  = errors.New("invalid or expired refresh token")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrStaffRecordNotFound  = errors.New("account exists, but no associated staff record found")
	ErrNoAvailableResponder = errors.New("no active health practitioners found with known location")
	ErrUserNotFound         = errors.New("user not found")
	ErrStaffNotFound        = errors.New("staff not found")
	ErrIncidentNotFound     = errors.New("emergency incident not found")
)

// ValidationError carries per-field validation detail for 422 responses.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// ApprovalError reports a staff login blocked by a non-approved status.
type ApprovalError struct {
	Status int
}

func (e *ApprovalError) Error() string {
	return fmt.Sprintf("your staff account is currently %s", e.StatusText())
}

// StatusText returns the human-readable approval state used in responses.
func (e *ApprovalError) StatusText() string {
	if e.Status == models.StaffPending {
		return "pending approval"
	}
	return "not approved"
}
