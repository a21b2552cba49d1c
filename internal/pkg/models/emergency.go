package models

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyIncident records a help request. Created exactly once per report
// and immutable thereafter within the dispatch flow.
type EmergencyIncident struct {
	ID                   uuid.UUID `json:"id" db:"id"`
	Phone                string    `json:"phone" db:"phone"`
	Latitude             float64   `json:"latitude" db:"latitude"`
	Longitude            float64   `json:"longitude" db:"longitude"`
	AttendedBy           uuid.UUID `json:"attended_by" db:"attended_by"`
	ClosestStaffDistance float64   `json:"closest_staff_distance" db:"closest_staff_distance"`
	Active               bool      `json:"active" db:"active"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
}

// IncidentReport is a staff member's follow-up note on an incident
type IncidentReport struct {
	ID          uuid.UUID `json:"id" db:"id"`
	EmergencyID uuid.UUID `json:"emergency_id" db:"emergency_id"`
	StaffID     uuid.UUID `json:"staff_id" db:"staff_id"`
	Notes       string    `json:"notes" db:"notes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// EmergencyRequest represents an inbound help report
type EmergencyRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Phone     string   `json:"phone"`
	Timestamp string   `json:"timestamp"`
}

// IncidentReportRequest represents a staff follow-up report submission
type IncidentReportRequest struct {
	EmergencyID string `json:"emergency_id"`
	Notes       string `json:"notes"`
}

// ClosestStaff describes the selected responder in a dispatch response
type ClosestStaff struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	DistanceKm float64 `json:"distance_km"`
}

// DispatchResult is returned once the nearest responder has been notified
type DispatchResult struct {
	Message      string       `json:"message"`
	ClosestStaff ClosestStaff `json:"closest_staff"`
	EmergencyID  uuid.UUID    `json:"emergency_id"`
}

// EmergencyAlertEvent is broadcast to the selected staff member's channel
type EmergencyAlertEvent struct {
	StaffID    uuid.UUID          `json:"staff_id"`
	Incident   *EmergencyIncident `json:"incident"`
	DistanceKm float64            `json:"distance_km"`
	Area       string             `json:"area"` // geohash of the incident location
	ReportedAt time.Time          `json:"reported_at"`
}
