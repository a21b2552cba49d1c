package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zamcare/medirush/internal/pkg/apperrors"
	"github.com/zamcare/medirush/internal/pkg/models"
)

const incidentColumns = `id, phone, latitude, longitude, attended_by, closest_staff_distance, active, created_at`

// CreateIncident persists a new emergency incident
func (r *DispatchRepo) CreateIncident(ctx context.Context, incident *models.EmergencyIncident) error {
	if incident.ID == uuid.Nil {
		incident.ID = uuid.New()
	}
	incident.CreatedAt = time.Now()

	query := `
		INSERT INTO emergency_incidents (id, phone, latitude, longitude,
			attended_by, closest_staff_distance, active, created_at
		) VALUES (:id, :phone, :latitude, :longitude,
			:attended_by, :closest_staff_distance, :active, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, incident)
	if err != nil {
		return fmt.Errorf("failed to insert incident: %w", err)
	}

	return nil
}

// GetIncidentByID retrieves an incident by id
func (r *DispatchRepo) GetIncidentByID(ctx context.Context, id uuid.UUID) (*models.EmergencyIncident, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM emergency_incidents
		WHERE id = $1
	`, incidentColumns)

	var incident models.EmergencyIncident
	err := r.db.GetContext(ctx, &incident, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrIncidentNotFound
		}
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}

	return &incident, nil
}

// GetIncidentsByStaff retrieves the incidents assigned to a staff member,
// most recent first.
func (r *DispatchRepo) GetIncidentsByStaff(ctx context.Context, staffID uuid.UUID) ([]*models.EmergencyIncident, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM emergency_incidents
		WHERE attended_by = $1
		ORDER BY created_at DESC
	`, incidentColumns)

	var incidents []*models.EmergencyIncident
	err := r.db.SelectContext(ctx, &incidents, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get incidents by staff: %w", err)
	}

	return incidents, nil
}

// CreateIncidentReport persists a staff follow-up report
func (r *DispatchRepo) CreateIncidentReport(ctx context.Context, report *models.IncidentReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	report.CreatedAt = time.Now()

	query := `
		INSERT INTO incident_reports (id, emergency_id, staff_id, notes, created_at)
		VALUES (:id, :emergency_id, :staff_id, :notes, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, report)
	if err != nil {
		return fmt.Errorf("failed to insert incident report: %w", err)
	}

	return nil
}
