package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/zamcare/medirush/internal/pkg/apperrors"
	"github.com/zamcare/medirush/internal/pkg/models"
)

func incidentColumnsList() []string {
	return []string{
		"id", "phone", "latitude", "longitude", "attended_by",
		"closest_staff_distance", "active", "created_at",
	}
}

func TestCreateIncident(t *testing.T) {
	repo, mock, cleanup := setupDispatchRepoTest(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO emergency_incidents`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	incident := &models.EmergencyIncident{
		Phone:                "0977654321",
		Latitude:             -15.3875,
		Longitude:            28.3228,
		AttendedBy:           uuid.New(),
		ClosestStaffDistance: 0.42,
		Active:               true,
	}
	err := repo.CreateIncident(context.Background(), incident)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, incident.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetIncidentByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupDispatchRepoTest(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM emergency_incidents`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	incident, err := repo.GetIncidentByID(context.Background(), id)

	assert.Nil(t, incident)
	assert.ErrorIs(t, err, apperrors.ErrIncidentNotFound)
}

func TestGetIncidentsByStaff(t *testing.T) {
	repo, mock, cleanup := setupDispatchRepoTest(t)
	defer cleanup()

	staffID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(incidentColumnsList()).
		AddRow(uuid.New(), "0977654321", -15.3875, 28.3228, staffID, 0.42, true, now).
		AddRow(uuid.New(), "0977654322", -15.4000, 28.3000, staffID, 3.1, false, now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT (.+) FROM emergency_incidents\s+WHERE attended_by =`).
		WithArgs(staffID).
		WillReturnRows(rows)

	incidents, err := repo.GetIncidentsByStaff(context.Background(), staffID)

	assert.NoError(t, err)
	assert.Len(t, incidents, 2)
	assert.Equal(t, staffID, incidents[0].AttendedBy)
}

func TestCreateIncidentReport(t *testing.T) {
	repo, mock, cleanup := setupDispatchRepoTest(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO incident_reports`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	report := &models.IncidentReport{
		EmergencyID: uuid.New(),
		StaffID:     uuid.New(),
		Notes:       "Patient stabilized on arrival",
	}
	err := repo.CreateIncidentReport(context.Background(), report)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
