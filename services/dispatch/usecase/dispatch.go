package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/zamcare/medirush/internal/pkg/apperrors"
	"github.com/zamcare/medirush/internal/pkg/logger"
	"github.com/zamcare/medirush/internal/pkg/models"
	"github.com/zamcare/medirush/internal/utils"
)

// alertPublishTimeout bounds the detached broadcast call so a slow channel
// cannot pile up goroutines.
const alertPublishTimeout = 5 * time.Second

// areaGeohashPrecision yields roughly neighborhood-sized cells
const areaGeohashPrecision = 6

type rankedStaff struct {
	staff      *models.Staff
	distanceKm float64
}

// ReportEmergency validates a help report, ranks every located staff member
// by haversine distance to the victim, persists an incident for the nearest
// one and notifies them on their broadcast channel. The notification is
// fire-and-forget: its failure never surfaces to the reporter.
func (uc *DispatchUC) ReportEmergency(ctx context.Context, req *models.EmergencyRequest) (*models.DispatchResult, error) {
	reportedAt, vErr := validateEmergencyRequest(req)
	if vErr != nil {
		return nil, vErr
	}

	staffList, err := uc.dispatchRepo.GetLocatedStaff(ctx)
	if err != nil {
		return nil, err
	}

	victim := utils.GeoPoint{Latitude: *req.Latitude, Longitude: *req.Longitude}

	ranked := make([]rankedStaff, 0, len(staffList))
	for _, staff := range staffList {
		if !staff.HasLocation() {
			continue
		}
		distance := utils.CalculateDistance(victim, utils.GeoPoint{
			Latitude:  *staff.LastKnownLatitude,
			Longitude: *staff.LastKnownLongitude,
		})
		ranked = append(ranked, rankedStaff{staff: staff, distanceKm: distance})
	}

	if len(ranked) == 0 {
		return nil, apperrors.ErrNoAvailableResponder
	}

	// Stable sort keeps first-seen priority on exact distance ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].distanceKm < ranked[j].distanceKm
	})
	closest := ranked[0]

	incident := &models.EmergencyIncident{
		ID:                   uuid.New(),
		Phone:                req.Phone,
		Latitude:             *req.Latitude,
		Longitude:            *req.Longitude,
		AttendedBy:           closest.staff.ID,
		ClosestStaffDistance: closest.distanceKm,
		Active:               true,
		CreatedAt:            time.Now(),
	}
	if err := uc.dispatchRepo.CreateIncident(ctx, incident); err != nil {
		return nil, err
	}

	uc.notifyStaff(closest.staff, incident, closest.distanceKm, reportedAt)

	return &models.DispatchResult{
		Message: "Help request received and closest staff notified via real-time alert",
		ClosestStaff: models.ClosestStaff{
			Name:       closest.staff.UserName,
			Phone:      closest.staff.UserPhone,
			DistanceKm: utils.RoundKm(closest.distanceKm),
		},
		EmergencyID: incident.ID,
	}, nil
}

// notifyStaff dispatches the real-time alert on a detached goroutine with a
// bounded timeout. The incident is already persisted; a publish failure is
// logged and otherwise dropped.
func (uc *DispatchUC) notifyStaff(staff *models.Staff, incident *models.EmergencyIncident, distanceKm float64, reportedAt time.Time) {
	event := &models.EmergencyAlertEvent{
		StaffID:    staff.ID,
		Incident:   incident,
		DistanceKm: distanceKm,
		Area:       utils.EncodeLocation(incident.Latitude, incident.Longitude, areaGeohashPrecision),
		ReportedAt: reportedAt,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), alertPublishTimeout)
		defer cancel()

		if err := uc.dispatchGW.PublishEmergencyAlert(ctx, event); err != nil {
			logger.Error("Failed to publish emergency alert",
				logger.String("staff_id", staff.ID.String()),
				logger.String("emergency_id", incident.ID.String()),
				logger.Err(err))
		}
	}()
}

func validateEmergencyRequest(req *models.EmergencyRequest) (time.Time, error) {
	fields := map[string]string{}

	if req.Phone == "" {
		fields["phone"] = "The phone field is required."
	}
	if req.Latitude == nil {
		fields["latitude"] = "The latitude field is required."
	} else if math.IsNaN(*req.Latitude) || math.IsInf(*req.Latitude, 0) {
		fields["latitude"] = "The latitude must be a number."
	}
	if req.Longitude == nil {
		fields["longitude"] = "The longitude field is required."
	} else if math.IsNaN(*req.Longitude) || math.IsInf(*req.Longitude, 0) {
		fields["longitude"] = "The longitude must be a number."
	}

	var reportedAt time.Time
	if req.Timestamp == "" {
		fields["timestamp"] = "The timestamp field is required."
	} else {
		var err error
		reportedAt, err = time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			fields["timestamp"] = "The timestamp is not a valid date."
		}
	}

	if len(fields) > 0 {
		return time.Time{}, apperrors.NewValidationError(fields)
	}

	return reportedAt, nil
}
