package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/staffing-service/internal/domain"
	"github.com/spec-kit/staffing-service/internal/events"
	"github.com/spec-kit/staffing-service/internal/geo"
	"github.com/spec-kit/staffing-service/internal/observability"
	"github.com/spec-kit/staffing-service/internal/repository"
	apperrors "github.com/spec-kit/staffing-service/pkg/util/errorutil"
)

// CheckInService verifies shift check-ins against the shift geofence. Every
// attempt is audited; the latest decision per (shift, staff user) is kept as
// a single upserted row.
type CheckInService struct {
	shifts     repository.ShiftRepository
	checkins   repository.CheckInRepository
	audits     repository.CheckInAuditRepository
	resolver   *ContextResolver
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
}

// CheckInDependencies encapsulates collaborator requirements.
type CheckInDependencies struct {
	ShiftRepo   repository.ShiftRepository
	CheckInRepo repository.CheckInRepository
	AuditRepo   repository.CheckInAuditRepository
	Resolver    *ContextResolver
}

// NewCheckInService builds the service.
func NewCheckInService(deps CheckInDependencies, dispatcher events.Dispatcher, metrics *observability.Metrics) *CheckInService {
	return &CheckInService{
		shifts:     deps.ShiftRepo,
		checkins:   deps.CheckInRepo,
		audits:     deps.AuditRepo,
		resolver:   deps.Resolver,
		dispatcher: dispatcher,
		metrics:    metrics,
	}
}

// CheckInInput is one verification attempt. Reported is nil when the device
// could not supply a location; Override carries the alternate verification
// signal (manager confirmation) for that path.
type CheckInInput struct {
	ShiftID  string
	Reported *geo.Point
	Override *bool
}

// CheckIn verifies the reported location against the shift geofence and
// records the decision. The staff user must belong to the shift's provider.
func (s *CheckInService) CheckIn(ctx context.Context, staffUserID string, input CheckInInput) (*domain.GeofenceCheckIn, error) {
	shift, err := s.getShift(ctx, input.ShiftID)
	if err != nil {
		return nil, err
	}

	actor, err := s.resolver.Resolve(ctx, staffUserID)
	if err != nil {
		return nil, err
	}
	if actor.ServiceProviderID != shift.ProviderID {
		return nil, apperrors.NewUnauthorizedContext("shift belongs to a different service provider")
	}

	if input.Reported != nil {
		if err := input.Reported.Validate(); err != nil {
			return nil, apperrors.NewValidationError("coordinates out of range", map[string]any{
				"latitude":  input.Reported.Latitude,
				"longitude": input.Reported.Longitude,
			})
		}
	}

	checkin, distance := evaluate(shift.Geofence, input)
	checkin.ShiftID = shift.ID
	checkin.StaffUserID = staffUserID
	checkin.Timestamp = time.Now()

	audit := &domain.CheckInAudit{
		ShiftID:           checkin.ShiftID,
		StaffUserID:       checkin.StaffUserID,
		ReportedLatitude:  checkin.ReportedLatitude,
		ReportedLongitude: checkin.ReportedLongitude,
		DistanceMeters:    distance,
		Verified:          checkin.Verified,
		Reason:            checkin.Reason,
	}
	if err := s.audits.Create(ctx, audit); err != nil {
		return nil, apperrors.MapError(err)
	}

	// A transient write race on the natural key is retried once.
	if err := s.checkins.UpsertLatest(ctx, checkin); err != nil {
		if retryErr := s.checkins.UpsertLatest(ctx, checkin); retryErr != nil {
			return nil, apperrors.NewConflict("concurrent check-in write", map[string]any{
				"shift_id":      checkin.ShiftID,
				"staff_user_id": checkin.StaffUserID,
			})
		}
	}

	s.metrics.RecordCheckIn(checkin.Verified, checkin.Reason)
	s.publishRecorded(ctx, checkin, distance)
	return checkin, nil
}

// LatestCheckIn returns the current decision for (shift, staff user).
func (s *CheckInService) LatestCheckIn(ctx context.Context, shiftID, staffUserID string) (*domain.GeofenceCheckIn, error) {
	checkin, err := s.checkins.GetLatest(ctx, shiftID, staffUserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("check-in", map[string]any{"shift_id": shiftID})
		}
		return nil, apperrors.MapError(err)
	}
	return checkin, nil
}

// AuditTrail lists every verification attempt for a shift, scoped to the
// shift's provider via the caller's actor context.
func (s *CheckInService) AuditTrail(ctx context.Context, callerUserID, shiftID string) ([]domain.CheckInAudit, error) {
	shift, err := s.getShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	actor, err := s.resolver.Resolve(ctx, callerUserID)
	if err != nil {
		return nil, err
	}
	if actor.ServiceProviderID != shift.ProviderID {
		return nil, apperrors.NewUnauthorizedContext("shift belongs to a different service provider")
	}
	return s.audits.ListByShift(ctx, shiftID)
}

// evaluate produces the verification decision and, when a location was
// reported, the distance from the geofence center.
func evaluate(fence geo.Fence, input CheckInInput) (*domain.GeofenceCheckIn, *float64) {
	if input.Reported == nil {
		verified := false
		if input.Override != nil {
			verified = *input.Override
		}
		return &domain.GeofenceCheckIn{
			Verified: verified,
			Reason:   domain.ReasonNoLocationReported,
		}, nil
	}

	within, distance := fence.Contains(*input.Reported)
	reason := domain.ReasonWithinGeofence
	if !within {
		reason = fmt.Sprintf("%s:%.0fm", domain.ReasonOutsideGeofence, distance)
	}
	return &domain.GeofenceCheckIn{
		ReportedLatitude:  &input.Reported.Latitude,
		ReportedLongitude: &input.Reported.Longitude,
		Verified:          within,
		Reason:            reason,
	}, &distance
}

func (s *CheckInService) getShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	shift, err := s.shifts.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("shift", map[string]any{"shift_id": shiftID})
		}
		return nil, apperrors.MapError(err)
	}
	return shift, nil
}

func (s *CheckInService) publishRecorded(ctx context.Context, checkin *domain.GeofenceCheckIn, distance *float64) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventCheckInRecorded,
		UserID:    checkin.StaffUserID,
		Timestamp: checkin.Timestamp,
		Payload: events.CheckInRecordedPayload{
			ShiftID:        checkin.ShiftID,
			Verified:       checkin.Verified,
			Reason:         checkin.Reason,
			DistanceMeters: distance,
		},
	})
}
