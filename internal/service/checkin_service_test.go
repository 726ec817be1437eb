package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staffing-service/internal/domain"
	"github.com/spec-kit/staffing-service/internal/geo"
	apperrors "github.com/spec-kit/staffing-service/pkg/util/errorutil"
)

type checkInFixture struct {
	svc       *CheckInService
	shifts    *fakeShiftRepo
	checkins  *fakeCheckInRepo
	audits    *fakeAuditRepo
	providers *fakeProviderRepo
}

func newCheckInFixture() *checkInFixture {
	f := &checkInFixture{
		shifts:    newFakeShiftRepo(),
		checkins:  newFakeCheckInRepo(),
		audits:    newFakeAuditRepo(),
		providers: newFakeProviderRepo(),
	}

	providerID := "provider-1"
	f.providers.employees["staff-1"] = &domain.Employee{ID: "emp-1", UserID: "staff-1", ProviderID: &providerID, Active: true}
	f.shifts.shifts["shift-1"] = &domain.Shift{
		ID:         "shift-1",
		ProviderID: providerID,
		Location:   "Elm Care Home",
		Geofence: geo.Fence{
			Center:       geo.Point{Latitude: 51.5074, Longitude: -0.1278},
			RadiusMeters: 200,
		},
		StartsAt: time.Now(),
		EndsAt:   time.Now().Add(8 * time.Hour),
	}

	f.svc = NewCheckInService(CheckInDependencies{
		ShiftRepo:   f.shifts,
		CheckInRepo: f.checkins,
		AuditRepo:   f.audits,
		Resolver:    NewContextResolver(f.providers),
	}, nil, nil)
	return f
}

func TestCheckInWithinGeofence(t *testing.T) {
	ctx := context.Background()
	f := newCheckInFixture()

	checkin, err := f.svc.CheckIn(ctx, "staff-1", CheckInInput{
		ShiftID: "shift-1",
		// ~50m from the geofence center.
		Reported: &geo.Point{Latitude: 51.50785, Longitude: -0.1278},
	})
	require.NoError(t, err)
	assert.True(t, checkin.Verified)
	assert.Equal(t, domain.ReasonWithinGeofence, checkin.Reason)
	require.NotNil(t, checkin.ReportedLatitude)
	assert.Equal(t, 51.50785, *checkin.ReportedLatitude)
}

func TestCheckInOutsideGeofence(t *testing.T) {
	ctx := context.Background()
	f := newCheckInFixture()

	checkin, err := f.svc.CheckIn(ctx, "staff-1", CheckInInput{
		ShiftID: "shift-1",
		// ~5km from the geofence center.
		Reported: &geo.Point{Latitude: 51.5524, Longitude: -0.1278},
	})
	require.NoError(t, err)
	assert.False(t, checkin.Verified)
	assert.True(t, strings.HasPrefix(checkin.Reason, domain.ReasonOutsideGeofence+":"), checkin.Reason)
	assert.True(t, strings.HasSuffix(checkin.Reason, "m"), checkin.Reason)
}

func TestCheckInWithoutLocation(t *testing.T) {
	ctx := context.Background()
	f := newCheckInFixture()

	t.Run("no override", func(t *testing.T) {
		checkin, err := f.svc.CheckIn(ctx, "staff-1", CheckInInput{ShiftID: "shift-1"})
		require.NoError(t, err)
		assert.False(t, checkin.Verified)
		assert.Equal(t, domain.ReasonNoLocationReported, checkin.Reason)
		assert.Nil(t, checkin.ReportedLatitude)
	})

	t.Run("override grants verification", func(t *testing.T) {
		override := true
		checkin, err := f.svc.CheckIn(ctx, "staff-1", CheckInInput{ShiftID: "shift-1", Override: &override})
		require.NoError(t, err)
		assert.True(t, checkin.Verified)
		assert.Equal(t, domain.ReasonNoLocationReported, checkin.Reason)
	})

	t.Run("override ignored when location reported", func(t *testing.T) {
		override := true
		checkin, err := f.svc.CheckIn(ctx, "staff-1", CheckInInput{
			ShiftID:  "shift-1",
			Reported: &geo.Point{Latitude: 51.5524, Longitude: -0.1278},
			Override: &override,
		})
		require.NoError(t, err)
		assert.False(t, checkin.Verified)
	})
}

func TestCheckInRejectsOutOfRangeCoordinates(t *testing.T) {
	ctx := context.Background()
	f := newCheckInFixture()

	_, err := f.svc.CheckIn(ctx, "staff-1", CheckInInput{
		ShiftID:  "shift-1",
		Reported: &geo.Point{Latitude: 95, Longitude: 0},
	})
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

	// Rejected submissions are not audited.
	trail, listErr := f.audits.ListByShift(ctx, "shift-1")
	require.NoError(t, listErr)
	assert.Empty(t, trail)
}

func TestCheckInRejectsForeignProvider(t *testing.T) {
	ctx := context.Background()
	f := newCheckInFixture()

	otherProvider := "provider-2"
	f.providers.employees["outsider"] = &domain.Employee{ID: "emp-2", UserID: "outsider", ProviderID: &otherProvider, Active: true}

	_, err := f.svc.CheckIn(ctx, "outsider", CheckInInput{ShiftID: "shift-1"})
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED_CONTEXT"))
}

func TestCheckInRejectsUnlinkedUser(t *testing.T) {
	ctx := context.Background()
	f := newCheckInFixture()

	_, err := f.svc.CheckIn(ctx, "stranger", CheckInInput{ShiftID: "shift-1"})
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED_CONTEXT"))
}

func TestCheckInUnknownShift(t *testing.T) {
	ctx := context.Background()
	f := newCheckInFixture()

	_, err := f.svc.CheckIn(ctx, "staff-1", CheckInInput{ShiftID: "missing"})
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestCheckInKeepsLatestAndAuditsEveryAttempt(t *testing.T) {
	ctx := context.Background()
	f := newCheckInFixture()

	_, err := f.svc.CheckIn(ctx, "staff-1", CheckInInput{
		ShiftID:  "shift-1",
		Reported: &geo.Point{Latitude: 51.5524, Longitude: -0.1278},
	})
	require.NoError(t, err)

	second, err := f.svc.CheckIn(ctx, "staff-1", CheckInInput{
		ShiftID:  "shift-1",
		Reported: &geo.Point{Latitude: 51.50785, Longitude: -0.1278},
	})
	require.NoError(t, err)
	assert.True(t, second.Verified)
	assert.Equal(t, int64(2), second.Version)

	latest, err := f.svc.LatestCheckIn(ctx, "shift-1", "staff-1")
	require.NoError(t, err)
	assert.True(t, latest.Verified)
	assert.Equal(t, domain.ReasonWithinGeofence, latest.Reason)

	trail, err := f.svc.AuditTrail(ctx, "staff-1", "shift-1")
	require.NoError(t, err)
	require.Len(t, trail, 2)
	assert.False(t, trail[0].Verified)
	assert.True(t, trail[1].Verified)
	require.NotNil(t, trail[0].DistanceMeters)
	assert.InDelta(t, 5000, *trail[0].DistanceMeters, 50)
}

func TestLatestCheckInNotFound(t *testing.T) {
	ctx := context.Background()
	f := newCheckInFixture()

	_, err := f.svc.LatestCheckIn(ctx, "shift-1", "staff-1")
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestAuditTrailScopedToProvider(t *testing.T) {
	ctx := context.Background()
	f := newCheckInFixture()

	_, err := f.svc.CheckIn(ctx, "staff-1", CheckInInput{ShiftID: "shift-1"})
	require.NoError(t, err)

	otherProvider := "provider-2"
	f.providers.employees["outsider"] = &domain.Employee{ID: "emp-2", UserID: "outsider", ProviderID: &otherProvider, Active: true}

	_, err = f.svc.AuditTrail(ctx, "outsider", "shift-1")
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED_CONTEXT"))
}
