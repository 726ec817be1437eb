package domain

import (
	"time"

	"github.com/spec-kit/staffing-service/internal/geo"
)

// Check-in verification reasons.
const (
	ReasonWithinGeofence     = "within_geofence"
	ReasonOutsideGeofence    = "outside_geofence"
	ReasonNoLocationReported = "no_location_reported"
)

// Shift is the scheduled assignment a staff member checks in against.
type Shift struct {
	ID         string
	ProviderID string
	Location   string
	Geofence   geo.Fence
	StartsAt   time.Time
	EndsAt     time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// GeofenceCheckIn is the latest verification state for (shift, staff user).
type GeofenceCheckIn struct {
	ShiftID           string
	StaffUserID       string
	ReportedLatitude  *float64
	ReportedLongitude *float64
	Timestamp         time.Time
	Verified          bool
	Reason            string
	Version           int64
}

// CheckInAudit is one append-only record per verification attempt.
type CheckInAudit struct {
	ID                string
	ShiftID           string
	StaffUserID       string
	ReportedLatitude  *float64
	ReportedLongitude *float64
	DistanceMeters    *float64
	Verified          bool
	Reason            string
	CreatedAt         time.Time
}
