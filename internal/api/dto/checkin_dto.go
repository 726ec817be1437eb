package dto

import "time"

// CheckInRequest is one verification attempt. Coordinates are optional:
// their absence routes to the device-less verification path, where
// manager_override supplies the alternate signal.
type CheckInRequest struct {
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	ManagerOverride *bool    `json:"manager_override,omitempty"`
}

// CheckInResponse reflects the latest verification decision.
type CheckInResponse struct {
	ShiftID     string    `json:"shift_id"`
	StaffUserID string    `json:"staff_user_id"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Verified    bool      `json:"verified"`
	Reason      string    `json:"reason"`
}

// CheckInAuditResponse is one audit-trail entry.
type CheckInAuditResponse struct {
	ID             string    `json:"id"`
	StaffUserID    string    `json:"staff_user_id"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	DistanceMeters *float64  `json:"distance_meters,omitempty"`
	Verified       bool      `json:"verified"`
	Reason         string    `json:"reason"`
	CreatedAt      time.Time `json:"created_at"`
}

// ActorContextResponse is the resolved provider scope for the caller.
type ActorContextResponse struct {
	ServiceProviderID string  `json:"service_provider_id"`
	EmployeeID        *string `json:"employee_id,omitempty"`
}
