package events

import (
	"time"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffRegistered       EventType = "staff_registered"
	EventEmailVerified         EventType = "email_verified"
	EventProfileCompleted      EventType = "profile_completed"
	EventCertificatesSubmitted EventType = "certificates_submitted"
	EventDBSSubmitted          EventType = "dbs_submitted"
	EventCheckInRecorded       EventType = "checkin_recorded"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StaffRegisteredPayload payload.
type StaffRegisteredPayload struct {
	Email            string    `json:"email"`
	VerificationCode string    `json:"verification_code"`
	CodeExpiresAt    time.Time `json:"code_expires_at"`
}

// ProfileCompletedPayload payload.
type ProfileCompletedPayload struct {
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Roles     []domain.RoleTag `json:"roles,omitempty"`
}

// CertificatesSubmittedPayload payload.
type CertificatesSubmittedPayload struct {
	CertificateTypes []domain.CertificateType `json:"certificate_types"`
}

// CheckInRecordedPayload payload.
type CheckInRecordedPayload struct {
	ShiftID        string   `json:"shift_id"`
	Verified       bool     `json:"verified"`
	Reason         string   `json:"reason"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
}
