package domain

import "time"

// RoleTag enumerates the care roles a staff member can declare.
type RoleTag string

const (
	RoleNurse         RoleTag = "nurse"
	RoleSeniorHCA     RoleTag = "senior_hca"
	RoleHCACarer      RoleTag = "hca_carer"
	RoleSupportWorker RoleTag = "support_worker"
)

// ParseRoleTag validates a raw role value.
func ParseRoleTag(raw string) (RoleTag, bool) {
	switch RoleTag(raw) {
	case RoleNurse, RoleSeniorHCA, RoleHCACarer, RoleSupportWorker:
		return RoleTag(raw), true
	}
	return "", false
}

// RightToWorkStatus records the declared right-to-work position.
type RightToWorkStatus string

const (
	RightToWorkCitizen     RightToWorkStatus = "citizen"
	RightToWorkVisa        RightToWorkStatus = "visa"
	RightToWorkSettled     RightToWorkStatus = "settled_status"
	RightToWorkPreSettled  RightToWorkStatus = "pre_settled_status"
	RightToWorkSponsorship RightToWorkStatus = "requires_sponsorship"
)

// ParseRightToWorkStatus validates a raw right-to-work value.
func ParseRightToWorkStatus(raw string) (RightToWorkStatus, bool) {
	switch RightToWorkStatus(raw) {
	case RightToWorkCitizen, RightToWorkVisa, RightToWorkSettled, RightToWorkPreSettled, RightToWorkSponsorship:
		return RightToWorkStatus(raw), true
	}
	return "", false
}

// StaffProfile holds the completed profile details for a staff account.
// Created once at profile completion; completion is irreversible.
type StaffProfile struct {
	UserID        string
	FirstName     string
	LastName      string
	Mobile        *string
	DateOfBirth   time.Time
	Roles         []RoleTag
	RightToWork   RightToWorkStatus
	CVURL         *string
	AgreedToTerms bool
	Experience    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
