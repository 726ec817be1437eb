package domain

import "time"

// CertificateType enumerates the mandatory training categories.
type CertificateType string

const (
	CertFirstAid           CertificateType = "first_aid"
	CertBasicLifeSupport   CertificateType = "basic_life_support"
	CertMovingAndHandling  CertificateType = "moving_and_handling"
	CertSafeguardingAdults CertificateType = "safeguarding_adults"
	CertSafeguardingKids   CertificateType = "safeguarding_children"
	CertInfectionControl   CertificateType = "infection_control"
	CertFireSafety         CertificateType = "fire_safety"
	CertFoodHygiene        CertificateType = "food_hygiene"
	CertHealthAndSafety    CertificateType = "health_and_safety"
	CertMedicationAdmin    CertificateType = "medication_administration"
	CertMentalCapacity     CertificateType = "mental_capacity_dols"
	CertCOSHH              CertificateType = "coshh"
)

var certificateTypes = map[CertificateType]struct{}{
	CertFirstAid:           {},
	CertBasicLifeSupport:   {},
	CertMovingAndHandling:  {},
	CertSafeguardingAdults: {},
	CertSafeguardingKids:   {},
	CertInfectionControl:   {},
	CertFireSafety:         {},
	CertFoodHygiene:        {},
	CertHealthAndSafety:    {},
	CertMedicationAdmin:    {},
	CertMentalCapacity:     {},
	CertCOSHH:              {},
}

// ParseCertificateType validates a raw certificate type value.
func ParseCertificateType(raw string) (CertificateType, bool) {
	if _, ok := certificateTypes[CertificateType(raw)]; ok {
		return CertificateType(raw), true
	}
	return "", false
}

// StaffCertificate records one training certificate per (user, type).
// Re-submission overwrites the prior expiry.
type StaffCertificate struct {
	UserID          string
	CertificateType CertificateType
	ExpiryDate      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
