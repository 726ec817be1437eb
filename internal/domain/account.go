package domain

import "time"

// OnboardingState tracks a staff account through the compliance pipeline.
type OnboardingState string

const (
	StateRegistered          OnboardingState = "REGISTERED"
	StateEmailVerified       OnboardingState = "EMAIL_VERIFIED"
	StateAccountTypeSelected OnboardingState = "ACCOUNT_TYPE_SELECTED"
	StateProfileCompleted    OnboardingState = "PROFILE_COMPLETED"
)

var stateRank = map[OnboardingState]int{
	StateRegistered:          0,
	StateEmailVerified:       1,
	StateAccountTypeSelected: 2,
	StateProfileCompleted:    3,
}

// AtLeast reports whether the state has reached the given stage.
func (s OnboardingState) AtLeast(other OnboardingState) bool {
	return stateRank[s] >= stateRank[other]
}

// AccountType is the one-time branch selected after email verification.
type AccountType string

const (
	AccountTypeStaff           AccountType = "staff"
	AccountTypeServiceProvider AccountType = "service_provider"
	AccountTypeAdmin           AccountType = "admin"
)

// ParseAccountType validates a raw account type value.
func ParseAccountType(raw string) (AccountType, bool) {
	switch AccountType(raw) {
	case AccountTypeStaff, AccountTypeServiceProvider, AccountTypeAdmin:
		return AccountType(raw), true
	}
	return "", false
}

// StaffAccount is the onboarding aggregate root. Version is bumped on every
// state write; stale writers lose with a conflict.
type StaffAccount struct {
	ID           string
	Email        string
	PasswordHash *string
	AccountType  *AccountType
	State        OnboardingState
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
