package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnboardingStateAtLeast(t *testing.T) {
	assert.True(t, StateProfileCompleted.AtLeast(StateRegistered))
	assert.True(t, StateProfileCompleted.AtLeast(StateProfileCompleted))
	assert.True(t, StateEmailVerified.AtLeast(StateRegistered))
	assert.False(t, StateRegistered.AtLeast(StateEmailVerified))
	assert.False(t, StateAccountTypeSelected.AtLeast(StateProfileCompleted))
}

func TestParseAccountType(t *testing.T) {
	for _, raw := range []string{"staff", "service_provider", "admin"} {
		parsed, ok := ParseAccountType(raw)
		require.True(t, ok, raw)
		assert.Equal(t, AccountType(raw), parsed)
	}

	for _, raw := range []string{"", "Staff", "STAFF", "manager"} {
		_, ok := ParseAccountType(raw)
		assert.False(t, ok, raw)
	}
}

func TestParseRoleTag(t *testing.T) {
	for _, raw := range []string{"nurse", "senior_hca", "hca_carer", "support_worker"} {
		parsed, ok := ParseRoleTag(raw)
		require.True(t, ok, raw)
		assert.Equal(t, RoleTag(raw), parsed)
	}

	_, ok := ParseRoleTag("doctor")
	assert.False(t, ok)
}

func TestParseRightToWorkStatus(t *testing.T) {
	for _, raw := range []string{"citizen", "visa", "settled_status", "pre_settled_status", "requires_sponsorship"} {
		_, ok := ParseRightToWorkStatus(raw)
		assert.True(t, ok, raw)
	}

	_, ok := ParseRightToWorkStatus("unknown")
	assert.False(t, ok)
}

func TestParseCertificateType(t *testing.T) {
	for _, raw := range []string{
		"first_aid", "basic_life_support", "moving_and_handling",
		"safeguarding_adults", "safeguarding_children", "infection_control",
		"fire_safety", "food_hygiene", "health_and_safety",
		"medication_administration", "mental_capacity_dols", "coshh",
	} {
		parsed, ok := ParseCertificateType(raw)
		require.True(t, ok, raw)
		assert.Equal(t, CertificateType(raw), parsed)
	}

	for _, raw := range []string{"", "First_Aid", "driving"} {
		_, ok := ParseCertificateType(raw)
		assert.False(t, ok, raw)
	}
}
