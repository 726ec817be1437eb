package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staffing-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", 30)

	accountType := domain.AccountTypeStaff
	token, expiresAt, err := manager.GenerateToken("user-1", &accountType)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, time.Minute)

	claims, err := manager.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	require.NotNil(t, claims.AccountType)
	assert.Equal(t, domain.AccountTypeStaff, *claims.AccountType)
}

func TestTokenWithoutAccountType(t *testing.T) {
	manager := NewTokenManager("test-secret", 30)

	token, _, err := manager.GenerateToken("user-1", nil)
	require.NoError(t, err)

	claims, err := manager.ParseToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.AccountType)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 30).GenerateToken("user-1", nil)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 30).ParseToken(token)
	assert.Error(t, err)

	_, err = NewTokenManager("secret-a", 30).ParseToken("not-a-token")
	assert.Error(t, err)
}
