package auth

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/spec-kit/staffing-service/pkg/util/errorutil"
)

// PasswordHasher derives and checks one-way credentials. Plaintext never
// leaves this package once hashed.
type PasswordHasher struct {
	cost      int
	minLength int
}

// NewPasswordHasher builds a hasher with the configured bcrypt cost and
// minimum-length policy.
func NewPasswordHasher(cost, minLength int) *PasswordHasher {
	if minLength <= 0 {
		minLength = 8
	}
	return &PasswordHasher{cost: cost, minLength: minLength}
}

// Hash validates the password against policy and returns the bcrypt hash.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if len(password) < h.minLength {
		return "", apperrors.NewValidationError("password too short", map[string]any{"min_length": h.minLength})
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare verifies a password against its hashed value.
func (h *PasswordHasher) Compare(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
