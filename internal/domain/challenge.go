package domain

import "time"

// EmailVerificationChallenge is a short-lived one-time code proving email
// ownership. At most one active challenge per user; issuing a new one
// replaces the prior code.
type EmailVerificationChallenge struct {
	UserID    string
	Email     string
	Code      string
	ExpiresAt time.Time
}
