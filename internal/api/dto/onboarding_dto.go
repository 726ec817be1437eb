package dto

import "time"

// RegisterRequest starts onboarding with an email address.
type RegisterRequest struct {
	Email string `json:"email"`
}

// VerifyEmailRequest presents a challenge code.
type VerifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ResendCodeRequest regenerates the verification code.
type ResendCodeRequest struct {
	Email string `json:"email"`
}

// AccountTypeRequest declares the account branch.
type AccountTypeRequest struct {
	AccountType string `json:"account_type"`
}

// CompleteProfileRequest carries the profile-completion submission.
// Dates use the 2006-01-02 layout.
type CompleteProfileRequest struct {
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Mobile        *string  `json:"mobile,omitempty"`
	DateOfBirth   string   `json:"date_of_birth"`
	Roles         []string `json:"roles,omitempty"`
	RightToWork   string   `json:"right_to_work"`
	CVURL         *string  `json:"cv_url,omitempty"`
	Password      string   `json:"password"`
	AgreedToTerms bool     `json:"agreed_to_terms"`
	Experience    *string  `json:"experience,omitempty"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AccountResponse reflects onboarding account state.
type AccountResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	AccountType *string `json:"account_type,omitempty"`
	State       string  `json:"state"`
}

// ChallengeResponse reports when the active verification code expires. The
// code itself travels by email only.
type ChallengeResponse struct {
	ExpiresAt time.Time `json:"expires_at"`
}

// ProfileResponse reflects a completed profile.
type ProfileResponse struct {
	UserID      string   `json:"user_id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Mobile      *string  `json:"mobile,omitempty"`
	DateOfBirth string   `json:"date_of_birth"`
	Roles       []string `json:"roles"`
	RightToWork string   `json:"right_to_work"`
	CVURL       *string  `json:"cv_url,omitempty"`
	Experience  *string  `json:"experience,omitempty"`
}

// CertificateBulkRequest maps certificate types to optional expiry dates
// (2006-01-02 layout, null for no expiry).
type CertificateBulkRequest struct {
	Certificates map[string]*string `json:"certificates"`
}

// CertificateResponse reflects one stored certificate.
type CertificateResponse struct {
	CertificateType string  `json:"certificate_type"`
	ExpiryDate      *string `json:"expiry_date,omitempty"`
}

// DBSRequest carries a background-check submission. The update-service flag
// is accepted in any representation and coerced server-side.
type DBSRequest struct {
	CertificateNumber         string `json:"certificate_number"`
	SurnameOnCertificate      string `json:"surname_on_certificate"`
	DOBOnCertificate          string `json:"dob_on_certificate"`
	CertificatePrintDate      string `json:"certificate_print_date"`
	RegisteredOnUpdateService any    `json:"is_registered_on_update_service"`
}

// DBSResponse reflects the stored background-check record.
type DBSResponse struct {
	CertificateNumber         string `json:"certificate_number"`
	SurnameOnCertificate      string `json:"surname_on_certificate"`
	DOBOnCertificate          string `json:"dob_on_certificate"`
	CertificatePrintDate      string `json:"certificate_print_date"`
	RegisteredOnUpdateService bool   `json:"is_registered_on_update_service"`
}
