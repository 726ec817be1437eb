package domain

import (
	"strings"
	"time"
)

// DBSInfo is the background-check record, one per user.
type DBSInfo struct {
	UserID                    string
	CertificateNumber         string
	SurnameOnCertificate      string
	DOBOnCertificate          time.Time
	CertificatePrintDate      time.Time
	RegisteredOnUpdateService bool
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// CoerceUpdateServiceFlag normalizes the update-service flag from the
// heterogeneous representations seen in submissions: booleans, numeric 1/0
// and string forms. Unrecognized input coerces to false rather than
// erroring; downstream behavior depends on that leniency.
func CoerceUpdateServiceFlag(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case int64:
		return v == 1
	case float64:
		return v == 1
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			return true
		}
	}
	return false
}
