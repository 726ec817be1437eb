package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// RequireAccountType ensures the principal selected one of the allowed
// account types.
func RequireAccountType(allowed ...domain.AccountType) fiber.Handler {
	allowedSet := make(map[domain.AccountType]struct{}, len(allowed))
	for _, t := range allowed {
		allowedSet[t] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.AccountType == nil {
			return fiber.NewError(http.StatusForbidden, "account type required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[*principal.AccountType]; !exists {
			return fiber.NewError(http.StatusForbidden, "insufficient account type")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures the caller is authenticated.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		return c.Next()
	}
}
