package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staffing-service/internal/api/http/handlers"
	"github.com/spec-kit/staffing-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Onboarding     *handlers.OnboardingHandler
	Compliance     *handlers.ComplianceHandler
	CheckIn        *handlers.CheckInHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Onboarding.Register)
	authGroup.Post("/verify-email", cfg.Onboarding.VerifyEmail)
	authGroup.Post("/resend-code", cfg.Onboarding.ResendCode)
	authGroup.Post("/login", cfg.Onboarding.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	protected.Post("/auth/account-type", cfg.Onboarding.SelectAccountType)

	staff := protected.Group("/staff")
	staff.Post("/profile", cfg.Onboarding.CompleteProfile)
	staff.Get("/profile", cfg.Onboarding.GetProfile)
	staff.Post("/certificates", cfg.Compliance.SubmitCertificates)
	staff.Post("/dbs", cfg.Compliance.SubmitDBS)
	staff.Get("/compliance", cfg.Compliance.GetCompliance)

	protected.Get("/me/context", cfg.CheckIn.ActorContext)

	shifts := protected.Group("/shifts")
	shifts.Post("/:id/checkin", cfg.CheckIn.CheckIn)
	shifts.Get("/:id/checkin", cfg.CheckIn.Latest)
	shifts.Get("/:id/checkin/audit", cfg.CheckIn.AuditTrail)
}
