package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staffing-service/internal/api/dto"
	"github.com/spec-kit/staffing-service/internal/auth"
	"github.com/spec-kit/staffing-service/internal/domain"
	"github.com/spec-kit/staffing-service/internal/geo"
	"github.com/spec-kit/staffing-service/internal/service"
)

// CheckInHandler exposes shift check-in verification endpoints.
type CheckInHandler struct {
	checkins *service.CheckInService
	resolver *service.ContextResolver
}

// NewCheckInHandler constructs handler.
func NewCheckInHandler(checkins *service.CheckInService, resolver *service.ContextResolver) *CheckInHandler {
	return &CheckInHandler{checkins: checkins, resolver: resolver}
}

// CheckIn handles POST /shifts/:id/checkin.
func (h *CheckInHandler) CheckIn(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}
	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return fiber.NewError(http.StatusBadRequest, "latitude and longitude must be supplied together")
	}

	input := service.CheckInInput{
		ShiftID:  c.Params("id"),
		Override: req.ManagerOverride,
	}
	if req.Latitude != nil {
		input.Reported = &geo.Point{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	checkin, err := h.checkins.CheckIn(c.Context(), principal.Account.ID, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": checkInResponse(checkin)})
}

// Latest handles GET /shifts/:id/checkin.
func (h *CheckInHandler) Latest(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}
	checkin, err := h.checkins.LatestCheckIn(c.Context(), c.Params("id"), principal.Account.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": checkInResponse(checkin)})
}

// AuditTrail handles GET /shifts/:id/checkin/audit.
func (h *CheckInHandler) AuditTrail(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}
	audits, err := h.checkins.AuditTrail(c.Context(), principal.Account.ID, c.Params("id"))
	if err != nil {
		return err
	}
	resp := make([]dto.CheckInAuditResponse, 0, len(audits))
	for i := range audits {
		resp = append(resp, auditResponse(&audits[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// ActorContext handles GET /me/context.
func (h *CheckInHandler) ActorContext(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}
	actor, err := h.resolver.Resolve(c.Context(), principal.Account.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ActorContextResponse{
		ServiceProviderID: actor.ServiceProviderID,
		EmployeeID:        actor.EmployeeID,
	}})
}

func checkInResponse(checkin *domain.GeofenceCheckIn) dto.CheckInResponse {
	return dto.CheckInResponse{
		ShiftID:     checkin.ShiftID,
		StaffUserID: checkin.StaffUserID,
		Latitude:    checkin.ReportedLatitude,
		Longitude:   checkin.ReportedLongitude,
		Timestamp:   checkin.Timestamp,
		Verified:    checkin.Verified,
		Reason:      checkin.Reason,
	}
}

func auditResponse(audit *domain.CheckInAudit) dto.CheckInAuditResponse {
	return dto.CheckInAuditResponse{
		ID:             audit.ID,
		StaffUserID:    audit.StaffUserID,
		Latitude:       audit.ReportedLatitude,
		Longitude:      audit.ReportedLongitude,
		DistanceMeters: audit.DistanceMeters,
		Verified:       audit.Verified,
		Reason:         audit.Reason,
		CreatedAt:      audit.CreatedAt,
	}
}
