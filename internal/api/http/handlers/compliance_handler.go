package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staffing-service/internal/api/dto"
	"github.com/spec-kit/staffing-service/internal/auth"
	"github.com/spec-kit/staffing-service/internal/domain"
	"github.com/spec-kit/staffing-service/internal/service"
)

// ComplianceHandler exposes certificate and DBS submission endpoints.
type ComplianceHandler struct {
	onboarding *service.OnboardingService
}

// NewComplianceHandler constructs handler.
func NewComplianceHandler(onboarding *service.OnboardingService) *ComplianceHandler {
	return &ComplianceHandler{onboarding: onboarding}
}

// SubmitCertificates handles POST /staff/certificates.
func (h *ComplianceHandler) SubmitCertificates(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}
	var req dto.CertificateBulkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if len(req.Certificates) == 0 {
		return fiber.NewError(http.StatusBadRequest, "at least one certificate required")
	}

	certs := make(map[string]*time.Time, len(req.Certificates))
	for rawType, rawExpiry := range req.Certificates {
		if rawExpiry == nil {
			certs[rawType] = nil
			continue
		}
		expiry, err := time.Parse(dateLayout, *rawExpiry)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "expiry dates must be YYYY-MM-DD")
		}
		certs[rawType] = &expiry
	}

	stored, err := h.onboarding.SubmitCertificates(c.Context(), principal.Account.ID, certs)
	if err != nil {
		return err
	}

	resp := make([]dto.CertificateResponse, 0, len(stored))
	for i := range stored {
		resp = append(resp, certificateResponse(&stored[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// SubmitDBS handles POST /staff/dbs.
func (h *ComplianceHandler) SubmitDBS(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}
	var req dto.DBSRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	dob, err := time.Parse(dateLayout, req.DOBOnCertificate)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "dob_on_certificate must be YYYY-MM-DD")
	}
	printDate, err := time.Parse(dateLayout, req.CertificatePrintDate)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "certificate_print_date must be YYYY-MM-DD")
	}

	info, err := h.onboarding.SubmitDBS(c.Context(), principal.Account.ID, service.DBSInput{
		CertificateNumber:         req.CertificateNumber,
		SurnameOnCertificate:      req.SurnameOnCertificate,
		DOBOnCertificate:          dob,
		CertificatePrintDate:      printDate,
		RegisteredOnUpdateService: req.RegisteredOnUpdateService,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dbsResponse(info)})
}

// GetCompliance handles GET /staff/compliance.
func (h *ComplianceHandler) GetCompliance(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}
	certs, info, err := h.onboarding.GetCompliance(c.Context(), principal.Account.ID)
	if err != nil {
		return err
	}

	certResp := make([]dto.CertificateResponse, 0, len(certs))
	for i := range certs {
		certResp = append(certResp, certificateResponse(&certs[i]))
	}
	resp := fiber.Map{"certificates": certResp}
	if info != nil {
		resp["dbs"] = dbsResponse(info)
	}
	return c.JSON(fiber.Map{"data": resp})
}

func certificateResponse(cert *domain.StaffCertificate) dto.CertificateResponse {
	resp := dto.CertificateResponse{CertificateType: string(cert.CertificateType)}
	if cert.ExpiryDate != nil {
		expiry := cert.ExpiryDate.Format(dateLayout)
		resp.ExpiryDate = &expiry
	}
	return resp
}

func dbsResponse(info *domain.DBSInfo) dto.DBSResponse {
	return dto.DBSResponse{
		CertificateNumber:         info.CertificateNumber,
		SurnameOnCertificate:      info.SurnameOnCertificate,
		DOBOnCertificate:          info.DOBOnCertificate.Format(dateLayout),
		CertificatePrintDate:      info.CertificatePrintDate.Format(dateLayout),
		RegisteredOnUpdateService: info.RegisteredOnUpdateService,
	}
}
