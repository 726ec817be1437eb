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

const dateLayout = "2006-01-02"

// OnboardingHandler exposes the staff onboarding pipeline.
type OnboardingHandler struct {
	onboarding *service.OnboardingService
}

// NewOnboardingHandler constructs handler.
func NewOnboardingHandler(onboarding *service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{onboarding: onboarding}
}

// Register handles POST /auth/register.
func (h *OnboardingHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "email required")
	}

	account, challenge, err := h.onboarding.Register(c.Context(), req.Email)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"account":   accountResponse(account),
			"challenge": dto.ChallengeResponse{ExpiresAt: challenge.ExpiresAt},
		},
	})
}

// VerifyEmail handles POST /auth/verify-email.
func (h *OnboardingHandler) VerifyEmail(c *fiber.Ctx) error {
	var req dto.VerifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Code == "" {
		return fiber.NewError(http.StatusBadRequest, "email and code required")
	}

	account, token, exp, err := h.onboarding.VerifyEmail(c.Context(), req.Email, req.Code)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"account": accountResponse(account),
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// ResendCode handles POST /auth/resend-code.
func (h *OnboardingHandler) ResendCode(c *fiber.Ctx) error {
	var req dto.ResendCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "email required")
	}

	challenge, err := h.onboarding.ResendCode(c.Context(), req.Email)
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{
		"data": dto.ChallengeResponse{ExpiresAt: challenge.ExpiresAt},
	})
}

// SelectAccountType handles POST /auth/account-type.
func (h *OnboardingHandler) SelectAccountType(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}
	var req dto.AccountTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	account, err := h.onboarding.SelectAccountType(c.Context(), principal.Account.ID, req.AccountType)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": accountResponse(account)})
}

// CompleteProfile handles POST /staff/profile.
func (h *OnboardingHandler) CompleteProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}
	var req dto.CompleteProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
	}

	profile, err := h.onboarding.CompleteProfile(c.Context(), principal.Account.ID, service.ProfileInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Mobile:        req.Mobile,
		DateOfBirth:   dob,
		Roles:         req.Roles,
		RightToWork:   req.RightToWork,
		CVURL:         req.CVURL,
		Password:      req.Password,
		AgreedToTerms: req.AgreedToTerms,
		Experience:    req.Experience,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": profileResponse(profile)})
}

// GetProfile handles GET /staff/profile.
func (h *OnboardingHandler) GetProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}
	profile, err := h.onboarding.GetProfile(c.Context(), principal.Account.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profileResponse(profile)})
}

// Login handles POST /auth/login.
func (h *OnboardingHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	account, token, exp, err := h.onboarding.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"account": accountResponse(account),
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

func accountResponse(account *domain.StaffAccount) dto.AccountResponse {
	resp := dto.AccountResponse{
		ID:    account.ID,
		Email: account.Email,
		State: string(account.State),
	}
	if account.AccountType != nil {
		t := string(*account.AccountType)
		resp.AccountType = &t
	}
	return resp
}

func profileResponse(profile *domain.StaffProfile) dto.ProfileResponse {
	roles := make([]string, 0, len(profile.Roles))
	for _, role := range profile.Roles {
		roles = append(roles, string(role))
	}
	return dto.ProfileResponse{
		UserID:      profile.UserID,
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		Mobile:      profile.Mobile,
		DateOfBirth: profile.DateOfBirth.Format(dateLayout),
		Roles:       roles,
		RightToWork: string(profile.RightToWork),
		CVURL:       profile.CVURL,
		Experience:  profile.Experience,
	}
}
