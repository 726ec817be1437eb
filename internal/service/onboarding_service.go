package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/staffing-service/internal/auth"
	"github.com/spec-kit/staffing-service/internal/config"
	"github.com/spec-kit/staffing-service/internal/domain"
	"github.com/spec-kit/staffing-service/internal/events"
	"github.com/spec-kit/staffing-service/internal/observability"
	"github.com/spec-kit/staffing-service/internal/repository"
	apperrors "github.com/spec-kit/staffing-service/pkg/util/errorutil"
)

// OnboardingService drives the staff compliance pipeline:
// REGISTERED -> EMAIL_VERIFIED -> ACCOUNT_TYPE_SELECTED -> PROFILE_COMPLETED,
// followed by certificate and DBS submissions.
type OnboardingService struct {
	accounts     repository.AccountRepository
	profiles     repository.ProfileRepository
	certificates repository.CertificateRepository
	dbs          repository.DBSRepository
	challenges   repository.ChallengeStore
	dispatcher   events.Dispatcher
	metrics      *observability.Metrics
	hasher       *auth.PasswordHasher
	tokenMgr     *auth.TokenManager
	challengeTTL time.Duration
}

// OnboardingDependencies encapsulates collaborator requirements.
type OnboardingDependencies struct {
	AccountRepo     repository.AccountRepository
	ProfileRepo     repository.ProfileRepository
	CertificateRepo repository.CertificateRepository
	DBSRepo         repository.DBSRepository
	ChallengeStore  repository.ChallengeStore
}

// NewOnboardingService builds the service.
func NewOnboardingService(cfg config.Config, deps OnboardingDependencies, dispatcher events.Dispatcher, metrics *observability.Metrics) *OnboardingService {
	return &OnboardingService{
		accounts:     deps.AccountRepo,
		profiles:     deps.ProfileRepo,
		certificates: deps.CertificateRepo,
		dbs:          deps.DBSRepo,
		challenges:   deps.ChallengeStore,
		dispatcher:   dispatcher,
		metrics:      metrics,
		hasher:       auth.NewPasswordHasher(cfg.Auth.BcryptCost, cfg.Auth.MinPasswordLength),
		tokenMgr:     auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		challengeTTL: cfg.Auth.ChallengeTTL(),
	}
}

// ProfileInput carries the profile-completion submission.
type ProfileInput struct {
	FirstName     string
	LastName      string
	Mobile        *string
	DateOfBirth   time.Time
	Roles         []string
	RightToWork   string
	CVURL         *string
	Password      string
	AgreedToTerms bool
	Experience    *string
}

// DBSInput carries a background-check submission. RegisteredOnUpdateService
// is deliberately untyped: submissions arrive as booleans, numbers or
// strings and are coerced, never rejected.
type DBSInput struct {
	CertificateNumber         string
	SurnameOnCertificate      string
	DOBOnCertificate          time.Time
	CertificatePrintDate      time.Time
	RegisteredOnUpdateService any
}

// Register creates a staff account and issues its first email verification
// challenge.
func (s *OnboardingService) Register(ctx context.Context, email string) (*domain.StaffAccount, *domain.EmailVerificationChallenge, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, nil, apperrors.NewValidationError("valid email required", nil)
	}

	if existing, err := s.accounts.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, nil, apperrors.NewConflict("email already registered", map[string]any{"email": email})
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, apperrors.MapError(err)
	}

	account := &domain.StaffAccount{
		Email: email,
		State: domain.StateRegistered,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	s.metrics.RecordTransition(string(domain.StateRegistered))

	challenge, err := s.issueChallenge(ctx, account)
	if err != nil {
		return nil, nil, err
	}

	s.publish(ctx, events.EventStaffRegistered, account.ID, events.StaffRegisteredPayload{
		Email:            account.Email,
		VerificationCode: challenge.Code,
		CodeExpiresAt:    challenge.ExpiresAt,
	})
	return account, challenge, nil
}

// ResendCode regenerates the verification code, invalidating the prior one.
// The account state is unchanged.
func (s *OnboardingService) ResendCode(ctx context.Context, email string) (*domain.EmailVerificationChallenge, error) {
	account, err := s.getAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account.State != domain.StateRegistered {
		return nil, apperrors.NewIllegalStateTransition(string(account.State), "resend verification code")
	}

	challenge, err := s.issueChallenge(ctx, account)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventStaffRegistered, account.ID, events.StaffRegisteredPayload{
		Email:            account.Email,
		VerificationCode: challenge.Code,
		CodeExpiresAt:    challenge.ExpiresAt,
	})
	return challenge, nil
}

// VerifyEmail consumes a challenge code and advances the account. The code
// is single-use: a replay fails even inside the expiry window. A short-lived
// token is issued so the caller can continue onboarding before a password
// exists.
func (s *OnboardingService) VerifyEmail(ctx context.Context, email, code string) (*domain.StaffAccount, string, time.Time, error) {
	account, err := s.getAccountByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if account.State != domain.StateRegistered {
		return nil, "", time.Time{}, apperrors.NewIllegalStateTransition(string(account.State), "verify email")
	}

	ok, err := s.challenges.Consume(ctx, account.ID, code)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if !ok {
		return nil, "", time.Time{}, apperrors.NewInvalidOrExpiredCode()
	}

	account.State = domain.StateEmailVerified
	if err := s.writeState(ctx, account); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(account.ID, account.AccountType)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventEmailVerified, account.ID, nil)
	return account, token, exp, nil
}

// SelectAccountType records the one-time branch selection. Only the staff
// branch has completion rules here; the other branches are accepted and left
// to their own flows.
func (s *OnboardingService) SelectAccountType(ctx context.Context, userID, rawType string) (*domain.StaffAccount, error) {
	accountType, ok := domain.ParseAccountType(rawType)
	if !ok {
		return nil, apperrors.NewInvalidEnumValue("account_type", rawType)
	}

	account, err := s.getAccountByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account.State != domain.StateEmailVerified {
		return nil, apperrors.NewIllegalStateTransition(string(account.State), "select account type")
	}

	account.AccountType = &accountType
	account.State = domain.StateAccountTypeSelected
	if err := s.writeState(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// CompleteProfile validates the mandatory profile fields and performs the
// final, irreversible transition. The password is stored only as a bcrypt
// hash. Concurrent submissions are serialized by the account version: the
// loser receives a conflict.
func (s *OnboardingService) CompleteProfile(ctx context.Context, userID string, input ProfileInput) (*domain.StaffProfile, error) {
	account, err := s.getAccountByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account.State != domain.StateAccountTypeSelected {
		return nil, apperrors.NewIllegalStateTransition(string(account.State), "complete profile")
	}
	if account.AccountType == nil || *account.AccountType != domain.AccountTypeStaff {
		return nil, apperrors.NewValidationError("profile completion rules are defined for staff accounts only", nil)
	}

	profile, err := s.buildProfile(userID, input)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = &hash
	account.State = domain.StateProfileCompleted

	// The version CAS is the serialization point for racing submissions.
	if err := s.writeState(ctx, account); err != nil {
		return nil, err
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventProfileCompleted, userID, events.ProfileCompletedPayload{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Roles:     profile.Roles,
	})
	return profile, nil
}

// SubmitCertificates upserts training certificates in bulk. The map keys are
// certificate types, values the optional expiry date. Idempotent: repeating
// a submission leaves a single record per type.
func (s *OnboardingService) SubmitCertificates(ctx context.Context, userID string, certs map[string]*time.Time) ([]domain.StaffCertificate, error) {
	account, err := s.getAccountByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !account.State.AtLeast(domain.StateProfileCompleted) {
		return nil, apperrors.NewIllegalStateTransition(string(account.State), "submit certificates")
	}

	parsed := make([]domain.StaffCertificate, 0, len(certs))
	for rawType, expiry := range certs {
		certType, ok := domain.ParseCertificateType(rawType)
		if !ok {
			return nil, apperrors.NewInvalidEnumValue("certificate_type", rawType)
		}
		parsed = append(parsed, domain.StaffCertificate{
			UserID:          userID,
			CertificateType: certType,
			ExpiryDate:      expiry,
		})
	}

	types := make([]domain.CertificateType, 0, len(parsed))
	for i := range parsed {
		if err := s.certificates.Upsert(ctx, &parsed[i]); err != nil {
			return nil, apperrors.MapError(err)
		}
		types = append(types, parsed[i].CertificateType)
	}

	s.publish(ctx, events.EventCertificatesSubmitted, userID, events.CertificatesSubmittedPayload{CertificateTypes: types})
	return parsed, nil
}

// SubmitDBS upserts the background-check record. The update-service flag is
// coerced from whatever representation was submitted; unrecognized values
// become false rather than an error.
func (s *OnboardingService) SubmitDBS(ctx context.Context, userID string, input DBSInput) (*domain.DBSInfo, error) {
	account, err := s.getAccountByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !account.State.AtLeast(domain.StateProfileCompleted) {
		return nil, apperrors.NewIllegalStateTransition(string(account.State), "submit DBS record")
	}
	if input.CertificateNumber == "" || input.SurnameOnCertificate == "" {
		return nil, apperrors.NewValidationError("certificate number and surname required", nil)
	}

	info := &domain.DBSInfo{
		UserID:                    userID,
		CertificateNumber:         input.CertificateNumber,
		SurnameOnCertificate:      input.SurnameOnCertificate,
		DOBOnCertificate:          input.DOBOnCertificate,
		CertificatePrintDate:      input.CertificatePrintDate,
		RegisteredOnUpdateService: domain.CoerceUpdateServiceFlag(input.RegisteredOnUpdateService),
	}
	if err := s.dbs.Upsert(ctx, info); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventDBSSubmitted, userID, nil)
	return info, nil
}

// Login authenticates a completed staff account and issues a token.
func (s *OnboardingService) Login(ctx context.Context, email, password string) (*domain.StaffAccount, string, time.Time, error) {
	account, err := s.getAccountByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if account.PasswordHash == nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := s.hasher.Compare(*account.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(account.ID, account.AccountType)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return account, token, exp, nil
}

// GetProfile returns the completed profile for the account.
func (s *OnboardingService) GetProfile(ctx context.Context, userID string) (*domain.StaffProfile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("profile", map[string]any{"user_id": userID})
		}
		return nil, apperrors.MapError(err)
	}
	return profile, nil
}

// GetCompliance returns the certificates and DBS record for the account.
func (s *OnboardingService) GetCompliance(ctx context.Context, userID string) ([]domain.StaffCertificate, *domain.DBSInfo, error) {
	certs, err := s.certificates.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	info, err := s.dbs.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, apperrors.MapError(err)
	}
	return certs, info, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *OnboardingService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *OnboardingService) issueChallenge(ctx context.Context, account *domain.StaffAccount) (*domain.EmailVerificationChallenge, error) {
	code, err := generateVerificationCode()
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	challenge := &domain.EmailVerificationChallenge{
		UserID:    account.ID,
		Email:     account.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(s.challengeTTL),
	}
	if err := s.challenges.Put(ctx, challenge); err != nil {
		return nil, apperrors.MapError(err)
	}
	return challenge, nil
}

func (s *OnboardingService) buildProfile(userID string, input ProfileInput) (*domain.StaffProfile, error) {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, apperrors.NewValidationError("first and last name required", nil)
	}
	if input.DateOfBirth.IsZero() {
		return nil, apperrors.NewValidationError("date of birth required", nil)
	}
	if !input.AgreedToTerms {
		return nil, apperrors.NewValidationError("terms must be agreed", nil)
	}

	rightToWork, ok := domain.ParseRightToWorkStatus(input.RightToWork)
	if !ok {
		return nil, apperrors.NewInvalidEnumValue("right_to_work", input.RightToWork)
	}

	roles := make([]domain.RoleTag, 0, len(input.Roles))
	for _, raw := range input.Roles {
		role, ok := domain.ParseRoleTag(raw)
		if !ok {
			return nil, apperrors.NewInvalidEnumValue("role", raw)
		}
		roles = append(roles, role)
	}

	return &domain.StaffProfile{
		UserID:        userID,
		FirstName:     strings.TrimSpace(input.FirstName),
		LastName:      strings.TrimSpace(input.LastName),
		Mobile:        input.Mobile,
		DateOfBirth:   input.DateOfBirth,
		Roles:         roles,
		RightToWork:   rightToWork,
		CVURL:         input.CVURL,
		AgreedToTerms: input.AgreedToTerms,
		Experience:    input.Experience,
	}, nil
}

func (s *OnboardingService) writeState(ctx context.Context, account *domain.StaffAccount) error {
	if err := s.accounts.UpdateState(ctx, account); err != nil {
		if errors.Is(err, repository.ErrStaleVersion) {
			return apperrors.NewConflict("concurrent onboarding update", map[string]any{"user_id": account.ID})
		}
		return apperrors.MapError(err)
	}
	s.metrics.RecordTransition(string(account.State))
	return nil
}

func (s *OnboardingService) getAccountByEmail(ctx context.Context, email string) (*domain.StaffAccount, error) {
	account, err := s.accounts.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("account", map[string]any{"email": email})
		}
		return nil, apperrors.MapError(err)
	}
	return account, nil
}

func (s *OnboardingService) getAccountByID(ctx context.Context, userID string) (*domain.StaffAccount, error) {
	account, err := s.accounts.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("account", map[string]any{"user_id": userID})
		}
		return nil, apperrors.MapError(err)
	}
	return account, nil
}

func (s *OnboardingService) publish(ctx context.Context, eventType events.EventType, userID string, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
