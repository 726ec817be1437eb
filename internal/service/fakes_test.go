package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/staffing-service/internal/domain"
	"github.com/spec-kit/staffing-service/internal/repository"
)

// In-memory collaborator fakes used across the service tests.

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.StaffAccount
	byEmail  map[string]string
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		accounts: make(map[string]*domain.StaffAccount),
		byEmail:  make(map[string]string),
	}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *domain.StaffAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account.ID = uuid.NewString()
	account.Version = 1
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	stored := *account
	r.accounts[account.ID] = &stored
	r.byEmail[account.Email] = account.ID
	return nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id string) (*domain.StaffAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*domain.StaffAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *r.accounts[id]
	return &copied, nil
}

func (r *fakeAccountRepo) UpdateState(_ context.Context, account *domain.StaffAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.accounts[account.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	if stored.Version != account.Version {
		return repository.ErrStaleVersion
	}
	updated := *account
	updated.Version = account.Version + 1
	updated.UpdatedAt = time.Now()
	r.accounts[account.ID] = &updated
	account.Version = updated.Version
	return nil
}

type fakeChallengeStore struct {
	mu         sync.Mutex
	challenges map[string]domain.EmailVerificationChallenge
}

func newFakeChallengeStore() *fakeChallengeStore {
	return &fakeChallengeStore{challenges: make(map[string]domain.EmailVerificationChallenge)}
}

func (s *fakeChallengeStore) Put(_ context.Context, challenge *domain.EmailVerificationChallenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[challenge.UserID] = *challenge
	return nil
}

func (s *fakeChallengeStore) Consume(_ context.Context, userID, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	challenge, ok := s.challenges[userID]
	if !ok || challenge.Code != code || time.Now().After(challenge.ExpiresAt) {
		return false, nil
	}
	delete(s.challenges, userID)
	return true, nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*domain.StaffProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*domain.StaffProfile)}
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *domain.StaffProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.profiles[profile.UserID]; exists {
		return errors.New("profile already exists")
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	stored := *profile
	r.profiles[profile.UserID] = &stored
	return nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*domain.StaffProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.profiles[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

type fakeCertificateRepo struct {
	mu    sync.Mutex
	certs map[string]domain.StaffCertificate
}

func newFakeCertificateRepo() *fakeCertificateRepo {
	return &fakeCertificateRepo{certs: make(map[string]domain.StaffCertificate)}
}

func (r *fakeCertificateRepo) Upsert(_ context.Context, cert *domain.StaffCertificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := cert.UserID + "|" + string(cert.CertificateType)
	if existing, ok := r.certs[key]; ok {
		cert.CreatedAt = existing.CreatedAt
	} else {
		cert.CreatedAt = time.Now()
	}
	cert.UpdatedAt = time.Now()
	r.certs[key] = *cert
	return nil
}

func (r *fakeCertificateRepo) ListByUser(_ context.Context, userID string) ([]domain.StaffCertificate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.StaffCertificate
	for _, cert := range r.certs {
		if cert.UserID == userID {
			result = append(result, cert)
		}
	}
	return result, nil
}

type fakeDBSRepo struct {
	mu      sync.Mutex
	records map[string]domain.DBSInfo
}

func newFakeDBSRepo() *fakeDBSRepo {
	return &fakeDBSRepo{records: make(map[string]domain.DBSInfo)}
}

func (r *fakeDBSRepo) Upsert(_ context.Context, info *domain.DBSInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[info.UserID] = *info
	return nil
}

func (r *fakeDBSRepo) GetByUserID(_ context.Context, userID string) (*domain.DBSInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, ok := r.records[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &info, nil
}

type fakeProviderRepo struct {
	owners    map[string]*domain.ServiceProvider
	employees map[string]*domain.Employee
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{
		owners:    make(map[string]*domain.ServiceProvider),
		employees: make(map[string]*domain.Employee),
	}
}

func (r *fakeProviderRepo) FindOwnerByUserID(_ context.Context, userID string) (*domain.ServiceProvider, error) {
	provider, ok := r.owners[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return provider, nil
}

func (r *fakeProviderRepo) FindEmployeeByUserID(_ context.Context, userID string) (*domain.Employee, error) {
	employee, ok := r.employees[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return employee, nil
}

func (r *fakeProviderRepo) GetByID(_ context.Context, id string) (*domain.ServiceProvider, error) {
	for _, provider := range r.owners {
		if provider.ID == id {
			return provider, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeShiftRepo struct {
	shifts map[string]*domain.Shift
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]*domain.Shift)}
}

func (r *fakeShiftRepo) GetByID(_ context.Context, id string) (*domain.Shift, error) {
	shift, ok := r.shifts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return shift, nil
}

type fakeCheckInRepo struct {
	mu     sync.Mutex
	latest map[string]domain.GeofenceCheckIn
}

func newFakeCheckInRepo() *fakeCheckInRepo {
	return &fakeCheckInRepo{latest: make(map[string]domain.GeofenceCheckIn)}
}

func (r *fakeCheckInRepo) UpsertLatest(_ context.Context, checkin *domain.GeofenceCheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := checkin.ShiftID + "|" + checkin.StaffUserID
	if existing, ok := r.latest[key]; ok {
		checkin.Version = existing.Version + 1
	} else {
		checkin.Version = 1
	}
	r.latest[key] = *checkin
	return nil
}

func (r *fakeCheckInRepo) GetLatest(_ context.Context, shiftID, staffUserID string) (*domain.GeofenceCheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	checkin, ok := r.latest[shiftID+"|"+staffUserID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &checkin, nil
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []domain.CheckInAudit
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{}
}

func (r *fakeAuditRepo) Create(_ context.Context, audit *domain.CheckInAudit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	audit.ID = uuid.NewString()
	audit.CreatedAt = time.Now()
	r.entries = append(r.entries, *audit)
	return nil
}

func (r *fakeAuditRepo) ListByShift(_ context.Context, shiftID string) ([]domain.CheckInAudit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.CheckInAudit
	for _, entry := range r.entries {
		if entry.ShiftID == shiftID {
			result = append(result, entry)
		}
	}
	return result, nil
}
