package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// AccountRepository handles persistence for staff onboarding accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.StaffAccount) error
	GetByID(ctx context.Context, id string) (*domain.StaffAccount, error)
	GetByEmail(ctx context.Context, email string) (*domain.StaffAccount, error)
	// UpdateState writes state, account type and password hash guarded by the
	// version the caller read; returns ErrStaleVersion if a concurrent writer
	// won the race.
	UpdateState(ctx context.Context, account *domain.StaffAccount) error
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository instantiates the repository.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.StaffAccount) error {
	const query = `
        INSERT INTO staff_accounts (email, state, version)
        VALUES ($1,$2,1)
        RETURNING id, version, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		account.Email,
		account.State,
	).Scan(&account.ID, &account.Version, &account.CreatedAt, &account.UpdatedAt)
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.StaffAccount, error) {
	const query = `
        SELECT id, email, password_hash, account_type, state, version, created_at, updated_at
        FROM staff_accounts WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffAccount, error) {
	const query = `
        SELECT id, email, password_hash, account_type, state, version, created_at, updated_at
        FROM staff_accounts WHERE email=$1`
	return r.scanOne(ctx, query, email)
}

func (r *accountRepository) UpdateState(ctx context.Context, account *domain.StaffAccount) error {
	const query = `
        UPDATE staff_accounts
        SET state=$1, account_type=$2, password_hash=$3, version=version+1, updated_at=NOW()
        WHERE id=$4 AND version=$5`

	cmd, err := r.pool.Exec(ctx, query,
		account.State,
		account.AccountType,
		account.PasswordHash,
		account.ID,
		account.Version,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrStaleVersion
	}
	account.Version++
	return nil
}

func (r *accountRepository) scanOne(ctx context.Context, query string, arg any) (*domain.StaffAccount, error) {
	var account domain.StaffAccount
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.AccountType,
		&account.State,
		&account.Version,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}
