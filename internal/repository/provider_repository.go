package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// ProviderRepository resolves provider ownership and employment links.
type ProviderRepository interface {
	FindOwnerByUserID(ctx context.Context, userID string) (*domain.ServiceProvider, error)
	FindEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.ServiceProvider, error)
}

type providerRepository struct {
	pool *pgxpool.Pool
}

// NewProviderRepository instantiates the repository.
func NewProviderRepository(pool *pgxpool.Pool) ProviderRepository {
	return &providerRepository{pool: pool}
}

func (r *providerRepository) FindOwnerByUserID(ctx context.Context, userID string) (*domain.ServiceProvider, error) {
	const query = `
        SELECT id, name, owner_user_id, created_at, updated_at
        FROM service_providers WHERE owner_user_id=$1`

	var provider domain.ServiceProvider
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&provider.ID,
		&provider.Name,
		&provider.OwnerUserID,
		&provider.CreatedAt,
		&provider.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *providerRepository) FindEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	const query = `
        SELECT id, user_id, provider_id, active_flag, created_at, updated_at
        FROM employees WHERE user_id=$1`

	var employee domain.Employee
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&employee.ID,
		&employee.UserID,
		&employee.ProviderID,
		&employee.Active,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *providerRepository) GetByID(ctx context.Context, id string) (*domain.ServiceProvider, error) {
	const query = `
        SELECT id, name, owner_user_id, created_at, updated_at
        FROM service_providers WHERE id=$1`

	var provider domain.ServiceProvider
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&provider.ID,
		&provider.Name,
		&provider.OwnerUserID,
		&provider.CreatedAt,
		&provider.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &provider, nil
}
