package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/staffing-service/internal/domain"
	"github.com/spec-kit/staffing-service/internal/repository"
	apperrors "github.com/spec-kit/staffing-service/pkg/util/errorutil"
)

// ContextResolver derives the provider-scoped actor context for an
// authenticated user. Each resolution re-reads authoritative state; results
// are never cached, so promotions and deactivations take effect immediately.
type ContextResolver struct {
	providers repository.ProviderRepository
}

// NewContextResolver constructs the resolver.
func NewContextResolver(providers repository.ProviderRepository) *ContextResolver {
	return &ContextResolver{providers: providers}
}

// Resolve maps a user id to its actor context. Provider ownership takes
// precedence over employment; a user with neither linkage gets an
// unauthorized-context failure, never a default provider.
func (r *ContextResolver) Resolve(ctx context.Context, userID string) (*domain.ActorContext, error) {
	provider, err := r.providers.FindOwnerByUserID(ctx, userID)
	if err == nil {
		return &domain.ActorContext{ServiceProviderID: provider.ID}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	employee, err := r.providers.FindEmployeeByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorizedContext("no service-provider profile associated with this actor")
		}
		return nil, apperrors.MapError(err)
	}
	if employee.ProviderID == nil {
		return nil, apperrors.NewUnauthorizedContext("no service-provider profile associated with this actor")
	}

	employeeID := employee.ID
	return &domain.ActorContext{
		ServiceProviderID: *employee.ProviderID,
		EmployeeID:        &employeeID,
	}, nil
}
