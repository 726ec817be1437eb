package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staffing-service/internal/domain"
	apperrors "github.com/spec-kit/staffing-service/pkg/util/errorutil"
)

func TestContextResolver(t *testing.T) {
	ctx := context.Background()
	providerID := "provider-1"

	providers := newFakeProviderRepo()
	providers.owners["owner-user"] = &domain.ServiceProvider{ID: providerID, Name: "Elm Care", OwnerUserID: "owner-user"}
	providers.employees["employee-user"] = &domain.Employee{ID: "emp-1", UserID: "employee-user", ProviderID: &providerID, Active: true}
	providers.employees["unlinked-user"] = &domain.Employee{ID: "emp-2", UserID: "unlinked-user", Active: true}

	resolver := NewContextResolver(providers)

	t.Run("owner resolves to owned provider", func(t *testing.T) {
		actor, err := resolver.Resolve(ctx, "owner-user")
		require.NoError(t, err)
		assert.Equal(t, providerID, actor.ServiceProviderID)
		assert.Nil(t, actor.EmployeeID)
		assert.True(t, actor.IsOwner())
	})

	t.Run("employee resolves to employing provider", func(t *testing.T) {
		actor, err := resolver.Resolve(ctx, "employee-user")
		require.NoError(t, err)
		assert.Equal(t, providerID, actor.ServiceProviderID)
		require.NotNil(t, actor.EmployeeID)
		assert.Equal(t, "emp-1", *actor.EmployeeID)
		assert.False(t, actor.IsOwner())
	})

	t.Run("employee without provider link is rejected", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "unlinked-user")
		assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED_CONTEXT"))
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "stranger")
		assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED_CONTEXT"))
	})
}

func TestContextResolverOwnershipPrecedence(t *testing.T) {
	ctx := context.Background()
	ownedID := "provider-owned"
	employedID := "provider-employed"

	providers := newFakeProviderRepo()
	providers.owners["dual-user"] = &domain.ServiceProvider{ID: ownedID, Name: "Oak Care", OwnerUserID: "dual-user"}
	providers.employees["dual-user"] = &domain.Employee{ID: "emp-9", UserID: "dual-user", ProviderID: &employedID, Active: true}

	actor, err := NewContextResolver(providers).Resolve(ctx, "dual-user")
	require.NoError(t, err)
	assert.Equal(t, ownedID, actor.ServiceProviderID)
	assert.True(t, actor.IsOwner())
}
