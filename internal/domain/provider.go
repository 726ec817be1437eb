package domain

import "time"

// ServiceProvider is a tenant organization owning staff and shifts.
type ServiceProvider struct {
	ID          string
	Name        string
	OwnerUserID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Employee links a user to a service provider in a non-owner capacity.
// ProviderID is nullable: an employee record can exist before the provider
// link is established, in which case it yields no actor context.
type Employee struct {
	ID         string
	UserID     string
	ProviderID *string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ActorContext scopes an authenticated user to a service provider.
// EmployeeID is set only when the actor is an employee rather than the
// provider owner. Computed per request, never persisted.
type ActorContext struct {
	ServiceProviderID string
	EmployeeID        *string
}

// IsOwner reports whether the actor is the provider owner.
func (a ActorContext) IsOwner() bool {
	return a.EmployeeID == nil
}
