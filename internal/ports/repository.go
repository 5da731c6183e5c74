package ports

import (
	"context"

	"minimart-backend/internal/domain"
)

// TenantRepository defines read access to tenant records. Mutation authority
// lives with an external management process.
type TenantRepository interface {
	// GetTenant retrieves a tenant by id. Returns domain.ErrNotFound when
	// no record exists.
	GetTenant(ctx context.Context, id string) (*domain.Tenant, error)
}

// DomainMappingRepository defines the custom-domain lookup table.
type DomainMappingRepository interface {
	// GetByDomain retrieves the mapping for an exact domain match. Returns
	// domain.ErrNotFound when the domain is unregistered.
	GetByDomain(ctx context.Context, name string) (*domain.DomainMapping, error)
}
