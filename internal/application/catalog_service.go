package application

import (
	"context"

	"minimart-backend/internal/domain"
	"minimart-backend/internal/infrastructure/metrics"
	"minimart-backend/internal/ports"

	"github.com/rs/zerolog"
)

// CatalogService reads tenant profiles and items.
type CatalogService struct {
	tenantRepo ports.TenantRepository
	logger     zerolog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(tenantRepo ports.TenantRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// GetTenant retrieves a tenant by id.
func (s *CatalogService) GetTenant(ctx context.Context, id string) (*domain.Tenant, error) {
	return s.tenantRepo.GetTenant(ctx, id)
}

// FindItem locates an item by id, scanning products before services. The
// ordering is an observable tie-break: an id present in both sequences
// resolves to the product. That co-occurrence violates catalog integrity,
// so it is counted and logged rather than silently absorbed.
func (s *CatalogService) FindItem(tenant *domain.Tenant, itemID string) (*domain.Item, error) {
	for i := range tenant.Products {
		if tenant.Products[i].ID == itemID {
			s.checkDuplicate(tenant, itemID)
			return &tenant.Products[i], nil
		}
	}
	for i := range tenant.Services {
		if tenant.Services[i].ID == itemID {
			return &tenant.Services[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *CatalogService) checkDuplicate(tenant *domain.Tenant, itemID string) {
	for i := range tenant.Services {
		if tenant.Services[i].ID == itemID {
			metrics.DuplicateItemIDs.WithLabelValues(tenant.ID).Inc()
			s.logger.Warn().
				Str("storeId", tenant.ID).
				Str("itemId", itemID).
				Msg("Item id present in both products and services")
			return
		}
	}
}
