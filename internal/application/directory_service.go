package application

import (
	"context"
	"strings"

	"minimart-backend/internal/ports"

	"github.com/rs/zerolog"
)

// DirectoryService translates an inbound HTTP host into a tenant id.
type DirectoryService struct {
	mappingRepo    ports.DomainMappingRepository
	platformSuffix string
	logger         zerolog.Logger
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(
	mappingRepo ports.DomainMappingRepository,
	platformSuffix string,
	logger zerolog.Logger,
) *DirectoryService {
	return &DirectoryService{
		mappingRepo:    mappingRepo,
		platformSuffix: platformSuffix,
		logger:         logger,
	}
}

// Resolve maps a host to a tenant id. Hosts under the platform suffix
// resolve to the label before the first separator without any store access;
// anything else goes through the custom-domain lookup table. The host is
// taken as-is: no case or trailing-dot normalization.
func (s *DirectoryService) Resolve(ctx context.Context, host string) (string, error) {
	if strings.HasSuffix(host, s.platformSuffix) {
		label, _, found := strings.Cut(host, ".")
		if found && label != "" {
			return label, nil
		}
	}

	mapping, err := s.mappingRepo.GetByDomain(ctx, host)
	if err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("host", host).
		Str("storeId", mapping.StoreID).
		Msg("Resolved custom domain")

	return mapping.StoreID, nil
}
