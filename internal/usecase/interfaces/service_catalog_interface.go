package interfaces

import (
	"context"

	"service_inventory/internal/domain/entities"
)

// IServiceCatalogRepository resolves general and fixed services. FindService
// returns a zero value when no available service matches.
type IServiceCatalogRepository interface {
	FindService(ctx context.Context, lookup entities.CatalogLookup) (entities.CatalogService, error)
}
