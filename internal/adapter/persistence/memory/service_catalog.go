package memory

import (
	"context"
	"strings"
	"sync"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"
)

// ServiceCatalog is a fixed list of catalog services.
type ServiceCatalog struct {
	mu       sync.RWMutex
	services []entities.CatalogService
}

var _ interfaces.IServiceCatalogRepository = (*ServiceCatalog)(nil)

func NewServiceCatalog(services ...entities.CatalogService) *ServiceCatalog {
	return &ServiceCatalog{services: services}
}

func (c *ServiceCatalog) Add(s entities.CatalogService) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services = append(c.services, s)
}

// FindService matches type, order type, scope and name case-insensitively and
// skips inactive services.
func (c *ServiceCatalog) FindService(_ context.Context, q entities.CatalogLookup) (entities.CatalogService, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.services {
		if s.Status != "" && !strings.EqualFold(s.Status, "Available") {
			continue
		}
		if strings.EqualFold(string(s.ServiceType), string(q.ServiceType)) &&
			strings.EqualFold(string(s.OrderType), string(q.OrderType)) &&
			strings.EqualFold(string(s.Scope), string(q.Scope)) &&
			strings.EqualFold(s.ServiceName, q.ServiceName) {
			return s, nil
		}
	}
	return entities.CatalogService{}, nil
}
