package repository

import (
	"context"
	"errors"
	"strings"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"

	"gorm.io/gorm"
)

const catalogStatusAvailable = "Available"

// catalogServiceModel maps the catalog_services table owned by the catalog
// service. This repository only reads it.
type catalogServiceModel struct {
	ServiceID    string   `gorm:"column:service_id;primaryKey"`
	ServiceType  string   `gorm:"column:service_type"`
	OrderType    string   `gorm:"column:order_type"`
	ServiceScope string   `gorm:"column:service_scope"`
	Category     string   `gorm:"column:category"`
	ServiceName  string   `gorm:"column:service_name"`
	ServicePrice *float64 `gorm:"column:service_price"`
	SellingPrice *float64 `gorm:"column:selling_price"`
	Status       string   `gorm:"column:status"`
}

func (catalogServiceModel) TableName() string { return "catalog_services" }

// ServiceCatalogGormRepository resolves general and fixed services from the
// catalog database.
type ServiceCatalogGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IServiceCatalogRepository = (*ServiceCatalogGormRepository)(nil)

func NewServiceCatalogGormRepository(db *gorm.DB) *ServiceCatalogGormRepository {
	return &ServiceCatalogGormRepository{db: db}
}

func (r *ServiceCatalogGormRepository) FindService(ctx context.Context, lookup entities.CatalogLookup) (entities.CatalogService, error) {
	var m catalogServiceModel
	err := r.db.WithContext(ctx).
		Where("LOWER(service_type) = ?", strings.ToLower(string(lookup.ServiceType))).
		Where("LOWER(order_type) = ?", strings.ToLower(string(lookup.OrderType))).
		Where("LOWER(service_scope) = ?", strings.ToLower(string(lookup.Scope))).
		Where("LOWER(service_name) = ?", strings.ToLower(strings.TrimSpace(lookup.ServiceName))).
		Where("status = ?", catalogStatusAvailable).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.CatalogService{}, nil
		}
		return entities.CatalogService{}, err
	}

	return entities.CatalogService{
		ServiceID:    m.ServiceID,
		ServiceType:  entities.ServiceType(m.ServiceType),
		OrderType:    entities.OrderType(m.OrderType),
		Scope:        entities.ServiceScope(m.ServiceScope),
		Category:     m.Category,
		ServiceName:  m.ServiceName,
		ServicePrice: m.ServicePrice,
		SellingPrice: m.SellingPrice,
		Status:       m.Status,
	}, nil
}
