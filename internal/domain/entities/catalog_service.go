package entities

// CatalogService is a general or fixed service offered with a preset price.
type CatalogService struct {
	ServiceID    string       `json:"service_id"`
	ServiceType  ServiceType  `json:"service_type"`
	OrderType    OrderType    `json:"order_type"`
	Scope        ServiceScope `json:"service_scope"`
	Category     string       `json:"category"`
	ServiceName  string       `json:"service_name"`
	ServicePrice *float64     `json:"service_price,omitempty"`
	SellingPrice *float64     `json:"selling_price,omitempty"`
	Status       string       `json:"status"`
}

// CatalogLookup identifies a catalog entry by its business attributes.
type CatalogLookup struct {
	ServiceType ServiceType
	OrderType   OrderType
	Scope       ServiceScope
	ServiceName string
}

// Price prefers the selling price over the base service price.
func (s CatalogService) Price() *float64 {
	if s.SellingPrice != nil {
		return s.SellingPrice
	}
	return s.ServicePrice
}
