package interfaces

import "service_inventory/internal/domain/entities"

// IBOMRenderer renders an order's BOM as a downloadable document and returns
// its bytes and file name.
type IBOMRenderer interface {
	RenderBOM(o entities.Order) ([]byte, string, error)
}
