package interfaces

import (
	"context"

	"service_inventory/internal/domain/entities"
)

// ITechnicianDirectory is the external technician service.
//
// GetTechnician returns ErrTechnicianNotFound for unknown ids.
type ITechnicianDirectory interface {
	GetTechnician(ctx context.Context, id string) (entities.Technician, error)
	SetAvailability(ctx context.Context, id string, status entities.AvailabilityStatus, orderID string) error
}
