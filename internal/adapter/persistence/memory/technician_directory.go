package memory

import (
	"context"
	"sync"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"
)

// TechnicianDirectory is an in-process stand-in for the technician service.
type TechnicianDirectory struct {
	mu          sync.RWMutex
	technicians map[string]entities.Technician
	orders      map[string]string
}

var _ interfaces.ITechnicianDirectory = (*TechnicianDirectory)(nil)

func NewTechnicianDirectory(techs ...entities.Technician) *TechnicianDirectory {
	d := &TechnicianDirectory{
		technicians: make(map[string]entities.Technician, len(techs)),
		orders:      make(map[string]string),
	}
	for _, t := range techs {
		d.technicians[t.ID] = t
	}
	return d
}

func (d *TechnicianDirectory) GetTechnician(_ context.Context, id string) (entities.Technician, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	t, ok := d.technicians[id]
	if !ok {
		return entities.Technician{}, interfaces.ErrTechnicianNotFound
	}
	return t, nil
}

func (d *TechnicianDirectory) SetAvailability(_ context.Context, id string, status entities.AvailabilityStatus, orderID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, ok := d.technicians[id]
	if !ok {
		return interfaces.ErrTechnicianNotFound
	}
	t.AvailabilityStatus = status
	d.technicians[id] = t
	if status == entities.AvailabilityBusy {
		d.orders[id] = orderID
	} else {
		delete(d.orders, id)
	}
	return nil
}

// CurrentOrder returns the order a busy technician is attached to.
func (d *TechnicianDirectory) CurrentOrder(id string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.orders[id]
}
