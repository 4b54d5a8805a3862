package memory

import (
	"context"
	"sort"
	"sync"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"
)

type BillingPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]entities.BillingPayment
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentRepository)(nil)

func NewBillingPaymentRepository() *BillingPaymentRepository {
	return &BillingPaymentRepository{payments: make(map[string]entities.BillingPayment)}
}

func (r *BillingPaymentRepository) Create(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[p.ID]; ok {
		return entities.BillingPayment{}, interfaces.ErrAlreadyExists
	}
	r.payments[p.ID] = p
	return p, nil
}

func (r *BillingPaymentRepository) GetByID(_ context.Context, id string) (entities.BillingPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.payments[id], nil
}

// ListByOrderID returns the payments of an order, newest first.
func (r *BillingPaymentRepository) ListByOrderID(_ context.Context, orderID string) ([]entities.BillingPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.BillingPayment{}
	for _, p := range r.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}
