package interfaces

import (
	"context"

	"service_inventory/internal/domain/entities"
)

// IBillingPaymentRepository persists payments of approved BOMs.
type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.BillingPayment, error)
}
