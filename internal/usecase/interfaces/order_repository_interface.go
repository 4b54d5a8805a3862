package interfaces

import (
	"context"

	"service_inventory/internal/domain/entities"
)

// IOrderRepository persists the order aggregate as a whole document.
//
// GetByID returns a zero Order when the id does not resolve. Update writes o
// only if the stored version still equals expectedVersion, otherwise it
// returns ErrVersionConflict.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
	Update(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error)
	Delete(ctx context.Context, orderID string) error
}

// IArchivedOrderRepository stores soft-deleted orders.
type IArchivedOrderRepository interface {
	Create(ctx context.Context, o entities.ArchivedOrder) (entities.ArchivedOrder, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.ArchivedOrder, error)
}

// IOrderIDSequence issues the per-year order sequence numbers.
type IOrderIDSequence interface {
	Next(ctx context.Context, year int) (int64, error)
}

// IOrderLocker serializes writers of the same order. The returned func
// releases the lock.
type IOrderLocker interface {
	Lock(ctx context.Context, orderID string) (func(), error)
}
