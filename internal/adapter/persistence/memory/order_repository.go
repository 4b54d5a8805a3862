package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"
)

// OrderRepository keeps orders in process memory. Values are deep-copied on
// the way in and out so callers never share a process tree.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]entities.Order
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]entities.Order)}
}

func (r *OrderRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.OrderID]; ok {
		return entities.Order{}, interfaces.ErrAlreadyExists
	}
	c, err := cloneOrder(o)
	if err != nil {
		return entities.Order{}, err
	}
	r.orders[o.OrderID] = c
	return o, nil
}

func (r *OrderRepository) GetByID(_ context.Context, orderID string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[orderID]
	if !ok {
		return entities.Order{}, nil
	}
	return cloneOrder(o)
}

func (r *OrderRepository) Update(_ context.Context, o entities.Order, expectedVersion int64) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.orders[o.OrderID]
	if !ok || cur.Version != expectedVersion {
		return entities.Order{}, interfaces.ErrVersionConflict
	}
	c, err := cloneOrder(o)
	if err != nil {
		return entities.Order{}, err
	}
	r.orders[o.OrderID] = c
	return o, nil
}

func (r *OrderRepository) List(_ context.Context) ([]entities.Order, error) {
	return r.filter(func(entities.Order) bool { return true })
}

func (r *OrderRepository) ListByCustomer(_ context.Context, customerID string) ([]entities.Order, error) {
	return r.filter(func(o entities.Order) bool { return o.CustomerID == customerID })
}

func (r *OrderRepository) Delete(_ context.Context, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, orderID)
	return nil
}

func (r *OrderRepository) filter(keep func(entities.Order) bool) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if !keep(o) {
			continue
		}
		c, err := cloneOrder(o)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(orders []entities.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].OrderID > orders[j].OrderID
	})
}

func cloneOrder(o entities.Order) (entities.Order, error) {
	var out entities.Order
	err := deepCopy(o, &out)
	return out, err
}

func deepCopy(src, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

// ArchivedOrderRepository keeps soft-deleted orders.
type ArchivedOrderRepository struct {
	mu     sync.RWMutex
	orders []entities.ArchivedOrder
}

var _ interfaces.IArchivedOrderRepository = (*ArchivedOrderRepository)(nil)

func NewArchivedOrderRepository() *ArchivedOrderRepository {
	return &ArchivedOrderRepository{}
}

func (r *ArchivedOrderRepository) Create(_ context.Context, o entities.ArchivedOrder) (entities.ArchivedOrder, error) {
	var c entities.ArchivedOrder
	if err := deepCopy(o, &c); err != nil {
		return entities.ArchivedOrder{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, c)
	return o, nil
}

func (r *ArchivedOrderRepository) ListByCustomer(_ context.Context, customerID string) ([]entities.ArchivedOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.ArchivedOrder{}
	for _, o := range r.orders {
		if o.CustomerID != customerID {
			continue
		}
		var c entities.ArchivedOrder
		if err := deepCopy(o, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeletedAt.After(out[j].DeletedAt) })
	return out, nil
}

// OrderSequence issues per-year counters.
type OrderSequence struct {
	mu   sync.Mutex
	next map[int]int64
}

var _ interfaces.IOrderIDSequence = (*OrderSequence)(nil)

func NewOrderSequence() *OrderSequence {
	return &OrderSequence{next: make(map[int]int64)}
}

func (s *OrderSequence) Next(_ context.Context, year int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next[year]++
	return s.next[year], nil
}
