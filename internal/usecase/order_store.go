package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// errNoChange tells mutate that fn left the order untouched and nothing
// should be written.
var errNoChange = errors.New("no change")

// orderStore runs read-modify-write cycles on one order. Writers of the same
// order are serialized by the locker and the write is conditional on the
// version that was read.
type orderStore struct {
	repo   interfaces.IOrderRepository
	locker interfaces.IOrderLocker
	now    func() time.Time
	log    *zap.Logger
}

func (s orderStore) load(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.OrderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// mutate applies fn to the stored order and persists the result. Nothing is
// written when fn fails.
func (s orderStore) mutate(ctx context.Context, orderID string, fn func(o *entities.Order, now time.Time) error) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	unlock, err := s.locker.Lock(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	defer unlock()

	o, err := s.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	now := s.now()
	if err := fn(&o, now); err != nil {
		if errors.Is(err, errNoChange) {
			return o, nil
		}
		return entities.Order{}, err
	}

	expected := o.Version
	o.Version++
	o.UpdatedAt = now
	updated, err := s.repo.Update(ctx, o, expected)
	if err != nil {
		s.log.Warn("order update failed", zap.String("order_id", orderID), zap.Int64("version", expected), zap.Error(err))
		return entities.Order{}, err
	}
	return updated, nil
}

func utcNow() time.Time { return time.Now().UTC() }
