package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"
	"service_inventory/pkg"

	"go.uber.org/zap"
)

// IAssignmentUseCase attaches technicians to an order.
type IAssignmentUseCase interface {
	AssignTechnicians(ctx context.Context, orderID string, technicianIDs []string) (entities.Order, error)
}

// AssignmentUseCase keeps the order's allocation step and the technician
// directory in step. Every technician flipped to Busy during a call is
// released again when the call fails, including when the order write fails.
type AssignmentUseCase struct {
	store     orderStore
	resolver  stepResolver
	directory interfaces.ITechnicianDirectory
	log       *zap.Logger
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(repo interfaces.IOrderRepository, templates interfaces.IProcessTemplateRepository, locker interfaces.IOrderLocker, directory interfaces.ITechnicianDirectory, log *zap.Logger) *AssignmentUseCase {
	log = log.Named("assignment")
	return &AssignmentUseCase{
		store:     orderStore{repo: repo, locker: locker, now: utcNow, log: log},
		resolver:  stepResolver{templates: templates},
		directory: directory,
		log:       log,
	}
}

func (u *AssignmentUseCase) AssignTechnicians(ctx context.Context, orderID string, technicianIDs []string) (entities.Order, error) {
	ids := uniqueIDs(technicianIDs)
	if len(ids) == 0 {
		return entities.Order{}, ErrNoTechnicians
	}
	orderID = strings.TrimSpace(orderID)

	var flipped []string
	updated, err := u.store.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		p, sp, err := u.resolver.ensure(ctx, o, entities.ProcessTechnicianAllocation, entities.SubAssignTechnician, now)
		if err != nil {
			return err
		}

		added := 0
		for _, id := range ids {
			if sp.HasTechnician(id) {
				continue
			}
			tech, err := u.reserve(ctx, id, o.OrderID)
			if err != nil {
				return err
			}
			flipped = append(flipped, id)
			sp.AssignedTechnicians = append(sp.AssignedTechnicians, entities.AssignedTechnician{
				ID:         id,
				Name:       tech.FullName(),
				Type:       tech.TechnicianType,
				AssignedAt: now,
			})
			added++
		}
		if added == 0 && sp.IsCompleted {
			return errNoChange
		}

		sp.Complete(now)
		p.Advance(now)
		return nil
	})
	if err != nil {
		if len(flipped) > 0 {
			u.log.Warn("assignment failed, releasing technicians",
				zap.String("order_id", orderID), zap.Strings("technician_ids", flipped), zap.Error(err))
			releaseTechnicians(context.WithoutCancel(ctx), u.directory, flipped, u.log)
		}
		return entities.Order{}, err
	}

	u.log.Info("technicians assigned", zap.String("order_id", updated.OrderID), zap.Strings("technician_ids", flipped))
	return updated, nil
}

// reserve checks the technician is available and marks it Busy for orderID.
func (u *AssignmentUseCase) reserve(ctx context.Context, id, orderID string) (entities.Technician, error) {
	tech, err := u.directory.GetTechnician(ctx, id)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return entities.Technician{}, fmt.Errorf("%w: %s", interfaces.ErrTechnicianNotFound, id)
		}
		return entities.Technician{}, fmt.Errorf("%w: %v", ErrTechnicianUnavailable, err)
	}
	if tech.AvailabilityStatus == entities.AvailabilityBusy {
		return entities.Technician{}, fmt.Errorf("%w: %s", ErrTechnicianBusy, id)
	}
	if err := u.directory.SetAvailability(ctx, id, entities.AvailabilityBusy, orderID); err != nil {
		return entities.Technician{}, fmt.Errorf("%w: %v", ErrTechnicianUnavailable, err)
	}
	return tech, nil
}

// releaseTechnicians marks every id Available again. Failures are logged
// and do not stop the loop.
func releaseTechnicians(ctx context.Context, directory interfaces.ITechnicianDirectory, ids []string, log *zap.Logger) {
	for _, id := range ids {
		if err := directory.SetAvailability(ctx, id, entities.AvailabilityAvailable, ""); err != nil {
			log.Error("release technician failed", zap.String("technician_id", id), zap.Error(err))
		}
	}
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
