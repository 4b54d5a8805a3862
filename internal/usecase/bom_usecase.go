package usecase

import (
	"context"
	"time"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// IBOMUseCase manages the bill of materials attached to an order.
//
// Once the client approval step is completed the BOM can no longer be
// generated, edited or deleted. Customers only see and decide on the BOM of
// their own orders.
type IBOMUseCase interface {
	GenerateBOM(ctx context.Context, orderID string, in entities.BOMInput) (entities.Order, error)
	GetBOM(ctx context.Context, principal entities.Principal, orderID string) (entities.BOM, error)
	UpdateBOMStatus(ctx context.Context, principal entities.Principal, orderID string, status entities.BOMStatus, rejectionReason string) (entities.Order, error)
	EditBOM(ctx context.Context, orderID string, in entities.BOMInput) (entities.Order, error)
	DeleteBOM(ctx context.Context, orderID string) (entities.Order, error)
	ExportBOM(ctx context.Context, orderID string) ([]byte, string, error)
}

type BOMUseCase struct {
	store    orderStore
	resolver stepResolver
	renderer interfaces.IBOMRenderer
	log      *zap.Logger
}

var _ IBOMUseCase = (*BOMUseCase)(nil)

func NewBOMUseCase(repo interfaces.IOrderRepository, templates interfaces.IProcessTemplateRepository, locker interfaces.IOrderLocker, renderer interfaces.IBOMRenderer, log *zap.Logger) *BOMUseCase {
	log = log.Named("bom")
	return &BOMUseCase{
		store:    orderStore{repo: repo, locker: locker, now: utcNow, log: log},
		resolver: stepResolver{templates: templates},
		renderer: renderer,
		log:      log,
	}
}

// GenerateBOM computes a pending BOM. The initial observation must be
// completed first.
func (u *BOMUseCase) GenerateBOM(ctx context.Context, orderID string, in entities.BOMInput) (entities.Order, error) {
	updated, err := u.store.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if !o.SubProcessCompleted(entities.ProcessIssueAnalysis, entities.SubInitialObservation) {
			return ErrObservationIncomplete
		}
		if approvalConfirmed(o) {
			return ErrBOMLocked
		}
		return u.computeAndAttach(ctx, o, in, now)
	})
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Info("bom generated",
		zap.String("order_id", updated.OrderID),
		zap.String("service_type", string(in.ServiceType)),
		zap.String("total_payable", updated.BillOfMaterial.TotalPayable.StringFixed(2)))
	return updated, nil
}

func (u *BOMUseCase) GetBOM(ctx context.Context, principal entities.Principal, orderID string) (entities.BOM, error) {
	o, err := u.store.load(ctx, orderID)
	if err != nil {
		return entities.BOM{}, err
	}
	if err := checkOrderOwner(principal, &o); err != nil {
		return entities.BOM{}, err
	}
	if o.BillOfMaterial == nil {
		return entities.BOM{}, ErrBOMNotFound
	}
	return *o.BillOfMaterial, nil
}

// UpdateBOMStatus records the client decision on a pending BOM. Either
// outcome completes the approval confirmation step; only the BOM status
// differs. The decision is final.
func (u *BOMUseCase) UpdateBOMStatus(ctx context.Context, principal entities.Principal, orderID string, status entities.BOMStatus, rejectionReason string) (entities.Order, error) {
	if status != entities.BOMStatusApproved && status != entities.BOMStatusRejected {
		return entities.Order{}, ErrInvalidBOMStatus
	}

	updated, err := u.store.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if err := checkOrderOwner(principal, o); err != nil {
			return err
		}
		if o.BillOfMaterial == nil {
			return ErrBOMNotFound
		}
		if o.BillOfMaterial.BOMStatus != entities.BOMStatusPending || approvalConfirmed(o) {
			return ErrBOMAlreadyDecided
		}
		if status == entities.BOMStatusApproved {
			o.BillOfMaterial.Approve(principal.UserID, now)
		} else {
			o.BillOfMaterial.Reject(rejectionReason)
		}

		p, sp, err := u.resolver.ensure(ctx, o, entities.ProcessQuotationApproval, entities.SubApprovalConfirmation, now)
		if err != nil {
			return err
		}
		confirmed := status == entities.BOMStatusApproved
		sp.QuotationConfirmation = &confirmed
		sp.Complete(now)
		p.Advance(now)
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Info("bom status updated", zap.String("order_id", updated.OrderID), zap.String("status", string(status)), zap.String("by", principal.UserID))
	return updated, nil
}

// EditBOM recomputes and replaces the BOM, which then needs a new approval.
func (u *BOMUseCase) EditBOM(ctx context.Context, orderID string, in entities.BOMInput) (entities.Order, error) {
	updated, err := u.store.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if approvalConfirmed(o) {
			return ErrBOMLocked
		}
		if o.BillOfMaterial == nil {
			return ErrBOMNotFound
		}
		return u.computeAndAttach(ctx, o, in, now)
	})
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Info("bom edited", zap.String("order_id", updated.OrderID))
	return updated, nil
}

// DeleteBOM removes the BOM and reopens the preparation step.
func (u *BOMUseCase) DeleteBOM(ctx context.Context, orderID string) (entities.Order, error) {
	updated, err := u.store.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if approvalConfirmed(o) {
			return ErrBOMLocked
		}
		if o.BillOfMaterial == nil {
			return ErrBOMNotFound
		}
		o.BillOfMaterial = nil

		p, sp := o.FindSubProcess(entities.ProcessAdminReviewBOM, entities.SubBOMPreparation)
		if sp != nil {
			sp.Reopen()
			sp.BillOfTheSummary = nil
			p.RollUp(now)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Info("bom deleted", zap.String("order_id", updated.OrderID))
	return updated, nil
}

func (u *BOMUseCase) ExportBOM(ctx context.Context, orderID string) ([]byte, string, error) {
	o, err := u.store.load(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	if o.BillOfMaterial == nil {
		return nil, "", ErrBOMNotFound
	}
	return u.renderer.RenderBOM(o)
}

// computeAndAttach replaces the order BOM and completes the estimation and
// preparation steps.
func (u *BOMUseCase) computeAndAttach(ctx context.Context, o *entities.Order, in entities.BOMInput, now time.Time) error {
	fixed := decimal.Zero
	if in.ServiceType == entities.BOMServiceTypeGeneral {
		if o.ServicePrice == nil {
			return ErrNoFixedPrice
		}
		fixed = decimal.NewFromFloat(*o.ServicePrice)
	}
	bom, err := entities.ComputeBOM(in, fixed, now)
	if err != nil {
		return err
	}
	o.BillOfMaterial = &bom

	_, estimation, err := u.resolver.ensure(ctx, o, entities.ProcessAdminReviewBOM, entities.SubMaterialEstimation, now)
	if err != nil {
		return err
	}
	cost := bom.MaterialCost.InexactFloat64()
	estimation.MaterialEstimation = &cost
	estimation.Complete(now)

	p, preparation, err := u.resolver.ensure(ctx, o, entities.ProcessAdminReviewBOM, entities.SubBOMPreparation, now)
	if err != nil {
		return err
	}
	total := bom.TotalPayable.InexactFloat64()
	preparation.BillOfTheSummary = &total
	preparation.Complete(now)
	p.Advance(now)
	return nil
}

func approvalConfirmed(o *entities.Order) bool {
	return o.SubProcessCompleted(entities.ProcessQuotationApproval, entities.SubApprovalConfirmation)
}
