package usecase

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"strings"
	"time"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ProcessStepInput is a partial update of the process tree. SubProcessName
// may be empty, in which case only the process node is ensured.
type ProcessStepInput struct {
	ProcessName    string
	SubProcessName string
	Patch          entities.SubProcessPatch
}

// IWorkflowUseCase drives an order through its process tree.
type IWorkflowUseCase interface {
	UpsertProcessStep(ctx context.Context, orderID string, in ProcessStepInput) (entities.Order, error)
	ScheduleVisit(ctx context.Context, orderID, date, timeOfDay string) (entities.Order, error)
	GenerateArrivalOTP(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error)
	GetArrivalOTP(ctx context.Context, principal entities.Principal, orderID string) (string, error)
	VerifyArrivalOTP(ctx context.Context, principal entities.Principal, orderID, otp string) (entities.Order, error)
	RecordInitialObservation(ctx context.Context, principal entities.Principal, orderID, report string) (entities.Order, error)
	MarkTechnicianReportReceived(ctx context.Context, orderID string) (entities.Order, error)
}

type WorkflowUseCase struct {
	store    orderStore
	resolver stepResolver
	otp      func() (string, error)
	log      *zap.Logger
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(repo interfaces.IOrderRepository, templates interfaces.IProcessTemplateRepository, locker interfaces.IOrderLocker, log *zap.Logger) *WorkflowUseCase {
	log = log.Named("workflow")
	return &WorkflowUseCase{
		store:    orderStore{repo: repo, locker: locker, now: utcNow, log: log},
		resolver: stepResolver{templates: templates},
		otp:      generateOTP,
		log:      log,
	}
}

// UpsertProcessStep finds or creates the named nodes and merges the patch
// into the sub-process, then recomputes the process roll-up. Steps owned by a
// named operation (arrival, observation, BOM, approval) are refused.
func (u *WorkflowUseCase) UpsertProcessStep(ctx context.Context, orderID string, in ProcessStepInput) (entities.Order, error) {
	if strings.TrimSpace(in.ProcessName) == "" {
		return entities.Order{}, ErrProcessNameRequired
	}
	if err := in.Patch.Validate(); err != nil {
		return entities.Order{}, err
	}

	updated, err := u.store.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		p, sp, err := u.resolver.ensure(ctx, o, in.ProcessName, in.SubProcessName, now)
		if err != nil {
			return err
		}
		if sp == nil {
			return nil
		}
		if managedSteps[sp.Key] {
			return ErrManagedStep
		}
		in.Patch.Apply(sp, now)
		p.RollUp(now)
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Info("process step updated",
		zap.String("order_id", updated.OrderID),
		zap.String("process", in.ProcessName),
		zap.String("sub_process", in.SubProcessName))
	return updated, nil
}

func (u *WorkflowUseCase) ScheduleVisit(ctx context.Context, orderID, date, timeOfDay string) (entities.Order, error) {
	date = strings.TrimSpace(date)
	timeOfDay = strings.TrimSpace(timeOfDay)
	if date == "" || timeOfDay == "" {
		return entities.Order{}, ErrScheduleRequired
	}

	updated, err := u.store.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		p, sp, err := u.resolver.ensure(ctx, o, entities.ProcessSiteVisit, entities.SubScheduleVisit, now)
		if err != nil {
			return err
		}
		sp.ScheduledDate = date
		sp.ScheduledTime = timeOfDay
		sp.Complete(now)
		p.Advance(now)
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Info("visit scheduled", zap.String("order_id", updated.OrderID), zap.String("date", date), zap.String("time", timeOfDay))
	return updated, nil
}

// GenerateArrivalOTP stores a fresh 4-digit code on the arrival confirmation
// step. A previous verification is discarded. The code is read by the
// customer through GetArrivalOTP and never returned to the technician.
func (u *WorkflowUseCase) GenerateArrivalOTP(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error) {
	code, err := u.otp()
	if err != nil {
		return entities.Order{}, err
	}

	updated, err := u.store.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if err := checkAssignedTechnician(principal, o); err != nil {
			return err
		}
		p, sp, err := u.resolver.ensure(ctx, o, entities.ProcessSiteVisit, entities.SubArrivalConfirmation, now)
		if err != nil {
			return err
		}
		sp.OTP = code
		sp.IsVerified = false
		sp.Reopen()
		p.Advance(now)
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Info("arrival otp generated", zap.String("order_id", updated.OrderID), zap.String("by", principal.UserID))
	return updated, nil
}

// GetArrivalOTP returns the pending arrival code to the order's customer.
func (u *WorkflowUseCase) GetArrivalOTP(ctx context.Context, principal entities.Principal, orderID string) (string, error) {
	o, err := u.store.load(ctx, orderID)
	if err != nil {
		return "", err
	}
	if !principal.Admin() && o.CustomerID != principal.UserID {
		return "", ErrOrderNotOwned
	}
	_, sp := o.FindSubProcess(entities.ProcessSiteVisit, entities.SubArrivalConfirmation)
	if sp == nil || sp.OTP == "" || sp.IsVerified {
		return "", ErrOTPNotGenerated
	}
	return sp.OTP, nil
}

// VerifyArrivalOTP confirms the technician arrival. The site visit moves to
// Arrived unless every one of its steps is already done.
func (u *WorkflowUseCase) VerifyArrivalOTP(ctx context.Context, principal entities.Principal, orderID, otp string) (entities.Order, error) {
	otp = strings.TrimSpace(otp)
	if otp == "" {
		return entities.Order{}, ErrOTPRequired
	}

	updated, err := u.store.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if err := checkAssignedTechnician(principal, o); err != nil {
			return err
		}
		p, sp := o.FindSubProcess(entities.ProcessSiteVisit, entities.SubArrivalConfirmation)
		if sp == nil || sp.OTP == "" {
			return ErrOTPNotGenerated
		}
		if subtle.ConstantTimeCompare([]byte(sp.OTP), []byte(otp)) != 1 {
			return ErrOTPMismatch
		}
		sp.IsVerified = true
		sp.Complete(now)
		if p.StartedAt == nil {
			t := now
			p.StartedAt = &t
		}
		p.Status = entities.ProcessStatusArrived
		p.RollUp(now)
		return nil
	})
	if err != nil {
		u.log.Info("arrival otp rejected", zap.String("order_id", orderID), zap.Error(err))
		return entities.Order{}, err
	}
	u.log.Info("technician arrival verified", zap.String("order_id", updated.OrderID), zap.String("by", principal.UserID))
	return updated, nil
}

// RecordInitialObservation stores the technician's first report. It requires
// a verified arrival.
func (u *WorkflowUseCase) RecordInitialObservation(ctx context.Context, principal entities.Principal, orderID, report string) (entities.Order, error) {
	report = strings.TrimSpace(report)
	if report == "" {
		return entities.Order{}, ErrReportRequired
	}

	updated, err := u.store.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if err := checkAssignedTechnician(principal, o); err != nil {
			return err
		}
		if _, arrival := o.FindSubProcess(entities.ProcessSiteVisit, entities.SubArrivalConfirmation); arrival == nil || !arrival.IsVerified {
			return ErrArrivalNotVerified
		}

		p, sp, err := u.resolver.ensure(ctx, o, entities.ProcessIssueAnalysis, entities.SubInitialObservation, now)
		if err != nil {
			return err
		}
		sp.TechnicianReport = report
		sp.Complete(now)
		p.Advance(now)

		site, inspection, err := u.resolver.ensure(ctx, o, entities.ProcessSiteVisit, entities.SubSiteInspection, now)
		if err != nil {
			return err
		}
		inspection.Complete(now)
		site.Advance(now)
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Info("initial observation recorded", zap.String("order_id", updated.OrderID))
	return updated, nil
}

func (u *WorkflowUseCase) MarkTechnicianReportReceived(ctx context.Context, orderID string) (entities.Order, error) {
	updated, err := u.store.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		p, sp, err := u.resolver.ensure(ctx, o, entities.ProcessAdminReviewBOM, entities.SubReceiveTechnicianReport, now)
		if err != nil {
			return err
		}
		sp.Complete(now)
		p.Advance(now)
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Info("technician report received", zap.String("order_id", updated.OrderID))
	return updated, nil
}

var otpRange = big.NewInt(9000)

// generateOTP returns a uniformly random code in [1000, 9999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpRange)
	if err != nil {
		return "", err
	}
	return big.NewInt(0).Add(n, big.NewInt(1000)).String(), nil
}
