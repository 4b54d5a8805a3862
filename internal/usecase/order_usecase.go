package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const maxOrderIDAttempts = 5

// Upload is a file attached to an order request.
type Upload struct {
	FileName    string
	ContentType string
	Body        io.Reader
	Size        int64
}

// CreateOrderInput carries a new booking. Price fields apply to general and
// fixed services, ExpectedBudget and MaterialRequired to custom ones.
type CreateOrderInput struct {
	ServiceType         string
	OrderType           string
	Scope               string
	Category            string
	ServiceName         string
	ServiceRequiredDate time.Time
	IssueDescription    string
	IssueLocation       string

	ServicePrice     *float64
	Discount         *float64
	Tax              *float64
	ExpectedBudget   *float64
	MaterialRequired bool

	Picture *Upload
	Voice   *Upload
}

// IOrderUseCase covers the order lifecycle outside the process tree.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, principal entities.Principal, in CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	ListOrdersByCustomer(ctx context.Context, principal entities.Principal, customerID string) ([]entities.Order, error)
	ArchiveOrder(ctx context.Context, orderID string) (entities.ArchivedOrder, error)
	ListArchivedOrders(ctx context.Context, principal entities.Principal, customerID string) ([]entities.ArchivedOrder, error)
	RateOrder(ctx context.Context, principal entities.Principal, orderID string, rating int) (entities.Order, error)
	CompleteOrder(ctx context.Context, orderID string) (entities.Order, error)
	CancelOrder(ctx context.Context, orderID string) (entities.Order, error)
}

// OrderDependencies groups the collaborators of OrderUseCase. Storage may be
// nil when uploads are disabled.
type OrderDependencies struct {
	Orders    interfaces.IOrderRepository
	Archive   interfaces.IArchivedOrderRepository
	Sequence  interfaces.IOrderIDSequence
	Catalog   interfaces.IServiceCatalogRepository
	Templates interfaces.IProcessTemplateRepository
	Storage   interfaces.IObjectStorage
	Directory interfaces.ITechnicianDirectory
	Locker    interfaces.IOrderLocker
	Logger    *zap.Logger
}

type OrderUseCase struct {
	deps     OrderDependencies
	store    orderStore
	resolver stepResolver
	log      *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(deps OrderDependencies) *OrderUseCase {
	log := deps.Logger.Named("order")
	return &OrderUseCase{
		deps:     deps,
		store:    orderStore{repo: deps.Orders, locker: deps.Locker, now: utcNow, log: log},
		resolver: stepResolver{templates: deps.Templates},
		log:      log,
	}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, principal entities.Principal, in CreateOrderInput) (entities.Order, error) {
	o, err := u.buildOrder(ctx, principal, in)
	if err != nil {
		return entities.Order{}, err
	}

	now := u.store.now()
	if o.OrderID, err = u.allocateOrderID(ctx, now.Year()); err != nil {
		return entities.Order{}, err
	}

	if o.PictureOfTheIssue, err = u.upload(ctx, o.OrderID, in.Picture, now); err != nil {
		return entities.Order{}, err
	}
	if o.VoiceRecordOfTheIssue, err = u.upload(ctx, o.OrderID, in.Voice, now); err != nil {
		return entities.Order{}, err
	}

	templates, err := u.deps.Templates.List(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	entities.SortTemplates(templates)
	o.Processes = make([]entities.Process, 0, len(templates))
	for _, t := range templates {
		o.Processes = append(o.Processes, entities.NewProcessFromTemplate(t))
	}

	o.OrderStatus = entities.OrderStatusConfirmed
	o.Version = 1
	o.CreatedAt = now
	o.UpdatedAt = now

	created, err := u.deps.Orders.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Info("order created",
		zap.String("order_id", created.OrderID),
		zap.String("customer_id", created.CustomerID),
		zap.String("service_type", string(created.ServiceType)))
	return created, nil
}

// buildOrder validates and normalizes the request and resolves the catalog
// price of general and fixed services.
func (u *OrderUseCase) buildOrder(ctx context.Context, principal entities.Principal, in CreateOrderInput) (entities.Order, error) {
	o := entities.Order{
		ServiceType:         entities.ServiceType(strings.ToLower(normalizeText(in.ServiceType))),
		OrderType:           entities.OrderType(normalizeText(in.OrderType)),
		Scope:               entities.ServiceScope(normalizeText(in.Scope)),
		Category:            normalizeText(in.Category),
		ServiceName:         normalizeText(in.ServiceName),
		ServiceRequiredDate: in.ServiceRequiredDate.UTC(),
		IssueDescription:    normalizeText(in.IssueDescription),
		IssueLocation:       normalizeText(in.IssueLocation),
		CustomerID:          principal.UserID,
	}

	if !o.ServiceType.Valid() {
		return entities.Order{}, ErrInvalidServiceType
	}
	if o.OrderType != "" && !o.OrderType.Valid() {
		return entities.Order{}, ErrInvalidOrderType
	}
	if !o.Scope.Valid() {
		return entities.Order{}, ErrInvalidScope
	}
	for _, f := range []struct{ name, value string }{
		{"category", o.Category},
		{"service_name", o.ServiceName},
		{"issue_location", o.IssueLocation},
		{"customer_id", o.CustomerID},
	} {
		if f.value == "" {
			return entities.Order{}, fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	if in.ServiceRequiredDate.IsZero() {
		return entities.Order{}, fmt.Errorf("%w: service_required_date", ErrMissingField)
	}

	if !o.ServiceType.CatalogBacked() {
		o.ExpectedBudget = in.ExpectedBudget
		o.MaterialRequired = in.MaterialRequired
		return o, nil
	}

	svc, err := u.deps.Catalog.FindService(ctx, entities.CatalogLookup{
		ServiceType: o.ServiceType,
		OrderType:   o.OrderType,
		Scope:       o.Scope,
		ServiceName: o.ServiceName,
	})
	if err != nil {
		return entities.Order{}, err
	}
	if svc.ServiceID == "" {
		return entities.Order{}, ErrServiceUnavailable
	}
	o.ServiceID = svc.ServiceID
	o.ServicePrice = in.ServicePrice
	if o.ServicePrice == nil {
		o.ServicePrice = svc.Price()
	}
	o.Discount = floatOrZero(in.Discount)
	o.Tax = floatOrZero(in.Tax)
	return o, nil
}

// allocateOrderID draws sequence numbers until one is not taken.
func (u *OrderUseCase) allocateOrderID(ctx context.Context, year int) (string, error) {
	for attempt := 0; attempt < maxOrderIDAttempts; attempt++ {
		seq, err := u.deps.Sequence.Next(ctx, year)
		if err != nil {
			return "", err
		}
		id := entities.FormatOrderID(year, seq)
		existing, err := u.deps.Orders.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing.OrderID == "" {
			return id, nil
		}
		u.log.Warn("order id already taken", zap.String("order_id", id))
	}
	return "", ErrOrderIDExhausted
}

func (u *OrderUseCase) upload(ctx context.Context, orderID string, f *Upload, now time.Time) (string, error) {
	if f == nil || f.Body == nil {
		return "", nil
	}
	if u.deps.Storage == nil {
		return "", fmt.Errorf("%w: storage not configured", ErrUploadFailed)
	}
	path := fmt.Sprintf("orders/%s/%d%s", orderID, now.UnixNano(), strings.ToLower(filepath.Ext(f.FileName)))
	url, err := u.deps.Storage.Upload(ctx, path, f.ContentType, f.Body, f.Size)
	if err != nil {
		u.log.Error("upload failed", zap.String("order_id", orderID), zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return url, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	return u.store.load(ctx, orderID)
}

func (u *OrderUseCase) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return u.deps.Orders.List(ctx)
}

func (u *OrderUseCase) ListOrdersByCustomer(ctx context.Context, principal entities.Principal, customerID string) ([]entities.Order, error) {
	customerID = strings.TrimSpace(customerID)
	if err := checkCustomerAccess(principal, customerID); err != nil {
		return nil, err
	}
	orders, err := u.deps.Orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNoOrdersFound
	}
	return orders, nil
}

// ArchiveOrder moves the order into the archive store.
func (u *OrderUseCase) ArchiveOrder(ctx context.Context, orderID string) (entities.ArchivedOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ArchivedOrder{}, ErrInvalidOrderID
	}
	unlock, err := u.deps.Locker.Lock(ctx, orderID)
	if err != nil {
		return entities.ArchivedOrder{}, err
	}
	defer unlock()

	o, err := u.store.load(ctx, orderID)
	if err != nil {
		return entities.ArchivedOrder{}, err
	}
	archived, err := u.deps.Archive.Create(ctx, entities.ArchivedOrder{Order: o, DeletedAt: u.store.now()})
	if err != nil {
		return entities.ArchivedOrder{}, err
	}
	if err := u.deps.Orders.Delete(ctx, orderID); err != nil {
		return entities.ArchivedOrder{}, err
	}
	u.log.Info("order archived", zap.String("order_id", orderID))
	return archived, nil
}

func (u *OrderUseCase) ListArchivedOrders(ctx context.Context, principal entities.Principal, customerID string) ([]entities.ArchivedOrder, error) {
	customerID = strings.TrimSpace(customerID)
	if err := checkCustomerAccess(principal, customerID); err != nil {
		return nil, err
	}
	orders, err := u.deps.Archive.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNoArchivedOrders
	}
	return orders, nil
}

// RateOrder stores the customer's review. It is accepted once, on a
// completed order owned by the caller.
func (u *OrderUseCase) RateOrder(ctx context.Context, principal entities.Principal, orderID string, rating int) (entities.Order, error) {
	if rating < 1 || rating > 5 {
		return entities.Order{}, ErrInvalidRating
	}

	updated, err := u.store.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if o.CustomerID != principal.UserID {
			return ErrOrderNotOwned
		}
		if o.OrderStatus != entities.OrderStatusCompleted {
			return ErrOrderNotCompleted
		}
		if o.Review != nil {
			return ErrAlreadyRated
		}
		r := rating
		o.Review = &r

		p, sp, err := u.resolver.ensure(ctx, o, entities.ProcessCompletionReview, entities.SubClientFeedback, now)
		if err != nil {
			return err
		}
		sp.ClientFeedback = fmt.Sprintf("%d/5", rating)
		sp.Complete(now)
		p.Advance(now)
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Info("order rated", zap.String("order_id", updated.OrderID), zap.Int("rating", rating))
	return updated, nil
}

// CompleteOrder closes the job and frees its technicians.
func (u *OrderUseCase) CompleteOrder(ctx context.Context, orderID string) (entities.Order, error) {
	updated, err := u.store.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if o.OrderStatus != entities.OrderStatusConfirmed {
			return ErrOrderNotConfirmed
		}

		_, mark, err := u.resolver.ensure(ctx, o, entities.ProcessCompletionReview, entities.SubMarkAsCompleted, now)
		if err != nil {
			return err
		}
		done := true
		mark.OrderCompleted = &done
		mark.Complete(now)

		p, closing, err := u.resolver.ensure(ctx, o, entities.ProcessCompletionReview, entities.SubCloseTheOrder, now)
		if err != nil {
			return err
		}
		closing.Complete(now)
		p.Advance(now)

		o.OrderStatus = entities.OrderStatusCompleted
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Info("order completed", zap.String("order_id", updated.OrderID))
	u.release(ctx, updated)
	return updated, nil
}

// CancelOrder cancels a confirmed order and frees its technicians.
func (u *OrderUseCase) CancelOrder(ctx context.Context, orderID string) (entities.Order, error) {
	updated, err := u.store.mutate(ctx, orderID, func(o *entities.Order, _ time.Time) error {
		if o.OrderStatus != entities.OrderStatusConfirmed {
			return ErrOrderNotConfirmed
		}
		o.OrderStatus = entities.OrderStatusCancelled
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Info("order cancelled", zap.String("order_id", updated.OrderID))
	u.release(ctx, updated)
	return updated, nil
}

func (u *OrderUseCase) release(ctx context.Context, o entities.Order) {
	ids := o.AssignedTechnicianIDs()
	if len(ids) == 0 || u.deps.Directory == nil {
		return
	}
	releaseTechnicians(context.WithoutCancel(ctx), u.deps.Directory, ids, u.log)
}

func checkCustomerAccess(principal entities.Principal, customerID string) error {
	if customerID == "" {
		return fmt.Errorf("%w: customer_id", ErrMissingField)
	}
	if !principal.Admin() && principal.UserID != customerID {
		return ErrOrderNotOwned
	}
	return nil
}

func floatOrZero(v *float64) *float64 {
	out := 0.0
	if v != nil {
		out = *v
	}
	return &out
}

var textReplacer = strings.NewReplacer(
	"\u00a0", " ",
	"\u2010", "-", "\u2011", "-", "\u2012", "-", "\u2013", "-", "\u2014", "-", "\u2212", "-",
	"\u2018", "'", "\u2019", "'",
	"\u201c", "\"", "\u201d", "\"",
)

// normalizeText maps typographic dashes, quotes and non-breaking spaces to
// ASCII and collapses whitespace.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(textReplacer.Replace(s)), " ")
}
