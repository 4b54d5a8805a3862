package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IBillingPaymentUseCase charges the approved BOM of an order.
type IBillingPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, principal entities.Principal, orderID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, principal entities.Principal, id string) (entities.BillingPayment, error)
	ListByOrderID(ctx context.Context, principal entities.Principal, orderID string) ([]entities.BillingPayment, error)
	GetLatestByOrderID(ctx context.Context, principal entities.Principal, orderID string) (entities.BillingPayment, error)
}

// PaymentSettings tunes payload validation. In mock mode the payer and
// payment method are not required.
type PaymentSettings struct {
	MockMode    bool
	AccessToken string
}

type BillingPaymentUseCase struct {
	repo     interfaces.IBillingPaymentRepository
	orders   interfaces.IOrderRepository
	gateway  interfaces.IPaymentGateway
	settings PaymentSettings
	log      *zap.Logger
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, settings PaymentSettings, log *zap.Logger) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{repo: repo, orders: orders, gateway: gateway, settings: settings, log: log.Named("payment")}
}

// CreateAndApprove sends the payment of the order's approved BOM to the
// gateway and stores the outcome. The amount always comes from the BOM.
func (u *BillingPaymentUseCase) CreateAndApprove(ctx context.Context, principal entities.Principal, orderID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.BillingPayment{}, ErrInvalidOrderID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.settings.MockMode {
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if o.OrderID == "" {
		return entities.BillingPayment{}, ErrOrderNotFound
	}
	if err := checkOrderOwner(principal, &o); err != nil {
		return entities.BillingPayment{}, err
	}
	if o.BillOfMaterial == nil || o.BillOfMaterial.BOMStatus != entities.BOMStatusApproved {
		return entities.BillingPayment{}, ErrBOMNotApproved
	}
	amount := o.BillOfMaterial.TotalPayable

	var req map[string]any
	if err := json.Unmarshal(mpPayload, &req); err != nil || req == nil {
		return entities.BillingPayment{}, ErrInvalidMPPayload
	}
	if !u.settings.MockMode {
		if !hasNonEmptyString(req, "payment_method_id") {
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		u.ensurePayerDefaults(req)
		if !hasPayer(req) {
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = orderID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Order %s", orderID)
	}
	req["transaction_amount"] = amount.InexactFloat64()

	payload, err := json.Marshal(req)
	if err != nil {
		return entities.BillingPayment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.log.Warn("payment gateway failed", zap.String("order_id", orderID), zap.Error(err))
		return entities.BillingPayment{}, classifyGatewayError(err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn("provider response is not json", zap.String("order_id", orderID), zap.Error(err))
	}

	p := entities.BillingPayment{
		ID:           providerID,
		OrderID:      orderID,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error("store payment failed", zap.String("order_id", orderID), zap.String("payment_id", p.ID), zap.Error(err))
		return entities.BillingPayment{}, err
	}
	u.log.Info("payment created",
		zap.String("order_id", orderID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.String("amount", amount.StringFixed(2)))
	return created, nil
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, principal entities.Principal, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	if err := u.authorize(ctx, principal, p.OrderID); err != nil {
		return entities.BillingPayment{}, err
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByOrderID(ctx context.Context, principal entities.Principal, orderID string) ([]entities.BillingPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if err := u.authorize(ctx, principal, orderID); err != nil {
		return nil, err
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

func (u *BillingPaymentUseCase) GetLatestByOrderID(ctx context.Context, principal entities.Principal, orderID string) (entities.BillingPayment, error) {
	ps, err := u.ListByOrderID(ctx, principal, orderID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if len(ps) == 0 {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	latest := ps[0]
	for _, p := range ps[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

// authorize loads the order for customers, who may only see the payments
// of their own orders.
func (u *BillingPaymentUseCase) authorize(ctx context.Context, principal entities.Principal, orderID string) error {
	if principal.Role != entities.RoleCustomer || principal.Admin() {
		return nil
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.OrderID == "" {
		return ErrOrderNotFound
	}
	return checkOrderOwner(principal, &o)
}

// ensurePayerDefaults fills payer.type and, for sandbox tokens, a test
// payer email when neither id nor email was sent.
func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && strings.HasPrefix(u.settings.AccessToken, "TEST-") {
		payer["email"] = "test_user_br@testuser.com"
	}
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"),
		strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return fmt.Errorf("%w: %v", ErrPaymentGatewayUnavailable, err)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}
