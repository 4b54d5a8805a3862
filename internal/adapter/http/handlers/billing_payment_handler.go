package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"service_inventory/internal/adapter/http/dto/response"
	"service_inventory/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingPaymentHandler handles payments of approved BOMs.
type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
	log      *zap.Logger
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool, log *zap.Logger) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode, log: log.Named("payment_handler")}
}

// CreatePayment godoc
// @Summary      Pay the approved BOM of an order
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.BillingPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{order_id} [post]
func (h *BillingPaymentHandler) CreatePayment(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orderID := c.Param("order_id")
	h.log.Info("create payment", zap.String("order_id", orderID))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			h.log.Warn("invalid payment payload", zap.String("order_id", orderID), zap.Error(err))
			respondBindError(c, err)
			return
		}
		h.log.Info("invalid payload in mock mode, sending empty payload", zap.String("order_id", orderID), zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), p, orderID, mpPayload)
	if err != nil {
		h.log.Warn("create payment failed", zap.String("order_id", orderID), zap.Error(err))
		respondError(c, err)
		return
	}
	h.log.Info("payment created",
		zap.String("order_id", orderID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetLatestPayment godoc
// @Summary      Latest payment of an order
// @Tags         payments
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.BillingPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{order_id} [get]
func (h *BillingPaymentHandler) GetLatestPayment(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	latest, err := h.usecase.GetLatestByOrderID(c.Request.Context(), p, c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

// ListPayments godoc
// @Summary      Payments of an order, newest first
// @Tags         payments
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.Envelope
// @Router       /orders/{order_id}/payments [get]
func (h *BillingPaymentHandler) ListPayments(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	payments, err := h.usecase.ListByOrderID(c.Request.Context(), p, c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Payments fetched", response.FromBillingPayments(payments))
}

// GetPayment godoc
// @Summary      Payment by id
// @Tags         payments
// @Produce      json
// @Security     Bearer
// @Param        order_id    path  string  true  "Order ID"
// @Param        payment_id  path  string  true  "Payment ID"
// @Success      200  {object}  response.BillingPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/payments/{payment_id} [get]
func (h *BillingPaymentHandler) GetPayment(c *gin.Context) {
	caller, ok := principal(c)
	if !ok {
		return
	}
	p, err := h.usecase.GetByID(c.Request.Context(), caller, c.Param("payment_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if p.OrderID != c.Param("order_id") {
		respondError(c, usecase.ErrBillingPaymentNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(p))
}

// readMPPayload accepts either {"mp_payload": {...}} or the bare payment
// body. An empty body becomes {}.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
