package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"service_inventory/internal/adapter/http/handlers/mocks"
	"service_inventory/internal/adapter/http/middleware"
	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

var payingCustomer = entities.Principal{UserID: "cust-1", Role: entities.RoleCustomer}

func newPaymentRouter(t *testing.T, mockMode bool) (*gin.Engine, *mocks.MockIBillingPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
	h := NewBillingPaymentHandler(uc, mockMode, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextPrincipal, payingCustomer)
		c.Next()
	})
	r.POST("/v1/payments/:order_id", h.CreatePayment)
	r.GET("/v1/payments/:order_id", h.GetLatestPayment)
	r.GET("/v1/orders/:order_id/payments", h.ListPayments)
	r.GET("/v1/orders/:order_id/payments/:payment_id", h.GetPayment)
	return r, uc
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBillingPaymentHandler_CreatePayment(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newPaymentRouter(t, false)

		w := serve(r, http.MethodPost, "/v1/payments/ORD-2025-01", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty", func(t *testing.T) {
		r, uc := newPaymentRouter(t, true)
		uc.EXPECT().CreateAndApprove(gomock.Any(), payingCustomer, "ORD-2025-01", json.RawMessage("{}")).
			Return(entities.BillingPayment{ID: "pay-1", OrderID: "ORD-2025-01", Status: entities.PaymentStatusApproved}, nil)

		w := serve(r, http.MethodPost, "/v1/payments/ORD-2025-01", "{")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().CreateAndApprove(gomock.Any(), payingCustomer, "ORD-2025-01", gomock.Any()).Return(entities.BillingPayment{}, usecase.ErrBOMNotApproved)

		w := serve(r, http.MethodPost, "/v1/payments/ORD-2025-01", `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PRECONDITION_FAILED" || body["success"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("order of another customer", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().CreateAndApprove(gomock.Any(), payingCustomer, "ORD-2025-09", gomock.Any()).Return(entities.BillingPayment{}, usecase.ErrOrderNotOwned)

		w := serve(r, http.MethodPost, "/v1/payments/ORD-2025-09", `{"payment_method_id":"pix"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "FORBIDDEN" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().CreateAndApprove(gomock.Any(), payingCustomer, "ORD-2025-01", gomock.Any()).Return(entities.BillingPayment{}, usecase.ErrPaymentGatewayUnavailable)

		w := serve(r, http.MethodPost, "/v1/payments/ORD-2025-01", `{"payment_method_id":"pix"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), payingCustomer, "ORD-2025-01", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)).
			Return(entities.BillingPayment{
				ID:      "pay-1",
				OrderID: "ORD-2025-01",
				Amount:  decimal.RequireFromString("531"),
				Date:    now,
				Status:  entities.PaymentStatusApproved,
			}, nil)

		w := serve(r, http.MethodPost, "/v1/payments/ORD-2025-01", `{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["order_id"] != "ORD-2025-01" || body["amount"] != 531.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBillingPaymentHandler_Queries(t *testing.T) {
	t.Run("latest not found", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().GetLatestByOrderID(gomock.Any(), payingCustomer, "ORD-2025-01").Return(entities.BillingPayment{}, usecase.ErrBillingPaymentNotFound)

		w := serve(r, http.MethodGet, "/v1/payments/ORD-2025-01", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("latest", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().GetLatestByOrderID(gomock.Any(), payingCustomer, "ORD-2025-01").
			Return(entities.BillingPayment{ID: "latest", OrderID: "ORD-2025-01", Status: entities.PaymentStatusApproved}, nil)

		w := serve(r, http.MethodGet, "/v1/payments/ORD-2025-01", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "latest" {
			t.Fatalf("expected latest payment, got body: %s", w.Body.String())
		}
	})

	t.Run("list", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().ListByOrderID(gomock.Any(), payingCustomer, "ORD-2025-01").Return([]entities.BillingPayment{
			{ID: "b", OrderID: "ORD-2025-01", Date: time.Now()},
			{ID: "a", OrderID: "ORD-2025-01", Date: time.Now().Add(-time.Hour)},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/orders/ORD-2025-01/payments", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool             `json:"success"`
			Data    []map[string]any `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if !body.Success || len(body.Data) != 2 || body.Data[0]["payment_id"] != "b" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("payment of another order", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().GetByID(gomock.Any(), payingCustomer, "pay-9").Return(entities.BillingPayment{ID: "pay-9", OrderID: "ORD-2025-02"}, nil)

		w := serve(r, http.MethodGet, "/v1/orders/ORD-2025-01/payments/pay-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("payment by id", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().GetByID(gomock.Any(), payingCustomer, "pay-1").Return(entities.BillingPayment{ID: "pay-1", OrderID: "ORD-2025-01"}, nil)

		w := serve(r, http.MethodGet, "/v1/orders/ORD-2025-01/payments/pay-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readMPPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readMPPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readMPPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readMPPayload(makeCtx(`{"mp_payload":null}`)); err == nil {
		t.Fatalf("expected mp_payload empty error")
	}

	payload, err = readMPPayload(makeCtx(`{"mp_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readMPPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}
