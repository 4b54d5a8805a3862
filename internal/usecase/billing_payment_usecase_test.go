package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"service_inventory/internal/domain/entities"
	mock_interfaces "service_inventory/internal/usecase/interfaces/mocks"
	"service_inventory/pkg"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func approvedOrder(id string) entities.Order {
	return entities.Order{
		OrderID:    id,
		CustomerID: testCustomerID,
		BillOfMaterial: &entities.BOM{
			ServiceType:  entities.BOMServiceTypeCustom,
			TotalPayable: decimal.RequireFromString("1298.50"),
			BOMStatus:    entities.BOMStatusApproved,
		},
	}
}

func TestBillingPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{}, zap.NewNop())
		_, err := uc.CreateAndApprove(context.Background(), testAdmin, " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{}, zap.NewNop())
		_, err := uc.CreateAndApprove(context.Background(), testAdmin, "ORD-2025-01", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{}, zap.NewNop())
		_, err := uc.CreateAndApprove(context.Background(), testAdmin, "ORD-2025-01", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_OrderChecks(t *testing.T) {
	t.Run("order repo returns error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewBillingPaymentUseCase(nil, orders, nil, PaymentSettings{}, zap.NewNop())

		orders.EXPECT().GetByID(gomock.Any(), "ORD-2025-01").Return(entities.Order{}, errors.New("db"))

		_, err := uc.CreateAndApprove(context.Background(), testAdmin, "ORD-2025-01", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewBillingPaymentUseCase(nil, orders, nil, PaymentSettings{}, zap.NewNop())

		orders.EXPECT().GetByID(gomock.Any(), "ORD-2025-01").Return(entities.Order{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), testAdmin, "ORD-2025-01", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("bom not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewBillingPaymentUseCase(nil, orders, nil, PaymentSettings{}, zap.NewNop())

		o := approvedOrder("ORD-2025-01")
		o.BillOfMaterial.BOMStatus = entities.BOMStatusPending
		orders.EXPECT().GetByID(gomock.Any(), "ORD-2025-01").Return(o, nil)

		_, err := uc.CreateAndApprove(context.Background(), testAdmin, "ORD-2025-01", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrBOMNotApproved) || !errors.Is(err, pkg.ErrPreconditionFailed) {
			t.Fatalf("expected ErrBOMNotApproved, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CustomerOwnership(t *testing.T) {
	stranger := entities.Principal{UserID: "cust-2", Role: entities.RoleCustomer}

	t.Run("create on another customer's order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, orders, gateway, PaymentSettings{MockMode: true}, zap.NewNop())

		orders.EXPECT().GetByID(gomock.Any(), "ORD-2025-01").Return(approvedOrder("ORD-2025-01"), nil)

		_, err := uc.CreateAndApprove(context.Background(), stranger, "ORD-2025-01", json.RawMessage(`{}`))
		if !errors.Is(err, ErrOrderNotOwned) || !errors.Is(err, pkg.ErrForbidden) {
			t.Fatalf("expected ErrOrderNotOwned, got %v", err)
		}
	})

	t.Run("owner pays", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, orders, gateway, PaymentSettings{MockMode: true}, zap.NewNop())

		orders.EXPECT().GetByID(gomock.Any(), "ORD-2025-01").Return(approvedOrder("ORD-2025-01"), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mock-1", "approved", json.RawMessage(`{}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
				return p, nil
			},
		)

		if _, err := uc.CreateAndApprove(context.Background(), testCustomer, "ORD-2025-01", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("list and get on another customer's order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, orders, nil, PaymentSettings{}, zap.NewNop())

		orders.EXPECT().GetByID(gomock.Any(), "ORD-2025-01").Return(approvedOrder("ORD-2025-01"), nil).Times(2)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.BillingPayment{ID: "p-1", OrderID: "ORD-2025-01"}, nil)

		if _, err := uc.ListByOrderID(context.Background(), stranger, "ORD-2025-01"); !errors.Is(err, ErrOrderNotOwned) {
			t.Fatalf("expected ErrOrderNotOwned, got %v", err)
		}
		if _, err := uc.GetByID(context.Background(), stranger, "p-1"); !errors.Is(err, ErrOrderNotOwned) {
			t.Fatalf("expected ErrOrderNotOwned, got %v", err)
		}
	})

	t.Run("unknown order for a customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewBillingPaymentUseCase(nil, orders, nil, PaymentSettings{}, zap.NewNop())

		orders.EXPECT().GetByID(gomock.Any(), "ORD-2025-09").Return(entities.Order{}, nil)

		if _, err := uc.GetLatestByOrderID(context.Background(), testCustomer, "ORD-2025-09"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_PayloadValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing payment_method_id", `{"payer":{"email":"a@b.com"}}`},
		{"missing payer identity", `{"payment_method_id":"pix","payer":{"first_name":"Ana"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			orders := mock_interfaces.NewMockIOrderRepository(ctrl)
			uc := NewBillingPaymentUseCase(nil, orders, nil, PaymentSettings{AccessToken: "APP_USR-1"}, zap.NewNop())

			orders.EXPECT().GetByID(gomock.Any(), "ORD-2025-01").Return(approvedOrder("ORD-2025-01"), nil)

			_, err := uc.CreateAndApprove(context.Background(), testAdmin, "ORD-2025-01", json.RawMessage(tt.payload))
			if !errors.Is(err, ErrInvalidMPPayload) {
				t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
			}
		})
	}
}

func TestBillingPaymentUseCase_CreateAndApprove_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewBillingPaymentUseCase(repo, orders, gateway, PaymentSettings{AccessToken: "TEST-123"}, zap.NewNop())

	orders.EXPECT().GetByID(gomock.Any(), "ORD-2025-01").Return(approvedOrder("ORD-2025-01"), nil)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("payload is not json: %v", err)
			}
			if req["transaction_amount"] != 1298.5 {
				t.Fatalf("expected amount from BOM, got %v", req["transaction_amount"])
			}
			if req["external_reference"] != "ORD-2025-01" {
				t.Fatalf("unexpected external_reference %v", req["external_reference"])
			}
			if req["description"] != "Order ORD-2025-01" {
				t.Fatalf("unexpected description %v", req["description"])
			}
			payer := req["payer"].(map[string]any)
			if payer["email"] != "test_user_br@testuser.com" || payer["type"] != "customer" {
				t.Fatalf("expected sandbox payer defaults, got %v", payer)
			}
			return "mp-77", "approved", json.RawMessage(`{"id":77,"status":"approved"}`), nil
		},
	)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
			return p, nil
		},
	)

	p, err := uc.CreateAndApprove(context.Background(), testAdmin, "ORD-2025-01", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "mp-77" || p.OrderID != "ORD-2025-01" {
		t.Fatalf("unexpected payment: %+v", p)
	}
	if p.Status != entities.PaymentStatusApproved {
		t.Fatalf("expected approved, got %s", p.Status)
	}
	if !p.Amount.Equal(decimal.RequireFromString("1298.5")) {
		t.Fatalf("unexpected amount %s", p.Amount)
	}
	if p.MPPayload["status"] != "approved" {
		t.Fatalf("expected parsed provider payload, got %v", p.MPPayload)
	}
}

func TestBillingPaymentUseCase_CreateAndApprove_MockMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewBillingPaymentUseCase(repo, orders, gateway, PaymentSettings{MockMode: true}, zap.NewNop())

	orders.EXPECT().GetByID(gomock.Any(), "ORD-2025-01").Return(approvedOrder("ORD-2025-01"), nil)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mock-1", "in_process", json.RawMessage(`not json`), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
			return p, nil
		},
	)

	p, err := uc.CreateAndApprove(context.Background(), testAdmin, "ORD-2025-01", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != entities.PaymentStatusPending {
		t.Fatalf("expected pending, got %s", p.Status)
	}
	if p.MPPayload != nil {
		t.Fatalf("expected no parsed payload, got %v", p.MPPayload)
	}
}

func TestBillingPaymentUseCase_CreateAndApprove_GatewayErrors(t *testing.T) {
	tests := []struct {
		name    string
		gateway error
		want    error
		kind    error
	}{
		{"customer not found", errors.New(`{"message":"Customer not found","status":404}`), ErrPaymentGatewayCustomerNotFound, pkg.ErrInvalidArgument},
		{"unauthorized", errors.New(`{"error":"unauthorized","status":401}`), ErrPaymentGatewayUnauthorized, pkg.ErrDependencyUnavailable},
		{"bad request", errors.New(`{"error":"bad_request","status":400}`), ErrPaymentGatewayBadRequest, pkg.ErrInvalidArgument},
		{"timeout", context.DeadlineExceeded, ErrPaymentGatewayUnavailable, pkg.ErrDependencyUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			orders := mock_interfaces.NewMockIOrderRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(nil, orders, gateway, PaymentSettings{MockMode: true}, zap.NewNop())

			orders.EXPECT().GetByID(gomock.Any(), "ORD-2025-01").Return(approvedOrder("ORD-2025-01"), nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tt.gateway)

			_, err := uc.CreateAndApprove(context.Background(), testAdmin, "ORD-2025-01", json.RawMessage(`{}`))
			if !errors.Is(err, tt.want) || !errors.Is(err, tt.kind) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestBillingPaymentUseCase_Queries(t *testing.T) {
	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, nil, nil, PaymentSettings{}, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.BillingPayment{}, nil)

		_, err := uc.GetByID(context.Background(), testAdmin, "p-1")
		if !errors.Is(err, ErrBillingPaymentNotFound) {
			t.Fatalf("expected ErrBillingPaymentNotFound, got %v", err)
		}
	})

	t.Run("latest by order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, nil, nil, PaymentSettings{}, zap.NewNop())

		base := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
		repo.EXPECT().ListByOrderID(gomock.Any(), "ORD-2025-01").Return([]entities.BillingPayment{
			{ID: "p-1", Date: base},
			{ID: "p-2", Date: base.Add(time.Hour)},
		}, nil)

		p, err := uc.GetLatestByOrderID(context.Background(), testAdmin, "ORD-2025-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "p-2" {
			t.Fatalf("expected p-2, got %s", p.ID)
		}
	})

	t.Run("latest by order without payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, nil, nil, PaymentSettings{}, zap.NewNop())

		repo.EXPECT().ListByOrderID(gomock.Any(), "ORD-2025-01").Return(nil, nil)

		_, err := uc.GetLatestByOrderID(context.Background(), testAdmin, "ORD-2025-01")
		if !errors.Is(err, ErrBillingPaymentNotFound) {
			t.Fatalf("expected ErrBillingPaymentNotFound, got %v", err)
		}
	})
}
