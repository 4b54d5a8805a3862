package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"service_inventory/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromBillingPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.BillingPayment{
		ID:           "pay-1",
		OrderID:      "ORD-2025-01",
		Amount:       decimal.RequireFromString("1298.50"),
		Date:         now,
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: raw,
		MPPayload:    payload,
	}

	res := FromBillingPayment(p)
	if res.PaymentID != "pay-1" || res.OrderID != "ORD-2025-01" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != 1298.5 || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
}

func TestFromOrder_RendersBOMAmountsAsNumbers(t *testing.T) {
	now := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	bom, err := entities.ComputeBOM(entities.BOMInput{
		ServiceType: entities.BOMServiceTypeCustom,
		MaterialItems: []entities.MaterialItem{
			{ItemName: "Pipe", Qty: decimal.NewFromInt(4), UnitPrice: decimal.RequireFromString("12.5")},
		},
		ServiceCharge: ptrDecimal(decimal.NewFromInt(200)),
		TaxPercentage: ptrDecimal(decimal.NewFromInt(10)),
	}, decimal.Zero, now)
	if err != nil {
		t.Fatalf("compute bom: %v", err)
	}

	o := entities.Order{OrderID: "ORD-2025-01", CustomerID: "cust-1", BillOfMaterial: &bom}
	b, err := json.Marshal(FromOrder(o))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var body struct {
		OrderID        string `json:"order_id"`
		BillOfMaterial struct {
			TotalPayable  float64 `json:"total_payable"`
			MaterialItems []struct {
				LineTotal float64 `json:"line_total"`
			} `json:"material_items"`
		} `json:"bill_of_material"`
	}
	if err := json.Unmarshal(b, &body); err != nil {
		t.Fatalf("unmarshal: %v (%s)", err, b)
	}
	if body.OrderID != "ORD-2025-01" {
		t.Fatalf("unexpected order id in %s", b)
	}
	if body.BillOfMaterial.TotalPayable != 275 {
		t.Fatalf("expected total 275, got %v", body.BillOfMaterial.TotalPayable)
	}
	if len(body.BillOfMaterial.MaterialItems) != 1 || body.BillOfMaterial.MaterialItems[0].LineTotal != 50 {
		t.Fatalf("unexpected items in %s", b)
	}
}

func TestFromOrder_NoBOM(t *testing.T) {
	b, err := json.Marshal(FromOrder(entities.Order{OrderID: "ORD-2025-02"}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if v, ok := body["bill_of_material"]; !ok || v != nil {
		t.Fatalf("expected null bill_of_material, got %s", b)
	}
}

func TestFromOrder_HidesArrivalOTP(t *testing.T) {
	o := entities.Order{
		OrderID: "ORD-2025-03",
		Processes: []entities.Process{{
			Key: entities.ProcessSiteVisit,
			SubProcesses: []entities.SubProcess{
				{Key: entities.SubArrivalConfirmation, OTP: "4821"},
				{Key: entities.SubScheduleVisit, ScheduledDate: "2025-07-02"},
			},
		}},
	}

	b, err := json.Marshal(FromOrder(o))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "4821") || strings.Contains(string(b), `"otp"`) {
		t.Fatalf("arrival otp leaked: %s", b)
	}
	if !strings.Contains(string(b), "2025-07-02") {
		t.Fatalf("expected the rest of the tree, got %s", b)
	}
	if o.Processes[0].SubProcesses[0].OTP != "4821" {
		t.Fatalf("source order was modified")
	}
}

func ptrDecimal(d decimal.Decimal) *decimal.Decimal { return &d }
