package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func dp(v string) *decimal.Decimal {
	x := d(v)
	return &x
}

func TestComputeBOM(t *testing.T) {
	now := time.Now().UTC()

	t.Run("custom with one item", func(t *testing.T) {
		bom, err := ComputeBOM(BOMInput{
			ServiceType:   BOMServiceTypeCustom,
			MaterialItems: []MaterialItem{{ItemName: " cable ", Qty: d("2"), UnitPrice: d("500")}},
			ServiceCharge: dp("100"),
		}, decimal.Zero, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checks := map[string][2]decimal.Decimal{
			"materialCost": {bom.MaterialCost, d("1000")},
			"subtotal":     {bom.Subtotal, d("1100")},
			"taxAmount":    {bom.TaxAmount, d("198")},
			"totalPayable": {bom.TotalPayable, d("1298")},
			"tax":          {bom.TaxPercentage, d("18")},
		}
		for name, c := range checks {
			if !c[0].Equal(c[1]) {
				t.Fatalf("%s: expected %s, got %s", name, c[1], c[0])
			}
		}
		if bom.BOMStatus != BOMStatusPending || bom.MaterialItems[0].ItemName != "cable" {
			t.Fatalf("unexpected bom: %+v", bom)
		}
	})

	t.Run("general ignores items and uses fixed price", func(t *testing.T) {
		bom, err := ComputeBOM(BOMInput{
			ServiceType:       BOMServiceTypeGeneral,
			MaterialItems:     []MaterialItem{{ItemName: "x", Qty: d("1"), UnitPrice: d("9")}},
			ServiceCharge:     dp("1"),
			AdditionalCharges: dp("50"),
			TaxPercentage:     dp("5"),
		}, d("450"), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bom.MaterialItems) != 0 || !bom.ServiceCharge.Equal(d("450")) {
			t.Fatalf("unexpected bom: %+v", bom)
		}
		if !bom.Subtotal.Equal(d("500")) || !bom.TaxAmount.Equal(d("25")) || !bom.TotalPayable.Equal(d("525")) {
			t.Fatalf("unexpected totals: %s %s %s", bom.Subtotal, bom.TaxAmount, bom.TotalPayable)
		}
	})

	t.Run("tax rounds half up to two places", func(t *testing.T) {
		bom, err := ComputeBOM(BOMInput{
			ServiceType:   BOMServiceTypeCustom,
			ServiceCharge: dp("10.05"),
			TaxPercentage: dp("10"),
		}, decimal.Zero, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bom.TaxAmount.Equal(d("1.01")) || !bom.TotalPayable.Equal(d("11.06")) {
			t.Fatalf("unexpected rounding: %s %s", bom.TaxAmount, bom.TotalPayable)
		}
	})

	t.Run("invalid service type", func(t *testing.T) {
		_, err := ComputeBOM(BOMInput{ServiceType: "fixed"}, decimal.Zero, now)
		if !errors.Is(err, ErrInvalidBOMServiceType) {
			t.Fatalf("expected ErrInvalidBOMServiceType, got %v", err)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := ComputeBOM(BOMInput{
			ServiceType:   BOMServiceTypeCustom,
			MaterialItems: []MaterialItem{{Qty: d("-1"), UnitPrice: d("1")}},
		}, decimal.Zero, now)
		if !errors.Is(err, ErrInvalidBOMAmount) {
			t.Fatalf("expected ErrInvalidBOMAmount, got %v", err)
		}
	})
}

func TestBOM_ApproveReject(t *testing.T) {
	now := time.Now().UTC()
	var b BOM
	b.Reject("  ")
	if b.BOMStatus != BOMStatusRejected || b.RejectionReason != DefaultRejectionReason {
		t.Fatalf("unexpected rejected bom: %+v", b)
	}
	b.Approve("admin-1", now)
	if b.BOMStatus != BOMStatusApproved || b.BOMApprovedBy != "admin-1" || b.BOMApprovedAt == nil || b.RejectionReason != "" {
		t.Fatalf("unexpected approved bom: %+v", b)
	}
	b.Reject("too expensive")
	if b.BOMApprovedBy != "" || b.BOMApprovedAt != nil || b.RejectionReason != "too expensive" {
		t.Fatalf("unexpected re-rejected bom: %+v", b)
	}
}
