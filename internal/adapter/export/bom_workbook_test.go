package export

import (
	"errors"
	"testing"
	"time"

	"service_inventory/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestBOMWorkbook(t *testing.T) {
	charge := decimal.NewFromInt(100)
	bom, err := entities.ComputeBOM(entities.BOMInput{
		ServiceType: entities.BOMServiceTypeCustom,
		MaterialItems: []entities.MaterialItem{
			{ItemName: "MCB 32A", Qty: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(500)},
		},
		ServiceCharge: &charge,
	}, decimal.Zero, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o := entities.Order{OrderID: "ORD-2025-01", ServiceName: "Wiring", BillOfMaterial: &bom}

	f, name, err := BOMWorkbook(o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "BOM_ORD-2025-01.xlsx" {
		t.Fatalf("unexpected file name %q", name)
	}

	item, _ := f.GetCellValue(bomSheet, "B6")
	if item != "MCB 32A" {
		t.Fatalf("expected first item in B6, got %q", item)
	}
	label, _ := f.GetCellValue(bomSheet, "D13")
	total, _ := f.GetCellValue(bomSheet, "E13")
	if label != "Total Payable" || total != "1298" {
		t.Fatalf("unexpected total row: %q=%q", label, total)
	}
}

func TestBOMWorkbook_NoBOM(t *testing.T) {
	if _, _, err := BOMWorkbook(entities.Order{OrderID: "ORD-2025-02"}); !errors.Is(err, ErrNoBOM) {
		t.Fatalf("expected ErrNoBOM, got %v", err)
	}
}

func TestWorkbookRenderer_RenderBOM(t *testing.T) {
	bom, err := entities.ComputeBOM(entities.BOMInput{ServiceType: entities.BOMServiceTypeGeneral}, decimal.NewFromInt(450), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, name, err := NewWorkbookRenderer().RenderBOM(entities.Order{OrderID: "ORD-2025-03", BillOfMaterial: &bom})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "BOM_ORD-2025-03.xlsx" || len(b) == 0 {
		t.Fatalf("unexpected output name=%q len=%d", name, len(b))
	}
	// xlsx files are zip archives.
	if string(b[:2]) != "PK" {
		t.Fatalf("expected zip signature, got %q", b[:2])
	}
}
