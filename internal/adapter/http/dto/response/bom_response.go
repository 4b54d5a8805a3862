package response

import (
	"time"

	"service_inventory/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type MaterialItemResponse struct {
	ItemName  string  `json:"item_name"`
	Qty       float64 `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// BOMResponse renders BOM amounts as JSON numbers.
type BOMResponse struct {
	ServiceType       string                 `json:"service_type"`
	MaterialItems     []MaterialItemResponse `json:"material_items"`
	MaterialCost      float64                `json:"material_cost"`
	ServiceCharge     float64                `json:"service_charge"`
	AdditionalCharges float64                `json:"additional_charges"`
	Subtotal          float64                `json:"subtotal"`
	TaxPercentage     float64                `json:"tax_percentage"`
	TaxAmount         float64                `json:"tax_amount"`
	TotalPayable      float64                `json:"total_payable"`
	GeneratedAt       time.Time              `json:"generated_at"`

	BOMStatus       string     `json:"bom_status"`
	BOMApprovedBy   string     `json:"bom_approved_by,omitempty"`
	BOMApprovedAt   *time.Time `json:"bom_approved_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
}

func FromBOM(b *entities.BOM) *BOMResponse {
	if b == nil {
		return nil
	}
	items := make([]MaterialItemResponse, 0, len(b.MaterialItems))
	for _, it := range b.MaterialItems {
		items = append(items, MaterialItemResponse{
			ItemName:  it.ItemName,
			Qty:       money(it.Qty),
			UnitPrice: money(it.UnitPrice),
			LineTotal: money(it.LineTotal()),
		})
	}
	return &BOMResponse{
		ServiceType:       string(b.ServiceType),
		MaterialItems:     items,
		MaterialCost:      money(b.MaterialCost),
		ServiceCharge:     money(b.ServiceCharge),
		AdditionalCharges: money(b.AdditionalCharges),
		Subtotal:          money(b.Subtotal),
		TaxPercentage:     money(b.TaxPercentage),
		TaxAmount:         money(b.TaxAmount),
		TotalPayable:      money(b.TotalPayable),
		GeneratedAt:       b.GeneratedAt,
		BOMStatus:         string(b.BOMStatus),
		BOMApprovedBy:     b.BOMApprovedBy,
		BOMApprovedAt:     b.BOMApprovedAt,
		RejectionReason:   b.RejectionReason,
	}
}

func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
