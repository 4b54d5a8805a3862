package request

import (
	"service_inventory/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MaterialItemRequest accepts amounts as JSON numbers or numeric strings.
type MaterialItemRequest struct {
	ItemName  string          `json:"item_name" binding:"required"`
	Qty       decimal.Decimal `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type BOMRequest struct {
	ServiceType       string                `json:"service_type" binding:"required"`
	MaterialItems     []MaterialItemRequest `json:"material_items"`
	ServiceCharge     *decimal.Decimal      `json:"service_charge"`
	AdditionalCharges *decimal.Decimal      `json:"additional_charges"`
	TaxPercentage     *decimal.Decimal      `json:"tax_percentage"`
}

func (r BOMRequest) ToInput() entities.BOMInput {
	items := make([]entities.MaterialItem, 0, len(r.MaterialItems))
	for _, it := range r.MaterialItems {
		items = append(items, entities.MaterialItem{
			ItemName:  it.ItemName,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
		})
	}
	return entities.BOMInput{
		ServiceType:       entities.BOMServiceType(r.ServiceType),
		MaterialItems:     items,
		ServiceCharge:     r.ServiceCharge,
		AdditionalCharges: r.AdditionalCharges,
		TaxPercentage:     r.TaxPercentage,
	}
}

type BOMStatusRequest struct {
	BOMStatus       string `json:"bom_status" binding:"required"`
	RejectionReason string `json:"rejection_reason"`
}
