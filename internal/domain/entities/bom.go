package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type BOMServiceType string

const (
	BOMServiceTypeGeneral BOMServiceType = "general"
	BOMServiceTypeCustom  BOMServiceType = "custom"
)

type BOMStatus string

const (
	BOMStatusPending  BOMStatus = "Pending"
	BOMStatusApproved BOMStatus = "Approved"
	BOMStatusRejected BOMStatus = "Rejected"
)

// DefaultTaxPercentage applies when the caller sends no tax.
var DefaultTaxPercentage = decimal.NewFromInt(18)

// DefaultRejectionReason is stored when a BOM is rejected without a reason.
const DefaultRejectionReason = "No reason provided"

type MaterialItem struct {
	ItemName  string          `json:"item_name"`
	Qty       decimal.Decimal `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineTotal is qty * unitPrice.
func (m MaterialItem) LineTotal() decimal.Decimal {
	return m.Qty.Mul(m.UnitPrice)
}

// BOM is the bill of materials attached to an order. Exactly one exists per
// order at a time and it is replaced wholesale.
type BOM struct {
	ServiceType       BOMServiceType  `json:"service_type"`
	MaterialItems     []MaterialItem  `json:"material_items"`
	MaterialCost      decimal.Decimal `json:"material_cost"`
	ServiceCharge     decimal.Decimal `json:"service_charge"`
	AdditionalCharges decimal.Decimal `json:"additional_charges"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	TaxPercentage     decimal.Decimal `json:"tax_percentage"`
	TaxAmount         decimal.Decimal `json:"tax_amount"`
	TotalPayable      decimal.Decimal `json:"total_payable"`
	GeneratedAt       time.Time       `json:"generated_at"`

	BOMStatus       BOMStatus  `json:"bom_status"`
	BOMApprovedBy   string     `json:"bom_approved_by,omitempty"`
	BOMApprovedAt   *time.Time `json:"bom_approved_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
}

// BOMInput carries the caller-supplied values of a BOM computation.
type BOMInput struct {
	ServiceType       BOMServiceType
	MaterialItems     []MaterialItem
	ServiceCharge     *decimal.Decimal
	AdditionalCharges *decimal.Decimal
	TaxPercentage     *decimal.Decimal
}

// ComputeBOM builds a pending BOM.
//
//	subtotal     = materialCost + serviceCharge + additionalCharges
//	taxAmount    = round2(subtotal * taxPercentage / 100)
//	totalPayable = subtotal + taxAmount
//
// For general services the material list is always empty and the service
// charge is the order's fixed price.
func ComputeBOM(in BOMInput, fixedPrice decimal.Decimal, now time.Time) (BOM, error) {
	tax := DefaultTaxPercentage
	if in.TaxPercentage != nil {
		tax = *in.TaxPercentage
	}
	if tax.IsNegative() {
		return BOM{}, ErrInvalidTaxPercentage
	}
	additional := decimal.Zero
	if in.AdditionalCharges != nil {
		additional = *in.AdditionalCharges
	}
	if additional.IsNegative() {
		return BOM{}, ErrInvalidBOMAmount
	}

	bom := BOM{
		ServiceType:       in.ServiceType,
		MaterialItems:     []MaterialItem{},
		AdditionalCharges: additional,
		TaxPercentage:     tax,
		GeneratedAt:       now,
		BOMStatus:         BOMStatusPending,
	}

	switch in.ServiceType {
	case BOMServiceTypeGeneral:
		bom.MaterialCost = decimal.Zero
		bom.ServiceCharge = fixedPrice
	case BOMServiceTypeCustom:
		cost := decimal.Zero
		for _, it := range in.MaterialItems {
			if it.Qty.IsNegative() || it.UnitPrice.IsNegative() {
				return BOM{}, ErrInvalidBOMAmount
			}
			cost = cost.Add(it.LineTotal())
			bom.MaterialItems = append(bom.MaterialItems, MaterialItem{
				ItemName:  strings.TrimSpace(it.ItemName),
				Qty:       it.Qty,
				UnitPrice: it.UnitPrice,
			})
		}
		bom.MaterialCost = cost
		bom.ServiceCharge = decimal.Zero
		if in.ServiceCharge != nil {
			bom.ServiceCharge = *in.ServiceCharge
		}
		if bom.ServiceCharge.IsNegative() {
			return BOM{}, ErrInvalidBOMAmount
		}
	default:
		return BOM{}, ErrInvalidBOMServiceType
	}

	bom.Subtotal = bom.MaterialCost.Add(bom.ServiceCharge).Add(bom.AdditionalCharges)
	bom.TaxAmount = bom.Subtotal.Mul(tax).Div(decimal.NewFromInt(100)).Round(2)
	bom.TotalPayable = bom.Subtotal.Add(bom.TaxAmount)
	return bom, nil
}

// Approve stamps the approver and clears any previous rejection.
func (b *BOM) Approve(by string, now time.Time) {
	t := now
	b.BOMStatus = BOMStatusApproved
	b.BOMApprovedBy = by
	b.BOMApprovedAt = &t
	b.RejectionReason = ""
}

// Reject stores the reason and clears approval metadata.
func (b *BOM) Reject(reason string) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultRejectionReason
	}
	b.BOMStatus = BOMStatusRejected
	b.BOMApprovedBy = ""
	b.BOMApprovedAt = nil
	b.RejectionReason = reason
}
