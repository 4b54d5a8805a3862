// Package export renders order documents as spreadsheets.
package export

import (
	"errors"
	"fmt"

	"service_inventory/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const bomSheet = "BOM"

var ErrNoBOM = errors.New("order has no bill of materials")

// WorkbookRenderer serializes BOM workbooks to xlsx bytes.
type WorkbookRenderer struct{}

func NewWorkbookRenderer() WorkbookRenderer { return WorkbookRenderer{} }

func (WorkbookRenderer) RenderBOM(o entities.Order) ([]byte, string, error) {
	f, name, err := BOMWorkbook(o)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), name, nil
}

// BOMWorkbook renders the order's bill of materials: one row per material
// line followed by the charge and tax summary. It returns the workbook and
// a suggested file name.
func BOMWorkbook(o entities.Order) (*excelize.File, string, error) {
	bom := o.BillOfMaterial
	if bom == nil {
		return nil, "", ErrNoBOM
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", bomSheet); err != nil {
		return nil, "", err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	boldStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	f.SetCellValue(bomSheet, "A1", "Order")
	f.SetCellValue(bomSheet, "B1", o.OrderID)
	f.SetCellValue(bomSheet, "A2", "Service")
	f.SetCellValue(bomSheet, "B2", o.ServiceName)
	f.SetCellValue(bomSheet, "A3", "Status")
	f.SetCellValue(bomSheet, "B3", string(bom.BOMStatus))
	f.SetCellStyle(bomSheet, "A1", "A3", boldStyle)

	headers := []string{"#", "Item", "Qty", "Unit Price", "Line Total"}
	const headerRow = 5
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s%d", col, headerRow)
		f.SetCellValue(bomSheet, cell, h)
		f.SetCellStyle(bomSheet, cell, cell, headerStyle)
	}

	row := headerRow + 1
	for i, item := range bom.MaterialItems {
		f.SetCellValue(bomSheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(bomSheet, fmt.Sprintf("B%d", row), item.ItemName)
		f.SetCellValue(bomSheet, fmt.Sprintf("C%d", row), item.Qty.InexactFloat64())
		f.SetCellValue(bomSheet, fmt.Sprintf("D%d", row), item.UnitPrice.InexactFloat64())
		f.SetCellValue(bomSheet, fmt.Sprintf("E%d", row), item.LineTotal().InexactFloat64())
		row++
	}

	row++
	summary := []struct {
		label string
		value float64
	}{
		{"Material Cost", bom.MaterialCost.InexactFloat64()},
		{"Service Charge", bom.ServiceCharge.InexactFloat64()},
		{"Additional Charges", bom.AdditionalCharges.InexactFloat64()},
		{"Subtotal", bom.Subtotal.InexactFloat64()},
		{fmt.Sprintf("Tax (%s%%)", bom.TaxPercentage.String()), bom.TaxAmount.InexactFloat64()},
		{"Total Payable", bom.TotalPayable.InexactFloat64()},
	}
	for _, s := range summary {
		f.SetCellValue(bomSheet, fmt.Sprintf("D%d", row), s.label)
		f.SetCellValue(bomSheet, fmt.Sprintf("E%d", row), s.value)
		row++
	}
	f.SetCellStyle(bomSheet, fmt.Sprintf("D%d", row-1), fmt.Sprintf("E%d", row-1), boldStyle)

	widths := []float64{6, 36, 10, 16, 16}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(bomSheet, col, col, w)
	}

	return f, fmt.Sprintf("BOM_%s.xlsx", o.OrderID), nil
}
