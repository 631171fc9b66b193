package services

import (
	"bytes"
	"fmt"

	"backend/internal/finance"
	"backend/internal/utils"

	"github.com/xuri/excelize/v2"
)

const pendingSheet = "Pendientes"

// buildPendingInvoicesXLSX lays out the pending-invoices worksheet: a title
// block in column B, the highlighted total at rows 6 and 7, the table header
// at row 10 and one row per invoice below it.
func buildPendingInvoicesXLSX(d finance.PendingInvoicesData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(pendingSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	titles := map[string]string{
		"B2": "Facturas de Transportes",
		"B3": "Amelia Maria Diaz Baltodano",
		"B4": "Transportes Diaz",
		"B6": "Total Pendiente",
		"B7": utils.FormatColones(d.Total),
	}
	for cell, value := range titles {
		if err := f.SetCellValue(pendingSheet, cell, value); err != nil {
			return nil, err
		}
	}

	highlight, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFF2CC"}},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(pendingSheet, "B6", "B7", highlight); err != nil {
		return nil, err
	}

	header := []string{"#Factura", "Concepto", "Fecha de emision", "Fecha de vencimiento", "Monto Pendiente"}
	for i, title := range header {
		cell, _ := excelize.CoordinatesToCellName(i+2, 10)
		if err := f.SetCellValue(pendingSheet, cell, title); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(pendingSheet, "B10", "F10", headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(pendingSheet, "B", "F", 30); err != nil {
		return nil, err
	}

	for i, inv := range d.Invoices {
		row := 11 + i
		values := []any{
			inv.InvoiceNumber,
			"Transportes Varios",
			finance.FormatReportDate(inv.InvoiceDate),
			finance.FormatReportDate(inv.DueDate),
			utils.FormatColones(inv.InvoiceAmount),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+2, row)
			if err := f.SetCellValue(pendingSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("escribiendo hoja de cálculo: %w", err)
	}
	return buf.Bytes(), nil
}
