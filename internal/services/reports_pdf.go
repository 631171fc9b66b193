package services

import (
	"bytes"
	"fmt"
	"strings"

	"backend/internal/finance"
	"backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// The report PDFs share one A4 layout: a centered title block with the
// business name, then the content sections. Core fonts are cp1252, so every
// string goes through the page translator.

func newReportPDF(title string) (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetMargins(10, 20, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, tr("Transportes Diaz"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr("Amelia Maria Diaz Baltodano"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	return pdf, tr
}

func pdfBytes(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// currency renders amounts for PDF cells. The colón sign is outside cp1252,
// so here it is plain "CRC"; the XLSX keeps the real sign.
func currency(v int64) string {
	return strings.Replace(utils.FormatColones(v), "₡", "CRC", 1)
}

func buildInternalReportPDF(d finance.InternalReportData) ([]byte, error) {
	pdf, tr := newReportPDF("Reporte de Transportes")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Del %s al %s", d.StartDate, d.EndDate)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, group := range d.TravelsByTruck {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(0, 8, tr(group.TruckName), "1", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "B", 9)
		travelTableHeader(pdf, tr)

		pdf.SetFont("Helvetica", "", 9)
		for _, t := range group.Travels {
			pdf.CellFormat(22, 6, tr(finance.FormatReportDate(t.TravelDate)), "1", 0, "C", false, 0, "")
			pdf.CellFormat(24, 6, tr(t.TravelCode), "1", 0, "L", false, 0, "")
			pdf.CellFormat(56, 6, tr(t.Destination), "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, tr(currency(t.NoIVAmount)), "1", 0, "R", false, 0, "")
			pdf.CellFormat(28, 6, tr(currency(t.IVAmount)), "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 6, tr(currency(t.WithIVAmount)), "1", 1, "R", false, 0, "")
		}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(102, 6, tr("Totales"), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, tr(currency(group.Totals.TotalNoIVAmount)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, tr(currency(group.Totals.TotalIVAmount)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, tr(currency(group.Totals.TotalWithIVAmount)), "1", 1, "R", false, 0, "")

		pdf.CellFormat(102, 6, tr("Gastos"), "1", 0, "R", false, 0, "")
		pdf.CellFormat(88, 6, tr(currency(group.TotalExpenses)), "1", 1, "R", false, 0, "")
		pdf.CellFormat(102, 6, tr("Restante"), "1", 0, "R", false, 0, "")
		pdf.CellFormat(88, 6, tr(currency(group.RemainingAmount)), "1", 1, "R", false, 0, "")
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, tr("Resumen General"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	summary := []struct {
		label string
		value int64
	}{
		{"Total sin IVA", d.Totals.TotalNoIVAmount},
		{"Total IVA", d.Totals.TotalIVAmount},
		{"Total con IVA", d.Totals.TotalWithIVAmount},
		{"Total de gastos", d.Totals.TotalExpenses},
		{"Ingreso neto", d.Totals.NetIncome},
	}
	for _, row := range summary {
		pdf.CellFormat(60, 6, tr(row.label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, tr(currency(row.value)), "1", 1, "R", false, 0, "")
	}

	return pdfBytes(pdf)
}

func travelTableHeader(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.CellFormat(22, 6, tr("Fecha"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(24, 6, tr("Código"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(56, 6, tr("Destino"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, tr("Sin IVA"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(28, 6, tr("IVA"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, tr("Con IVA"), "1", 1, "C", false, 0, "")
}

func buildExternalReportPDF(d finance.ExternalReportData) ([]byte, error) {
	pdf, tr := newReportPDF("Reporte de Transportes")

	client := ""
	if len(d.Travels) > 0 {
		client = d.Travels[0].ClientName
	}
	pdf.SetFont("Helvetica", "", 11)
	if client != "" {
		pdf.CellFormat(0, 6, tr("Cliente: "+client), "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Del %s al %s", d.StartDate, d.EndDate)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	travelTableHeader(pdf, tr)

	pdf.SetFont("Helvetica", "", 9)
	for _, t := range d.Travels {
		pdf.CellFormat(22, 6, tr(finance.FormatReportDate(t.TravelDate)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(24, 6, tr(t.TravelCode), "1", 0, "L", false, 0, "")
		pdf.CellFormat(56, 6, tr(t.Destination), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, tr(currency(t.NoIVAmount)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, tr(currency(t.IVAmount)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, tr(currency(t.WithIVAmount)), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(102, 6, tr("Totales"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, tr(currency(d.Totals.TotalNoIVAmount)), "1", 0, "R", false, 0, "")
	pdf.CellFormat(28, 6, tr(currency(d.Totals.TotalIVAmount)), "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, tr(currency(d.Totals.TotalWithIVAmount)), "1", 1, "R", false, 0, "")

	return pdfBytes(pdf)
}

func buildPendingInvoicesPDF(d finance.PendingInvoicesData) ([]byte, error) {
	pdf, tr := newReportPDF("Facturas Pendientes")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, tr("Total Pendiente: "+currency(d.Total)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(34, 6, tr("#Factura"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, tr("Concepto"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(33, 6, tr("Emisión"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(33, 6, tr("Vencimiento"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, tr("Monto Pendiente"), "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, inv := range d.Invoices {
		pdf.CellFormat(34, 6, tr(inv.InvoiceNumber), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, tr("Transportes Varios"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(33, 6, tr(finance.FormatReportDate(inv.InvoiceDate)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(33, 6, tr(finance.FormatReportDate(inv.DueDate)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, tr(currency(inv.InvoiceAmount)), "1", 1, "R", false, 0, "")
	}

	return pdfBytes(pdf)
}
