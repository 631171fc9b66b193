package services

import (
	"fmt"
	"time"

	"backend/internal/domain"
	"backend/internal/finance"
	"backend/internal/utils"
)

// QuotationService builds quotation PDFs from a caller-supplied payload.
// Nothing is persisted; the client, items and totals all arrive in the body.
type QuotationService struct {
	RequestID string
}

type QuotationClient struct {
	ClientName     string `json:"clientName"`
	ClientEmail    string `json:"clientEmail,omitempty"`
	ClientPhone    string `json:"clientPhone,omitempty"`
	ClientAddress  string `json:"clientDirecction,omitempty"`
	ClientBillerID string `json:"clientBillerId,omitempty"`
}

type QuotationItem struct {
	Description  string `json:"description"`
	NoIVAmount   int64  `json:"noIVAmount"`
	IVAmount     int64  `json:"IVAmount"`
	WithIVAmount int64  `json:"withIVAmount"`
}

type Quotation struct {
	Client       QuotationClient      `json:"client"`
	Items        []QuotationItem      `json:"items"`
	Totals       finance.ClientTotals `json:"totals"`
	Notes        string               `json:"notes"`
	ValidityDays int                  `json:"validityDays"`
}

func (s QuotationService) Generate(q Quotation) ([]byte, string, error) {
	if q.Client.ClientName == "" {
		return nil, "", domain.ValidationError{Msg: "el nombre del cliente es obligatorio"}
	}
	if len(q.Items) == 0 {
		return nil, "", domain.ValidationError{Msg: "la cotización debe incluir al menos un servicio"}
	}
	if q.ValidityDays <= 0 {
		q.ValidityDays = 15
	}

	utils.LogEvent(s.RequestID, "quotation", "generate",
		fmt.Sprintf("client=%s items=%d", q.Client.ClientName, len(q.Items)))

	pdf, err := buildQuotationPDF(q, time.Now())
	if err != nil {
		return nil, "", err
	}
	return pdf, ReportFileName("Cotizacion", time.Now()), nil
}

func buildQuotationPDF(q Quotation, now time.Time) ([]byte, error) {
	pdf, tr := newReportPDF("Cotización")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr("Fecha: "+finance.FormatReportDate(now)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, tr("Cliente"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Nombre: "+q.Client.ClientName), "", 1, "L", false, 0, "")
	if q.Client.ClientBillerID != "" {
		pdf.CellFormat(0, 6, tr("Cédula jurídica: "+q.Client.ClientBillerID), "", 1, "L", false, 0, "")
	}
	if q.Client.ClientEmail != "" {
		pdf.CellFormat(0, 6, tr("Correo: "+q.Client.ClientEmail), "", 1, "L", false, 0, "")
	}
	if q.Client.ClientPhone != "" {
		pdf.CellFormat(0, 6, tr("Teléfono: "+q.Client.ClientPhone), "", 1, "L", false, 0, "")
	}
	if q.Client.ClientAddress != "" {
		pdf.CellFormat(0, 6, tr("Dirección: "+q.Client.ClientAddress), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(90, 6, tr("Descripción"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(34, 6, tr("Sin IVA"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(32, 6, tr("IVA"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(34, 6, tr("Con IVA"), "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range q.Items {
		pdf.CellFormat(90, 6, tr(item.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(34, 6, tr(currency(item.NoIVAmount)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(32, 6, tr(currency(item.IVAmount)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(34, 6, tr(currency(item.WithIVAmount)), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(90, 6, tr("Totales"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(34, 6, tr(currency(q.Totals.TotalNoIVAmount)), "1", 0, "R", false, 0, "")
	pdf.CellFormat(32, 6, tr(currency(q.Totals.TotalIVAmount)), "1", 0, "R", false, 0, "")
	pdf.CellFormat(34, 6, tr(currency(q.Totals.TotalWithIVAmount)), "1", 1, "R", false, 0, "")
	pdf.Ln(6)

	if q.Notes != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, tr("Observaciones"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(q.Notes), "", "L", false)
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf("Cotización válida por %d días a partir de la fecha de emisión.", q.ValidityDays)), "", "L", false)

	return pdfBytes(pdf)
}
