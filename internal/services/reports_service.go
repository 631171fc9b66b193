package services

import (
	"fmt"
	"time"

	"backend/internal/domain"
	"backend/internal/finance"
	"backend/internal/repositories"
	"backend/internal/utils"
)

// ReportsService produce los reportes PDF y XLSX del negocio.
type ReportsService struct {
	TravelsRepo  repositories.TravelsRepository
	InvoicesRepo repositories.InvoicesRepository
	RequestID    string

	// Loaders replace the repository fetches in tests.
	TravelsLoader  func(repositories.TravelReportFilter) ([]finance.Travel, error)
	InvoicesLoader func(clientID int64) ([]finance.InvoiceRecord, error)
}

// InternalReportFilter narrows the internal report to a truck, client or
// driver; only the window is mandatory.
type InternalReportFilter struct {
	From       string `json:"from"`
	To         string `json:"to"`
	TruckPlate string `json:"truckPlate"`
	ClientID   int64  `json:"clientId"`
	DriverID   int64  `json:"driverId"`
}

// ExternalReportFilter scopes the client-facing report.
type ExternalReportFilter struct {
	From     string `json:"from"`
	To       string `json:"to"`
	ClientID int64  `json:"clientId"`
}

// GenerateInternalReport builds the per-truck PDF with expenses and running
// remainders. Returns the document bytes and its download filename.
func (s ReportsService) GenerateInternalReport(filter InternalReportFilter) ([]byte, string, error) {
	window, err := finance.ParseWindow(filter.From, filter.To)
	if err != nil {
		return nil, "", err
	}

	travels, err := s.loadTravels(repositories.TravelReportFilter{
		Window:     window,
		ClientID:   filter.ClientID,
		DriverID:   filter.DriverID,
		TruckPlate: filter.TruckPlate,
	})
	if err != nil {
		return nil, "", domain.InternalError{Msg: "Error al generar el reporte", Err: err}
	}

	summary, err := finance.GroupByTruck(travels)
	if err != nil {
		return nil, "", err
	}

	data := finance.AssembleInternalReport(summary, window)
	utils.LogEvent(s.RequestID, "reports", "internal",
		fmt.Sprintf("travels=%d groups=%d", len(travels), len(data.TravelsByTruck)))

	pdf, err := buildInternalReportPDF(data)
	if err != nil {
		return nil, "", err
	}
	return pdf, ReportFileName("Reporte_Transportes", time.Now()), nil
}

// GenerateExternalReport builds the client-facing PDF: travel amounts only,
// no expenses or remainders.
func (s ReportsService) GenerateExternalReport(filter ExternalReportFilter) ([]byte, string, error) {
	if filter.ClientID <= 0 {
		return nil, "", domain.ValidationError{Msg: "Seleccione el cliente para generar el reporte"}
	}

	window, err := finance.ParseWindow(filter.From, filter.To)
	if err != nil {
		return nil, "", err
	}

	travels, err := s.loadTravels(repositories.TravelReportFilter{
		Window:   window,
		ClientID: filter.ClientID,
	})
	if err != nil {
		return nil, "", domain.InternalError{Msg: "Error al generar el reporte", Err: err}
	}

	totals, err := finance.ExternalTotals(travels)
	if err != nil {
		return nil, "", err
	}

	data := finance.AssembleExternalReport(travels, totals, window)
	utils.LogEvent(s.RequestID, "reports", "external",
		fmt.Sprintf("client=%d travels=%d", filter.ClientID, len(travels)))

	pdf, err := buildExternalReportPDF(data)
	if err != nil {
		return nil, "", err
	}
	return pdf, ReportFileName("Reporte_Transportes", time.Now()), nil
}

// GeneratePendingInvoicesPDF lists the unpaid, non-voided invoices of a
// client. Fails when there is nothing pending.
func (s ReportsService) GeneratePendingInvoicesPDF(clientID int64) ([]byte, string, error) {
	if clientID <= 0 {
		return nil, "", domain.ValidationError{Msg: "Seleccione el cliente para generar el reporte"}
	}

	invoices, err := s.loadPendingInvoices(clientID)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "Error al generar el reporte", Err: err}
	}
	if len(invoices) == 0 {
		return nil, "", finance.EmptyResultError{Msg: "No existen facturas en las fechas seleccionadas"}
	}

	data := finance.AssemblePendingInvoices(invoices, finance.SumInvoiceAmounts(invoices))
	utils.LogEvent(s.RequestID, "reports", "pending_invoices_pdf",
		fmt.Sprintf("client=%d invoices=%d", clientID, len(invoices)))

	pdf, err := buildPendingInvoicesPDF(data)
	if err != nil {
		return nil, "", err
	}
	return pdf, ReportFileName("Facturas_Pendientes", time.Now()), nil
}

// GeneratePendingInvoicesXLSX is the spreadsheet twin of the PDF above. A
// client with nothing pending still gets a sheet, just with no rows.
func (s ReportsService) GeneratePendingInvoicesXLSX(clientID int64) ([]byte, string, error) {
	if clientID <= 0 {
		return nil, "", domain.ValidationError{Msg: "Seleccione el cliente para generar el reporte"}
	}

	invoices, err := s.loadPendingInvoices(clientID)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "Error al generar el reporte", Err: err}
	}

	data := finance.AssemblePendingInvoices(invoices, finance.SumInvoiceAmounts(invoices))
	utils.LogEvent(s.RequestID, "reports", "pending_invoices_xlsx",
		fmt.Sprintf("client=%d invoices=%d", clientID, len(invoices)))

	book, err := buildPendingInvoicesXLSX(data)
	if err != nil {
		return nil, "", err
	}
	return book, SpreadsheetFileName("Facturas_Pendientes", time.Now()), nil
}

func (s ReportsService) loadTravels(f repositories.TravelReportFilter) ([]finance.Travel, error) {
	if s.TravelsLoader != nil {
		return s.TravelsLoader(f)
	}
	return s.TravelsRepo.ListForReport(f)
}

func (s ReportsService) loadPendingInvoices(clientID int64) ([]finance.InvoiceRecord, error) {
	if s.InvoicesLoader != nil {
		return s.InvoicesLoader(clientID)
	}
	return s.InvoicesRepo.ListPending(clientID)
}

// ReportFileName stamps the download name with today's date, UTC.
func ReportFileName(prefix string, date time.Time) string {
	return fmt.Sprintf("%s_%s.pdf", prefix, finance.FormatReportDate(date))
}

func SpreadsheetFileName(prefix string, date time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, finance.FormatReportDate(date))
}
