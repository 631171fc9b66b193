package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"backend/internal/domain"
	"backend/internal/finance"
	"backend/internal/repositories"

	"github.com/xuri/excelize/v2"
)

func sampleTravels() []finance.Travel {
	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	return []finance.Travel{
		{
			ID: 1, TravelCode: "T-001", Destination: "Liberia", TravelDate: date,
			NoIVAmount: 170000, WithIVAmount: 192100, IVAmount: 22100,
			TruckName: "Freightliner", ClientName: "Grupo Pumas",
			Expenses: []finance.Expense{{Name: "peaje", Amount: 1500, Date: date}},
		},
		{
			ID: 2, TravelCode: "T-002", Destination: "San José", TravelDate: date.AddDate(0, 0, 1),
			NoIVAmount: 80000, WithIVAmount: 90400, IVAmount: 10400,
			ClientName: "Grupo Pumas",
		},
	}
}

func TestGenerateInternalReportPDF(t *testing.T) {
	svc := ReportsService{
		TravelsLoader: func(f repositories.TravelReportFilter) ([]finance.Travel, error) {
			return sampleTravels(), nil
		},
	}

	pdf, filename, err := svc.GenerateInternalReport(InternalReportFilter{
		From: "2025-01-04", To: "2025-01-10",
	})
	if err != nil {
		t.Fatalf("GenerateInternalReport returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateInternalReport returned empty document")
	}
	if !strings.HasPrefix(filename, "Reporte_Transportes_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestGenerateInternalReportEmptyWindow(t *testing.T) {
	svc := ReportsService{
		TravelsLoader: func(f repositories.TravelReportFilter) ([]finance.Travel, error) {
			return nil, nil
		},
	}

	_, _, err := svc.GenerateInternalReport(InternalReportFilter{
		From: "2025-01-04", To: "2025-01-10",
	})
	if !finance.IsEmptyResult(err) {
		t.Fatalf("expected empty-result error, got %v", err)
	}
	if err.Error() != "No existen transportes en las fechas seleccionadas" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestGenerateInternalReportRejectsBadWindow(t *testing.T) {
	svc := ReportsService{
		TravelsLoader: func(f repositories.TravelReportFilter) ([]finance.Travel, error) {
			t.Fatal("loader should not run with an invalid window")
			return nil, nil
		},
	}

	_, _, err := svc.GenerateInternalReport(InternalReportFilter{From: "no-es-fecha", To: "2025-01-10"})
	if !finance.IsInvalidWindow(err) {
		t.Fatalf("expected invalid-window error, got %v", err)
	}
}

func TestGenerateExternalReportRequiresClient(t *testing.T) {
	svc := ReportsService{}
	_, _, err := svc.GenerateExternalReport(ExternalReportFilter{From: "2025-01-04", To: "2025-01-10"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGenerateExternalReportPDF(t *testing.T) {
	svc := ReportsService{
		TravelsLoader: func(f repositories.TravelReportFilter) ([]finance.Travel, error) {
			if f.ClientID != 3 {
				t.Fatalf("client filter not forwarded, got %d", f.ClientID)
			}
			return sampleTravels(), nil
		},
	}

	pdf, _, err := svc.GenerateExternalReport(ExternalReportFilter{
		From: "2025-01-04", To: "2025-01-10", ClientID: 3,
	})
	if err != nil {
		t.Fatalf("GenerateExternalReport returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateExternalReport returned empty document")
	}
}

func TestGeneratePendingInvoicesPDFEmpty(t *testing.T) {
	svc := ReportsService{
		InvoicesLoader: func(clientID int64) ([]finance.InvoiceRecord, error) {
			return nil, nil
		},
	}

	_, _, err := svc.GeneratePendingInvoicesPDF(3)
	if !finance.IsEmptyResult(err) {
		t.Fatalf("expected empty-result error, got %v", err)
	}
}

// The spreadsheet keeps working with zero pending invoices; only the PDF
// path treats that as an error.
func TestGeneratePendingInvoicesXLSXEmptyStillBuilds(t *testing.T) {
	svc := ReportsService{
		InvoicesLoader: func(clientID int64) ([]finance.InvoiceRecord, error) {
			return nil, nil
		},
	}

	book, filename, err := svc.GeneratePendingInvoicesXLSX(3)
	if err != nil {
		t.Fatalf("GeneratePendingInvoicesXLSX returned error: %v", err)
	}
	if len(book) == 0 {
		t.Fatalf("empty spreadsheet output")
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Fatalf("unexpected filename %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(book))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	total, err := f.GetCellValue(pendingSheet, "B7")
	if err != nil {
		t.Fatalf("reading total cell: %v", err)
	}
	if total != "₡ 0" {
		t.Fatalf("expected zero total, got %q", total)
	}
}

func TestGeneratePendingInvoicesXLSXRows(t *testing.T) {
	date := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	svc := ReportsService{
		InvoicesLoader: func(clientID int64) ([]finance.InvoiceRecord, error) {
			return []finance.InvoiceRecord{
				{InvoiceNumber: "F-100", InvoiceAmount: 250000, InvoiceDate: date, DueDate: date.AddDate(0, 1, 0)},
				{InvoiceNumber: "F-101", InvoiceAmount: 32500, InvoiceDate: date, DueDate: date.AddDate(0, 1, 0)},
			}, nil
		},
	}

	book, _, err := svc.GeneratePendingInvoicesXLSX(3)
	if err != nil {
		t.Fatalf("GeneratePendingInvoicesXLSX returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(book))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	checks := map[string]string{
		"B7":  "₡ 282.500",
		"B10": "#Factura",
		"B11": "F-100",
		"D11": "10/02/2025",
		"F11": "₡ 250.000",
		"B12": "F-101",
	}
	for cell, want := range checks {
		got, err := f.GetCellValue(pendingSheet, cell)
		if err != nil {
			t.Fatalf("reading %s: %v", cell, err)
		}
		if got != want {
			t.Fatalf("cell %s = %q, want %q", cell, got, want)
		}
	}
}
