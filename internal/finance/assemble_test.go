package finance

import (
	"testing"
	"time"
)

func TestAssembleInternalReport(t *testing.T) {
	travels := []Travel{travelFor("Kenworth", 100, 113, 13)}
	summary, err := GroupByTruck(travels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := WeekOf(time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC))
	data := AssembleInternalReport(summary, w)

	if data.StartDate != "04/01/2025" || data.EndDate != "10/01/2025" {
		t.Fatalf("dates = %q..%q", data.StartDate, data.EndDate)
	}
	if len(data.TravelsByTruck) != 1 || data.Totals != summary.Totals {
		t.Fatalf("assembly altered engine output: %+v", data)
	}
}

func TestAssemblePendingInvoicesKeepsGivenTotal(t *testing.T) {
	invoices := []InvoiceRecord{{InvoiceAmount: 100}, {InvoiceAmount: 200}}
	data := AssemblePendingInvoices(invoices, SumInvoiceAmounts(invoices))
	if data.Total != 300 || len(data.Invoices) != 2 {
		t.Fatalf("data = %+v", data)
	}
}

func TestFormatReportDateUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC-6", -6*3600)
	// 2025-01-01 20:00 UTC-6 is already 2025-01-02 in UTC.
	got := FormatReportDate(time.Date(2025, 1, 1, 20, 0, 0, 0, loc))
	if got != "02/01/2025" {
		t.Fatalf("formatted = %q, want 02/01/2025", got)
	}
}
