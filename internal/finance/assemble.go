package finance

import "time"

// Report assembly: packages engine output plus formatted window bounds into
// presentation-neutral structures for the renderer. No totals are computed
// here — everything numeric comes from aggregate.go.

// InternalReportData feeds the internal travels report template.
type InternalReportData struct {
	StartDate      string       `json:"startDate"`
	EndDate        string       `json:"endDate"`
	TravelsByTruck []TruckGroup `json:"travelsByTruck"`
	Totals         ReportTotals `json:"totals"`
}

// ExternalReportData feeds the client-facing travels report template.
type ExternalReportData struct {
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
	Travels   []Travel     `json:"travels"`
	Totals    ClientTotals `json:"totals"`
}

// PendingInvoicesData feeds both the pending-invoices PDF and spreadsheet.
type PendingInvoicesData struct {
	Invoices []InvoiceRecord `json:"invoices"`
	Total    int64           `json:"total"`
}

func AssembleInternalReport(summary *InternalSummary, w Window) InternalReportData {
	return InternalReportData{
		StartDate:      FormatReportDate(w.Start),
		EndDate:        FormatReportDate(w.End),
		TravelsByTruck: summary.Groups,
		Totals:         summary.Totals,
	}
}

func AssembleExternalReport(travels []Travel, totals ClientTotals, w Window) ExternalReportData {
	return ExternalReportData{
		StartDate: FormatReportDate(w.Start),
		EndDate:   FormatReportDate(w.End),
		Travels:   travels,
		Totals:    totals,
	}
}

// AssemblePendingInvoices takes the total already computed by the engine;
// assembly never sums anything on its own.
func AssemblePendingInvoices(invoices []InvoiceRecord, total int64) PendingInvoicesData {
	return PendingInvoicesData{
		Invoices: invoices,
		Total:    total,
	}
}

// FormatReportDate renders DD/MM/YYYY in UTC, the format every report shows.
func FormatReportDate(t time.Time) string {
	return t.UTC().Format("02/01/2006")
}
