package finance

import (
	"strings"
	"time"
)

// NoTruckLabel groups travels that have no truck assigned.
const NoTruckLabel = "Sin camión"

// TruckBalance is one derived balance row for a truck over a window.
type TruckBalance struct {
	TruckName     string `json:"truckName"`
	TotalTravel   int64  `json:"totalTravel"`
	TotalExpenses int64  `json:"totalExpenses"`
	Balance       int64  `json:"balance"`
}

// GroupTotals accumulates the three travel amounts of one truck group.
type GroupTotals struct {
	TotalNoIVAmount   int64 `json:"totalNoIVAmount"`
	TotalWithIVAmount int64 `json:"totalWithIVAmount"`
	TotalIVAmount     int64 `json:"totalIVAmount"`
}

// TruckGroup collects the travels of one truck in input order together with
// their accumulated totals. RemainingAmount is recomputed after every travel
// folded in; only the final value is meaningful and only that one is exposed.
type TruckGroup struct {
	TruckName       string      `json:"truckName"`
	Travels         []Travel    `json:"travels"`
	Totals          GroupTotals `json:"totals"`
	TotalExpenses   int64       `json:"totalExpenses"`
	RemainingAmount int64       `json:"remainingAmount"`
}

// ReportTotals are the grand totals across every group.
type ReportTotals struct {
	TotalNoIVAmount   int64 `json:"totalNoIVAmount"`
	TotalWithIVAmount int64 `json:"totalWithIVAmount"`
	TotalIVAmount     int64 `json:"totalIVAmount"`
	TotalExpenses     int64 `json:"totalExpenses"`
	NetIncome         int64 `json:"netIncome"`
}

// InternalSummary is the grouped output of the internal report fold. Groups
// keep first-occurrence order of the trucks in the input.
type InternalSummary struct {
	Groups []TruckGroup `json:"travelsByTruck"`
	Totals ReportTotals `json:"totals"`
}

// ClientTotals are the external-report totals: travel amounts only, expenses
// are never shown to clients.
type ClientTotals struct {
	TotalNoIVAmount   int64 `json:"totalNoIVAmount"`
	TotalWithIVAmount int64 `json:"totalWithIVAmount"`
	TotalIVAmount     int64 `json:"totalIVAmount"`
}

// TravelLine is the reduced travel view used by the invoice amount calc.
type TravelLine struct {
	ID           int64  `json:"id"`
	Destination  string `json:"destination"`
	NoIVAmount   int64  `json:"noIVAmount"`
	WithIVAmount int64  `json:"withIVAmount"`
}

// InvoiceAmount sums the invoice-eligible travels of a client over a window.
type InvoiceAmount struct {
	TotalWithoutIVA int64        `json:"totalWithoutIVA"`
	TotalWithIVA    int64        `json:"totalWithIVA"`
	Travels         []TravelLine `json:"travels"`
}

// ExpenseEntry is an ad-hoc expense attached to a travel at creation time,
// before normalization.
type ExpenseEntry struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// BalancePerTruck folds valid travels and non-deleted expenses, both already
// scoped to a window by the record source, into one balance row per truck.
// Trucks without any activity in the window simply never show up; rows keep
// first-occurrence order. Arithmetic is exact int64, no rounding anywhere.
func BalancePerTruck(travels []Travel, expenses []Expense) []TruckBalance {
	index := map[string]int{}
	rows := []TruckBalance{}

	rowFor := func(name string) int {
		if name == "" {
			name = NoTruckLabel
		}
		if i, ok := index[name]; ok {
			return i
		}
		rows = append(rows, TruckBalance{TruckName: name})
		index[name] = len(rows) - 1
		return len(rows) - 1
	}

	for _, t := range travels {
		i := rowFor(t.TruckName)
		rows[i].TotalTravel += t.NoIVAmount
	}
	for _, e := range expenses {
		i := rowFor(e.TruckName)
		rows[i].TotalExpenses += e.Amount
	}

	for i := range rows {
		rows[i].Balance = rows[i].TotalTravel - rows[i].TotalExpenses
	}
	return rows
}

// GroupByTruck folds the travels of an internal report into per-truck groups
// plus grand totals. The input is the full snapshot for the requested filter;
// an empty snapshot is a user-visible "nothing in range" condition, never a
// silent empty report. Caller-owned records are not mutated.
func GroupByTruck(travels []Travel) (*InternalSummary, error) {
	if len(travels) == 0 {
		return nil, EmptyResultError{}
	}

	index := map[string]int{}
	summary := &InternalSummary{Groups: []TruckGroup{}}

	for _, travel := range travels {
		name := travel.TruckName
		if name == "" {
			name = NoTruckLabel
		}

		i, ok := index[name]
		if !ok {
			summary.Groups = append(summary.Groups, TruckGroup{TruckName: name, Travels: []Travel{}})
			i = len(summary.Groups) - 1
			index[name] = i
		}
		group := &summary.Groups[i]

		group.Travels = append(group.Travels, travel)
		group.Totals.TotalNoIVAmount += travel.NoIVAmount
		group.Totals.TotalWithIVAmount += travel.WithIVAmount
		group.Totals.TotalIVAmount += travel.IVAmount

		travelExpenses := sumExpenses(travel.Expenses)
		group.TotalExpenses += travelExpenses

		group.RemainingAmount = group.Totals.TotalNoIVAmount - group.TotalExpenses

		summary.Totals.TotalNoIVAmount += travel.NoIVAmount
		summary.Totals.TotalWithIVAmount += travel.WithIVAmount
		summary.Totals.TotalIVAmount += travel.IVAmount
		summary.Totals.TotalExpenses += travelExpenses
	}

	summary.Totals.NetIncome = summary.Totals.TotalNoIVAmount - summary.Totals.TotalExpenses
	return summary, nil
}

// ExternalTotals sums the travel amounts for the client-facing report.
// Same empty contract as the internal report: no travels, no report.
func ExternalTotals(travels []Travel) (ClientTotals, error) {
	if len(travels) == 0 {
		return ClientTotals{}, EmptyResultError{}
	}

	var totals ClientTotals
	for _, t := range travels {
		totals.TotalNoIVAmount += t.NoIVAmount
		totals.TotalWithIVAmount += t.WithIVAmount
		totals.TotalIVAmount += t.IVAmount
	}
	return totals, nil
}

// CalcInvoiceAmount sums the invoice-eligible amounts of the given travels
// and keeps the line items that produced the totals so callers can re-display
// them. An empty snapshot returns zero totals and an empty list — this path
// intentionally does NOT error, unlike the grouped reports.
func CalcInvoiceAmount(travels []Travel) InvoiceAmount {
	out := InvoiceAmount{Travels: []TravelLine{}}
	for _, t := range travels {
		out.TotalWithoutIVA += t.NoIVAmount
		out.TotalWithIVA += t.WithIVAmount
		out.Travels = append(out.Travels, TravelLine{
			ID:           t.ID,
			Destination:  t.Destination,
			NoIVAmount:   t.NoIVAmount,
			WithIVAmount: t.WithIVAmount,
		})
	}
	return out
}

// SumInvoiceAmounts totals pending invoices for the invoice report paths.
func SumInvoiceAmounts(invoices []InvoiceRecord) int64 {
	var total int64
	for _, inv := range invoices {
		total += inv.InvoiceAmount
	}
	return total
}

// MergeExpenses normalizes ad-hoc expense entries before persistence:
// entries sharing a trimmed, lowercased name are summed into one record.
// Output keeps insertion order of first occurrence and carries the
// normalized (lowercased) name.
func MergeExpenses(entries []ExpenseEntry, travelDate time.Time, truckPlate string) []Expense {
	index := map[string]int{}
	merged := []Expense{}

	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if i, ok := index[key]; ok {
			merged[i].Amount += e.Amount
			continue
		}
		merged = append(merged, Expense{
			Name:       key,
			Amount:     e.Amount,
			Date:       travelDate,
			TruckPlate: truckPlate,
		})
		index[key] = len(merged) - 1
	}
	return merged
}

func sumExpenses(expenses []Expense) int64 {
	var sum int64
	for _, e := range expenses {
		sum += e.Amount
	}
	return sum
}
