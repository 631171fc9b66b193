package services

import (
	"testing"
	"time"

	"backend/internal/finance"
	"backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCalcBalanceResolvesSaturdayWeek(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	wednesday := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	travelRows := sqlmock.NewRows([]string{
		"id", "travel_code", "destination", "travel_date",
		"no_iva_amount", "with_iva_amount", "iva_amount",
		"tax_free", "invalid", "truck_name", "driver_name", "client_name",
	}).
		AddRow(1, "T-001", "Liberia", wednesday, 170000, 192100, 22100, false, false, "Freightliner", "Luis", "Grupo Pumas").
		AddRow(2, "T-002", "Limón", wednesday, 80000, 90400, 10400, false, false, "Freightliner", "Luis", "Grupo Pumas")

	expenseRows := sqlmock.NewRows([]string{
		"id", "name", "amount", "date", "deleted", "truck_name", "truck_plate", "travel_id",
	}).
		AddRow(9, "diesel", 35000, wednesday, false, "Freightliner", "SJB-123", 0)

	mock.ExpectQuery("SELECT t.id, t.travel_code").WillReturnRows(travelRows)
	mock.ExpectQuery("SELECT e.id, e.name").WillReturnRows(expenseRows)

	svc := TrucksService{
		TravelsRepo:  repositories.TravelsRepository{DB: db},
		ExpensesRepo: repositories.ExpensesRepository{DB: db},
	}

	window, rows, err := svc.CalcBalance("2025-01-08")
	if err != nil {
		t.Fatalf("CalcBalance returned error: %v", err)
	}

	wantStart := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	if !window.Start.Equal(wantStart) {
		t.Fatalf("week start = %v, want Saturday %v", window.Start, wantStart)
	}
	if window.End.Weekday() != time.Friday {
		t.Fatalf("week end is %v, want Friday", window.End.Weekday())
	}

	if len(rows) != 1 {
		t.Fatalf("expected one balance row, got %d", len(rows))
	}
	row := rows[0]
	if row.TruckName != "Freightliner" {
		t.Fatalf("unexpected truck %q", row.TruckName)
	}
	if row.TotalTravel != 250000 || row.TotalExpenses != 35000 || row.Balance != 215000 {
		t.Fatalf("unexpected balance row %+v", row)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCalcBalanceRejectsBadDate(t *testing.T) {
	svc := TrucksService{}
	_, _, err := svc.CalcBalance("2025-13-40")
	if !finance.IsInvalidWindow(err) {
		t.Fatalf("expected invalid-window error, got %v", err)
	}
}
