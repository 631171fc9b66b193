package repositories

import (
	"testing"
	"time"

	"backend/internal/finance"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestListForReportAttachesExpenses(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	window := finance.NewWindow(date, date.AddDate(0, 0, 6))

	travelRows := sqlmock.NewRows([]string{
		"id", "travel_code", "destination", "travel_date",
		"no_iva_amount", "with_iva_amount", "iva_amount",
		"tax_free", "invalid", "truck_name", "driver_name", "client_name",
	}).
		AddRow(1, "T-001", "Liberia", date, 170000, 192100, 22100, false, false, "Freightliner", "Luis", "Grupo Pumas").
		AddRow(2, "T-002", "Limón", date, 80000, 90400, 10400, false, false, "", "Luis", "Grupo Pumas")

	expenseRows := sqlmock.NewRows([]string{"id", "name", "amount", "date", "travel_id"}).
		AddRow(7, "peaje", 1500, date, 1).
		AddRow(8, "comida", 4000, date, 1)

	mock.ExpectQuery("SELECT t.id, t.travel_code").
		WithArgs(window.Start, window.End).
		WillReturnRows(travelRows)
	mock.ExpectQuery("FROM expenses").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(expenseRows)

	repo := TravelsRepository{DB: db}
	travels, err := repo.ListForReport(TravelReportFilter{Window: window})
	if err != nil {
		t.Fatalf("ListForReport returned error: %v", err)
	}

	if len(travels) != 2 {
		t.Fatalf("expected 2 travels, got %d", len(travels))
	}
	if len(travels[0].Expenses) != 2 {
		t.Fatalf("expected 2 expenses on first travel, got %d", len(travels[0].Expenses))
	}
	if travels[0].Expenses[0].Name != "peaje" || travels[0].Expenses[0].Amount != 1500 {
		t.Fatalf("unexpected first expense %+v", travels[0].Expenses[0])
	}
	if len(travels[1].Expenses) != 0 {
		t.Fatalf("second travel should carry no expenses, got %d", len(travels[1].Expenses))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertStoresTravelAndExpensesInOneTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO travels").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO expenses").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO expenses").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	repo := TravelsRepository{DB: db}
	err = repo.Insert(
		CreateTravel{TravelCode: "T-003", Destination: "Nicoya", TravelDate: date, NoIVAmount: 50000, TruckPlate: "SJB-123"},
		[]finance.Expense{
			{Name: "peaje", Amount: 1500, Date: date, TruckPlate: "SJB-123"},
			{Name: "comida", Amount: 4000, Date: date, TruckPlate: "SJB-123"},
		},
	)
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertRollsBackOnExpenseFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO travels").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO expenses").
		WillReturnError(errDuplicate{})
	mock.ExpectRollback()

	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	repo := TravelsRepository{DB: db}
	err = repo.Insert(
		CreateTravel{TravelCode: "T-004", Destination: "Nicoya", TravelDate: date},
		[]finance.Expense{{Name: "peaje", Amount: 1500, Date: date}},
	)
	if err == nil {
		t.Fatalf("expected insert error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

type errDuplicate struct{}

func (errDuplicate) Error() string { return "duplicate" }
