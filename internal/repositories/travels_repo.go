package repositories

import (
	"database/sql"
	"strings"
	"time"

	intconfig "backend/internal/config"
	"backend/internal/finance"
)

// TravelsRepository is the ledger record source for travels. Every list
// method returns fully-materialized finance records; the engine never sees
// SQL.
type TravelsRepository struct {
	DB *sql.DB
}

func (r TravelsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// CreateTravel carries the write-path fields of a new travel.
type CreateTravel struct {
	TravelCode   string    `json:"travelCode"`
	Destination  string    `json:"destination"`
	TravelDate   time.Time `json:"travelDate"`
	NoIVAmount   int64     `json:"noIVAmount"`
	WithIVAmount int64     `json:"withIVAmount"`
	IVAmount     int64     `json:"IVAmount"`
	TaxFree      bool      `json:"taxFree"`
	Invalid      bool      `json:"invalid"`
	ClientID     int64     `json:"clientId"`
	DriverID     int64     `json:"driverId"`
	TruckPlate   string    `json:"truckPlate"`
	InvoiceID    int64     `json:"invoiceId"`
}

// TravelReportFilter scopes the internal report record fetch.
type TravelReportFilter struct {
	Window     finance.Window
	ClientID   int64
	DriverID   int64
	TruckPlate string
}

const travelSelect = `
	SELECT t.id, t.travel_code, t.destination, t.travel_date,
	       t.no_iva_amount, t.with_iva_amount, t.iva_amount,
	       t.tax_free, t.invalid,
	       COALESCE(k.name,''), COALESCE(d.name,''), COALESCE(c.name,'')
	FROM travels t
	LEFT JOIN trucks k ON k.plate = t.truck_plate
	LEFT JOIN drivers d ON d.id = t.driver_id
	LEFT JOIN clients c ON c.id = t.client_id`

// ListForReport returns the full snapshot of valid travels matching the
// filter, ordered by travel date, each carrying its non-deleted expenses.
func (r TravelsRepository) ListForReport(f TravelReportFilter) ([]finance.Travel, error) {
	where := []string{"t.invalid = 0", "t.travel_date >= ?", "t.travel_date <= ?"}
	args := []any{f.Window.Start, f.Window.End}

	if f.ClientID > 0 {
		where = append(where, "t.client_id = ?")
		args = append(args, f.ClientID)
	}
	if f.DriverID > 0 {
		where = append(where, "t.driver_id = ?")
		args = append(args, f.DriverID)
	}
	if strings.TrimSpace(f.TruckPlate) != "" {
		where = append(where, "t.truck_plate = ?")
		args = append(args, strings.TrimSpace(f.TruckPlate))
	}

	query := travelSelect + "\n\tWHERE " + strings.Join(where, " AND ") + "\n\tORDER BY t.travel_date ASC, t.id ASC"

	travels, err := r.queryTravels(query, args...)
	if err != nil {
		return nil, err
	}
	if err := r.attachExpenses(travels); err != nil {
		return nil, err
	}
	return travels, nil
}

// ListForBalance returns the valid travels inside the window with their
// truck names, without expenses (balance pairs them with the expense table).
func (r TravelsRepository) ListForBalance(w finance.Window) ([]finance.Travel, error) {
	query := travelSelect + "\n\tWHERE t.invalid = 0 AND t.travel_date >= ? AND t.travel_date <= ?\n\tORDER BY t.travel_date ASC, t.id ASC"
	return r.queryTravels(query, w.Start, w.End)
}

// ListByClientWindow feeds the invoice amount calculation.
func (r TravelsRepository) ListByClientWindow(clientID int64, w finance.Window) ([]finance.Travel, error) {
	query := travelSelect + "\n\tWHERE t.invalid = 0 AND t.client_id = ? AND t.travel_date >= ? AND t.travel_date <= ?\n\tORDER BY t.travel_date ASC, t.id ASC"
	return r.queryTravels(query, clientID, w.Start, w.End)
}

// Insert stores the travel and its already-merged expenses in one tx.
func (r TravelsRepository) Insert(t CreateTravel, expenses []finance.Expense) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}

	res, err := tx.Exec(`
		INSERT INTO travels
			(travel_code, destination, travel_date, no_iva_amount, with_iva_amount, iva_amount,
			 tax_free, invalid, client_id, driver_id, truck_plate, invoice_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULLIF(?,0), NULLIF(?,0), NULLIF(?,''), NULLIF(?,0))`,
		t.TravelCode, t.Destination, t.TravelDate, t.NoIVAmount, t.WithIVAmount, t.IVAmount,
		t.TaxFree, t.Invalid, t.ClientID, t.DriverID, strings.TrimSpace(t.TruckPlate), t.InvoiceID,
	)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	travelID, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, e := range expenses {
		if _, err := tx.Exec(`
			INSERT INTO expenses (name, amount, date, deleted, truck_plate, travel_id)
			VALUES (?, ?, ?, 0, NULLIF(?,''), ?)`,
			e.Name, e.Amount, e.Date, e.TruckPlate, travelID,
		); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (r TravelsRepository) GetByID(id int64) (finance.Travel, error) {
	row := r.db().QueryRow(travelSelect+"\n\tWHERE t.id = ?", id)
	t, err := scanTravel(row)
	if err != nil {
		return finance.Travel{}, err
	}
	travels := []finance.Travel{t}
	if err := r.attachExpenses(travels); err != nil {
		return finance.Travel{}, err
	}
	return travels[0], nil
}

// List returns one page of travels (newest first) plus the total count.
func (r TravelsRepository) List(truckPlate string, driverID, clientID int64, page, limit int) ([]finance.Travel, int, error) {
	where := []string{"1=1"}
	args := []any{}
	if strings.TrimSpace(truckPlate) != "" {
		where = append(where, "t.truck_plate = ?")
		args = append(args, strings.TrimSpace(truckPlate))
	}
	if driverID > 0 {
		where = append(where, "t.driver_id = ?")
		args = append(args, driverID)
	}
	if clientID > 0 {
		where = append(where, "t.client_id = ?")
		args = append(args, clientID)
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db().QueryRow("SELECT COUNT(*) FROM travels t WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := travelSelect + "\n\tWHERE " + cond + "\n\tORDER BY t.travel_date DESC, t.id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, (page-1)*limit)

	travels, err := r.queryTravels(query, args...)
	if err != nil {
		return nil, 0, err
	}
	if err := r.attachExpenses(travels); err != nil {
		return nil, 0, err
	}
	return travels, total, nil
}

func (r TravelsRepository) Update(id int64, t CreateTravel) error {
	_, err := r.db().Exec(`
		UPDATE travels SET
			travel_code = ?, destination = ?, travel_date = ?,
			no_iva_amount = ?, with_iva_amount = ?, iva_amount = ?, tax_free = ?,
			client_id = COALESCE(NULLIF(?,0), client_id),
			driver_id = COALESCE(NULLIF(?,0), driver_id),
			truck_plate = COALESCE(NULLIF(?,''), truck_plate),
			invoice_id = COALESCE(NULLIF(?,0), invoice_id)
		WHERE id = ?`,
		t.TravelCode, t.Destination, t.TravelDate,
		t.NoIVAmount, t.WithIVAmount, t.IVAmount, t.TaxFree,
		t.ClientID, t.DriverID, strings.TrimSpace(t.TruckPlate), t.InvoiceID,
		id,
	)
	return err
}

func (r TravelsRepository) SetInvalid(id int64, invalid bool) error {
	_, err := r.db().Exec(`UPDATE travels SET invalid = ? WHERE id = ?`, invalid, id)
	return err
}

func (r TravelsRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM travels WHERE id = ?`, id)
	return err
}

// SearchByCodeOrDest returns up to three matches by code or destination.
func (r TravelsRepository) SearchByCodeOrDest(keyword string) ([]finance.Travel, error) {
	keyword = strings.TrimSpace(keyword)
	where := "t.invalid = 0"
	args := []any{}
	if keyword != "" {
		where += " AND (t.travel_code LIKE ? OR t.destination LIKE ?)"
		like := "%" + keyword + "%"
		args = append(args, like, like)
	}
	query := travelSelect + "\n\tWHERE " + where + "\n\tORDER BY t.travel_date DESC LIMIT 3"
	return r.queryTravels(query, args...)
}

func (r TravelsRepository) queryTravels(query string, args ...any) ([]finance.Travel, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []finance.Travel{}
	for rows.Next() {
		t, err := scanTravel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTravel(row rowScanner) (finance.Travel, error) {
	var t finance.Travel
	err := row.Scan(
		&t.ID, &t.TravelCode, &t.Destination, &t.TravelDate,
		&t.NoIVAmount, &t.WithIVAmount, &t.IVAmount,
		&t.TaxFree, &t.Invalid,
		&t.TruckName, &t.DriverName, &t.ClientName,
	)
	return t, err
}

// attachExpenses loads the non-deleted expenses of every travel in place.
func (r TravelsRepository) attachExpenses(travels []finance.Travel) error {
	if len(travels) == 0 {
		return nil
	}

	index := make(map[int64]int, len(travels))
	ph := make([]string, len(travels))
	args := make([]any, len(travels))
	for i := range travels {
		index[travels[i].ID] = i
		ph[i] = "?"
		args[i] = travels[i].ID
	}

	rows, err := r.db().Query(`
		SELECT id, name, amount, date, COALESCE(travel_id,0)
		FROM expenses
		WHERE deleted = 0 AND travel_id IN (`+strings.Join(ph, ",")+`)
		ORDER BY id ASC`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var e finance.Expense
		if err := rows.Scan(&e.ID, &e.Name, &e.Amount, &e.Date, &e.TravelID); err != nil {
			return err
		}
		if i, ok := index[e.TravelID]; ok {
			travels[i].Expenses = append(travels[i].Expenses, e)
		}
	}
	return rows.Err()
}
