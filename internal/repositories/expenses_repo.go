package repositories

import (
	"database/sql"
	"strings"
	"time"

	intconfig "backend/internal/config"
	"backend/internal/finance"
)

type ExpensesRepository struct {
	DB *sql.DB
}

func (r ExpensesRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const expenseSelect = `
	SELECT e.id, e.name, e.amount, e.date, e.deleted,
	       COALESCE(k.name,''), COALESCE(e.truck_plate,''), COALESCE(e.travel_id,0)
	FROM expenses e
	LEFT JOIN trucks k ON k.plate = e.truck_plate`

func (r ExpensesRepository) Insert(e finance.Expense) error {
	_, err := r.db().Exec(`
		INSERT INTO expenses (name, amount, date, deleted, truck_plate, travel_id)
		VALUES (?, ?, ?, 0, NULLIF(?,''), NULLIF(?,0))`,
		e.Name, e.Amount, e.Date, strings.TrimSpace(e.TruckPlate), e.TravelID,
	)
	return err
}

func (r ExpensesRepository) GetByID(id int64) (finance.Expense, error) {
	return scanExpense(r.db().QueryRow(expenseSelect+"\n\tWHERE e.id = ?", id))
}

// List returns one page of expenses (newest first) plus the total count.
// Soft-deleted rows are included so they can be reactivated from the UI.
func (r ExpensesRepository) List(truckPlate string, date *time.Time, page, limit int) ([]finance.Expense, int, error) {
	where := []string{"1=1"}
	args := []any{}
	if strings.TrimSpace(truckPlate) != "" {
		where = append(where, "e.truck_plate = ?")
		args = append(args, strings.TrimSpace(truckPlate))
	}
	if date != nil {
		where = append(where, "e.date >= ? AND e.date <= ?")
		w := finance.NewWindow(*date, *date)
		args = append(args, w.Start, w.End)
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db().QueryRow("SELECT COUNT(*) FROM expenses e WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, (page-1)*limit)
	rows, err := r.db().Query(expenseSelect+"\n\tWHERE "+cond+"\n\tORDER BY e.date DESC, e.id DESC LIMIT ? OFFSET ?", args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []finance.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}

// ListForBalance returns non-deleted expenses inside the window with their
// truck names resolved, for the per-truck balance fold.
func (r ExpensesRepository) ListForBalance(w finance.Window) ([]finance.Expense, error) {
	rows, err := r.db().Query(expenseSelect+`
	WHERE e.deleted = 0 AND e.date >= ? AND e.date <= ?
	ORDER BY e.date ASC, e.id ASC`, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []finance.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r ExpensesRepository) Update(id int64, e finance.Expense) error {
	_, err := r.db().Exec(`
		UPDATE expenses SET name = ?, amount = ?, date = ?,
			truck_plate = COALESCE(NULLIF(?,''), truck_plate),
			travel_id = COALESCE(NULLIF(?,0), travel_id)
		WHERE id = ?`,
		e.Name, e.Amount, e.Date, strings.TrimSpace(e.TruckPlate), e.TravelID, id,
	)
	return err
}

func (r ExpensesRepository) SetDeleted(id int64, deleted bool) error {
	_, err := r.db().Exec(`UPDATE expenses SET deleted = ? WHERE id = ?`, deleted, id)
	return err
}

func (r ExpensesRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM expenses WHERE id = ?`, id)
	return err
}

func scanExpense(row rowScanner) (finance.Expense, error) {
	var e finance.Expense
	err := row.Scan(&e.ID, &e.Name, &e.Amount, &e.Date, &e.Deleted, &e.TruckName, &e.TruckPlate, &e.TravelID)
	return e, err
}
