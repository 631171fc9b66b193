package repositories

import (
	"database/sql"
	"strings"

	intconfig "backend/internal/config"
)

// Truck is the stored vehicle record, keyed by plate.
type Truck struct {
	Plate  string `json:"plate"`
	Name   string `json:"name"`
	Status bool   `json:"status"`
}

type TrucksRepository struct {
	DB *sql.DB
}

func (r TrucksRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TrucksRepository) GetByPlate(plate string) (Truck, error) {
	var t Truck
	err := r.db().QueryRow(`SELECT plate, name, status FROM trucks WHERE plate = ?`, strings.TrimSpace(plate)).
		Scan(&t.Plate, &t.Name, &t.Status)
	return t, err
}

// List returns one page of trucks ordered by plate plus the total count.
// status filters when non-nil.
func (r TrucksRepository) List(status *bool, page, limit int) ([]Truck, int, error) {
	where := "1=1"
	args := []any{}
	if status != nil {
		where = "status = ?"
		args = append(args, *status)
	}

	var total int
	if err := r.db().QueryRow("SELECT COUNT(*) FROM trucks WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, (page-1)*limit)
	rows, err := r.db().Query("SELECT plate, name, status FROM trucks WHERE "+where+" ORDER BY plate ASC LIMIT ? OFFSET ?", args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Truck{}
	for rows.Next() {
		var t Truck
		if err := rows.Scan(&t.Plate, &t.Name, &t.Status); err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, rows.Err()
}

// ListNames returns the names of active trucks, for dropdowns.
func (r TrucksRepository) ListNames() ([]string, error) {
	rows, err := r.db().Query(`SELECT name FROM trucks WHERE status = 1 ORDER BY plate ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (r TrucksRepository) Insert(t Truck) error {
	_, err := r.db().Exec(`INSERT INTO trucks (plate, name, status) VALUES (?, ?, ?)`,
		strings.TrimSpace(t.Plate), strings.TrimSpace(t.Name), t.Status)
	return err
}

func (r TrucksRepository) UpdateName(plate, name string) error {
	_, err := r.db().Exec(`UPDATE trucks SET name = ? WHERE plate = ?`, strings.TrimSpace(name), strings.TrimSpace(plate))
	return err
}

func (r TrucksRepository) SetStatus(plate string, status bool) error {
	_, err := r.db().Exec(`UPDATE trucks SET status = ? WHERE plate = ?`, status, strings.TrimSpace(plate))
	return err
}

func (r TrucksRepository) Delete(plate string) error {
	_, err := r.db().Exec(`DELETE FROM trucks WHERE plate = ?`, strings.TrimSpace(plate))
	return err
}
