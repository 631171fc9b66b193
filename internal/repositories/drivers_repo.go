package repositories

import (
	"database/sql"
	"strings"

	intconfig "backend/internal/config"
)

// Driver is keyed by cédula (national id), not an auto-increment.
type Driver struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Status    bool   `json:"status"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

type DriversRepository struct {
	DB *sql.DB
}

func (r DriversRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const driverSelect = `
	SELECT id, name, COALESCE(phone,''), status,
	       COALESCE(DATE_FORMAT(start_date,'%Y-%m-%d'),''),
	       COALESCE(DATE_FORMAT(end_date,'%Y-%m-%d'),'')
	FROM drivers`

func (r DriversRepository) GetByID(id int64) (Driver, error) {
	return scanDriver(r.db().QueryRow(driverSelect+` WHERE id = ?`, id))
}

func (r DriversRepository) List(page, limit int) ([]Driver, int, error) {
	var total int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM drivers`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db().Query(driverSelect+` ORDER BY name ASC LIMIT ? OFFSET ?`, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Driver{}
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	return out, total, rows.Err()
}

// ListNames returns id and name of active drivers, for dropdowns.
func (r DriversRepository) ListNames() ([]Driver, error) {
	rows, err := r.db().Query(`SELECT id, name FROM drivers WHERE status = 1 ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Driver{}
	for rows.Next() {
		var d Driver
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		d.Status = true
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DriversRepository) Insert(d Driver) error {
	_, err := r.db().Exec(`
		INSERT INTO drivers (id, name, phone, status, start_date)
		VALUES (?, ?, NULLIF(?,''), ?, NULLIF(?,''))`,
		d.ID, strings.TrimSpace(d.Name), strings.TrimSpace(d.Phone), d.Status, strings.TrimSpace(d.StartDate),
	)
	return err
}

func (r DriversRepository) Update(d Driver) error {
	_, err := r.db().Exec(`
		UPDATE drivers SET name = ?,
			phone = COALESCE(NULLIF(?,''), phone)
		WHERE id = ?`,
		strings.TrimSpace(d.Name), strings.TrimSpace(d.Phone), d.ID,
	)
	return err
}

// SetStatus toggles availability. Reactivating clears the end date;
// deactivating stamps it with endDate when provided.
func (r DriversRepository) SetStatus(id int64, status bool, endDate string) error {
	if status {
		_, err := r.db().Exec(`UPDATE drivers SET status = 1, end_date = NULL WHERE id = ?`, id)
		return err
	}
	_, err := r.db().Exec(`UPDATE drivers SET status = 0, end_date = NULLIF(?,'') WHERE id = ?`, strings.TrimSpace(endDate), id)
	return err
}

func (r DriversRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM drivers WHERE id = ?`, id)
	return err
}

func scanDriver(row rowScanner) (Driver, error) {
	var d Driver
	err := row.Scan(&d.ID, &d.Name, &d.Phone, &d.Status, &d.StartDate, &d.EndDate)
	return d, err
}
