package repositories

import (
	"database/sql"
	"strings"

	intconfig "backend/internal/config"
)

type Client struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	BillerID string `json:"billerId,omitempty"`
	Status   bool   `json:"status"`
}

type ClientsRepository struct {
	DB *sql.DB
}

func (r ClientsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const clientSelect = `SELECT id, name, COALESCE(email,''), COALESCE(phone,''), COALESCE(biller_id,''), status FROM clients`

func (r ClientsRepository) GetByID(id int64) (Client, error) {
	return scanClient(r.db().QueryRow(clientSelect+` WHERE id = ?`, id))
}

func (r ClientsRepository) List(page, limit int) ([]Client, int, error) {
	var total int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM clients`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db().Query(clientSelect+` ORDER BY name ASC LIMIT ? OFFSET ?`, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

// ListNames returns id and name of active clients, for dropdowns.
func (r ClientsRepository) ListNames() ([]Client, error) {
	rows, err := r.db().Query(`SELECT id, name FROM clients WHERE status = 1 ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Client{}
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		c.Status = true
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r ClientsRepository) Insert(c Client) error {
	_, err := r.db().Exec(`
		INSERT INTO clients (name, email, phone, biller_id, status)
		VALUES (?, NULLIF(?,''), NULLIF(?,''), NULLIF(?,''), ?)`,
		strings.TrimSpace(c.Name), strings.TrimSpace(c.Email), strings.TrimSpace(c.Phone), strings.TrimSpace(c.BillerID), c.Status,
	)
	return err
}

func (r ClientsRepository) Update(c Client) error {
	_, err := r.db().Exec(`
		UPDATE clients SET name = ?,
			email = COALESCE(NULLIF(?,''), email),
			phone = COALESCE(NULLIF(?,''), phone),
			biller_id = COALESCE(NULLIF(?,''), biller_id)
		WHERE id = ?`,
		strings.TrimSpace(c.Name), strings.TrimSpace(c.Email), strings.TrimSpace(c.Phone), strings.TrimSpace(c.BillerID), c.ID,
	)
	return err
}

func (r ClientsRepository) SetStatus(id int64, status bool) error {
	_, err := r.db().Exec(`UPDATE clients SET status = ? WHERE id = ?`, status, id)
	return err
}

func (r ClientsRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM clients WHERE id = ?`, id)
	return err
}

func scanClient(row rowScanner) (Client, error) {
	var c Client
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.BillerID, &c.Status)
	return c, err
}
