package repositories

import (
	"database/sql"
	"strings"
	"time"

	intconfig "backend/internal/config"
	"backend/internal/finance"
)

// Invoice is the stored invoice with its client and linked travel lines.
type Invoice struct {
	ID            int64                `json:"id"`
	InvoiceNumber string               `json:"invoiceNumber"`
	InvoiceAmount int64                `json:"invoiceAmount"`
	InvoiceDate   time.Time            `json:"invoiceDate"`
	DueDate       time.Time            `json:"dueDate"`
	Paid          bool                 `json:"paid"`
	Status        bool                 `json:"status"`
	ClientID      int64                `json:"clientId"`
	ClientName    string               `json:"clientName,omitempty"`
	Travels       []finance.TravelLine `json:"travels"`
}

type InvoicesRepository struct {
	DB *sql.DB
}

func (r InvoicesRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const invoiceSelect = `
	SELECT i.id, i.invoice_number, i.invoice_amount, i.invoice_date, i.due_date,
	       i.paid, i.status, i.client_id, COALESCE(c.name,'')
	FROM invoices i
	LEFT JOIN clients c ON c.id = i.client_id`

// Insert stores the invoice and links the given travels to it in one tx.
func (r InvoicesRepository) Insert(inv Invoice, travelIDs []int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}

	res, err := tx.Exec(`
		INSERT INTO invoices (invoice_number, invoice_amount, invoice_date, due_date, paid, status, client_id)
		VALUES (?, ?, ?, ?, 0, 1, ?)`,
		strings.TrimSpace(inv.InvoiceNumber), inv.InvoiceAmount, inv.InvoiceDate, inv.DueDate, inv.ClientID,
	)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	invoiceID, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, travelID := range travelIDs {
		if _, err := tx.Exec(`UPDATE travels SET invoice_id = ? WHERE id = ?`, invoiceID, travelID); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (r InvoicesRepository) GetByID(id int64) (Invoice, error) {
	inv, err := scanInvoice(r.db().QueryRow(invoiceSelect+"\n\tWHERE i.id = ?", id))
	if err != nil {
		return Invoice{}, err
	}
	invoices := []Invoice{inv}
	if err := r.attachTravels(invoices); err != nil {
		return Invoice{}, err
	}
	return invoices[0], nil
}

// List returns one page of invoices (newest first) with their travel lines.
func (r InvoicesRepository) List(page, limit int) ([]Invoice, int, error) {
	var total int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM invoices`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db().Query(invoiceSelect+"\n\tORDER BY i.invoice_date DESC, i.id DESC LIMIT ? OFFSET ?", limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if err := r.attachTravels(out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListPending returns the unpaid, active invoices of a client ordered by
// invoice date, as finance records for the reporting side.
func (r InvoicesRepository) ListPending(clientID int64) ([]finance.InvoiceRecord, error) {
	rows, err := r.db().Query(invoiceSelect+`
	WHERE i.paid = 0 AND i.status = 1 AND i.client_id = ?
	ORDER BY i.invoice_date ASC, i.id ASC`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []finance.InvoiceRecord{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, finance.InvoiceRecord{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			InvoiceAmount: inv.InvoiceAmount,
			InvoiceDate:   inv.InvoiceDate,
			DueDate:       inv.DueDate,
			Paid:          inv.Paid,
			Status:        inv.Status,
			ClientName:    inv.ClientName,
		})
	}
	return out, rows.Err()
}

// Update rewrites the invoice fields and, when travelIDs is non-nil,
// replaces the set of linked travels.
func (r InvoicesRepository) Update(inv Invoice, travelIDs []int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`
		UPDATE invoices SET invoice_number = ?, invoice_amount = ?, invoice_date = ?, due_date = ?,
			client_id = COALESCE(NULLIF(?,0), client_id)
		WHERE id = ?`,
		strings.TrimSpace(inv.InvoiceNumber), inv.InvoiceAmount, inv.InvoiceDate, inv.DueDate, inv.ClientID, inv.ID,
	); err != nil {
		_ = tx.Rollback()
		return err
	}

	if travelIDs != nil {
		if _, err := tx.Exec(`UPDATE travels SET invoice_id = NULL WHERE invoice_id = ?`, inv.ID); err != nil {
			_ = tx.Rollback()
			return err
		}
		for _, travelID := range travelIDs {
			if _, err := tx.Exec(`UPDATE travels SET invoice_id = ? WHERE id = ?`, inv.ID, travelID); err != nil {
				_ = tx.Rollback()
				return err
			}
		}
	}

	return tx.Commit()
}

func (r InvoicesRepository) SetStatus(id int64, status bool) error {
	_, err := r.db().Exec(`UPDATE invoices SET status = ? WHERE id = ?`, status, id)
	return err
}

func (r InvoicesRepository) SetPaid(id int64, paid bool) error {
	_, err := r.db().Exec(`UPDATE invoices SET paid = ? WHERE id = ?`, paid, id)
	return err
}

func (r InvoicesRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM invoices WHERE id = ?`, id)
	return err
}

func scanInvoice(row rowScanner) (Invoice, error) {
	var inv Invoice
	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.InvoiceAmount, &inv.InvoiceDate, &inv.DueDate,
		&inv.Paid, &inv.Status, &inv.ClientID, &inv.ClientName,
	)
	return inv, err
}

func (r InvoicesRepository) attachTravels(invoices []Invoice) error {
	if len(invoices) == 0 {
		return nil
	}

	index := make(map[int64]int, len(invoices))
	ph := make([]string, len(invoices))
	args := make([]any, len(invoices))
	for i := range invoices {
		invoices[i].Travels = []finance.TravelLine{}
		index[invoices[i].ID] = i
		ph[i] = "?"
		args[i] = invoices[i].ID
	}

	rows, err := r.db().Query(`
		SELECT id, destination, no_iva_amount, with_iva_amount, invoice_id
		FROM travels
		WHERE invoice_id IN (`+strings.Join(ph, ",")+`)
		ORDER BY travel_date ASC, id ASC`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var line finance.TravelLine
		var invoiceID int64
		if err := rows.Scan(&line.ID, &line.Destination, &line.NoIVAmount, &line.WithIVAmount, &invoiceID); err != nil {
			return err
		}
		if i, ok := index[invoiceID]; ok {
			invoices[i].Travels = append(invoices[i].Travels, line)
		}
	}
	return rows.Err()
}
