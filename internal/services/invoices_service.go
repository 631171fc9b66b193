package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"backend/internal/domain"
	"backend/internal/finance"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/go-sql-driver/mysql"
)

type InvoicesService struct {
	InvoicesRepo repositories.InvoicesRepository
	TravelsRepo  repositories.TravelsRepository
	RequestID    string
}

func (s InvoicesService) FindOne(id int64) (repositories.Invoice, error) {
	invoice, err := s.InvoicesRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return repositories.Invoice{}, domain.NotFoundError{
			Msg: fmt.Sprintf("No se encontró la factura con id %d", id),
		}
	}
	return invoice, err
}

func (s InvoicesService) FindAll(page, limit int) (utils.Paginated[repositories.Invoice], error) {
	invoices, total, err := s.InvoicesRepo.List(page, limit)
	if err != nil {
		return utils.Paginated[repositories.Invoice]{}, err
	}
	return utils.Paginate(invoices, page, limit, total), nil
}

func (s InvoicesService) Create(inv repositories.Invoice, travelIDs []int64) (domain.Response, error) {
	if strings.TrimSpace(inv.InvoiceNumber) == "" {
		return domain.Response{}, domain.ValidationError{Msg: "el número de factura es obligatorio"}
	}
	if inv.ClientID <= 0 {
		return domain.Response{}, domain.ValidationError{Msg: "el cliente de la factura es obligatorio"}
	}
	inv.Status = true

	if err := s.InvoicesRepo.Insert(inv, travelIDs); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return domain.Response{}, domain.ConflictError{
				Msg: fmt.Sprintf("Ya existe una factura con el número %s", inv.InvoiceNumber),
			}
		}
		return domain.Response{}, domain.InternalError{Msg: "Error al registrar la factura", Err: err}
	}

	utils.LogEvent(s.RequestID, "invoices", "create",
		fmt.Sprintf("number=%s travels=%d", inv.InvoiceNumber, len(travelIDs)))
	return domain.OK(fmt.Sprintf("Factura %s registrada con éxito", inv.InvoiceNumber)), nil
}

func (s InvoicesService) Update(inv repositories.Invoice, travelIDs []int64) (domain.Response, error) {
	if _, err := s.FindOne(inv.ID); err != nil {
		return domain.Response{}, err
	}
	if err := s.InvoicesRepo.Update(inv, travelIDs); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al actualizar la factura", Err: err}
	}
	return domain.OK(fmt.Sprintf("Factura %s actualizada con éxito", inv.InvoiceNumber)), nil
}

// CalcAmount computes the invoiceable totals for a client over a window.
// An empty window yields zero totals, not an error.
func (s InvoicesService) CalcAmount(clientID int64, from, to string) (finance.InvoiceAmount, error) {
	if clientID <= 0 {
		return finance.InvoiceAmount{}, domain.ValidationError{Msg: "el cliente es obligatorio"}
	}

	window, err := finance.ParseWindow(from, to)
	if err != nil {
		return finance.InvoiceAmount{}, err
	}

	travels, err := s.TravelsRepo.ListByClientWindow(clientID, window)
	if err != nil {
		return finance.InvoiceAmount{}, domain.InternalError{Msg: "Error al calcular el monto de la factura", Err: err}
	}

	amount := finance.CalcInvoiceAmount(travels)
	utils.LogEvent(s.RequestID, "invoices", "calc-amount",
		fmt.Sprintf("client=%d travels=%d", clientID, len(amount.Travels)))
	return amount, nil
}

// ChangeStatus toggles the voided flag.
func (s InvoicesService) ChangeStatus(id int64) (domain.Response, error) {
	invoice, err := s.FindOne(id)
	if err != nil {
		return domain.Response{}, err
	}
	if err := s.InvoicesRepo.SetStatus(id, !invoice.Status); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al cambiar el estado de la factura", Err: err}
	}
	if invoice.Status {
		return domain.OK(fmt.Sprintf("Factura %s anulada con éxito", invoice.InvoiceNumber)), nil
	}
	return domain.OK(fmt.Sprintf("Factura %s reactivada con éxito", invoice.InvoiceNumber)), nil
}

func (s InvoicesService) ChangePaidStatus(id int64) (domain.Response, error) {
	invoice, err := s.FindOne(id)
	if err != nil {
		return domain.Response{}, err
	}
	if err := s.InvoicesRepo.SetPaid(id, !invoice.Paid); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al cambiar el estado de pago de la factura", Err: err}
	}
	if invoice.Paid {
		return domain.OK(fmt.Sprintf("Factura %s marcada como pendiente", invoice.InvoiceNumber)), nil
	}
	return domain.OK(fmt.Sprintf("Factura %s marcada como pagada", invoice.InvoiceNumber)), nil
}

// Remove deletes permanently; only voided invoices qualify.
func (s InvoicesService) Remove(id int64) (domain.Response, error) {
	invoice, err := s.FindOne(id)
	if err != nil {
		return domain.Response{}, err
	}
	if invoice.Status {
		return domain.Response{}, domain.ConflictError{
			Msg: "No se puede eliminar la factura porque no ha sido anulada",
		}
	}
	if err := s.InvoicesRepo.Delete(id); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al eliminar la factura", Err: err}
	}
	return domain.OK(fmt.Sprintf("Factura %s eliminada permanentemente", invoice.InvoiceNumber)), nil
}
