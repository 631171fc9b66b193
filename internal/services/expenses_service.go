package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/internal/domain"
	"backend/internal/finance"
	"backend/internal/repositories"
	"backend/internal/utils"
)

type ExpensesService struct {
	ExpensesRepo repositories.ExpensesRepository
	RequestID    string
}

func (s ExpensesService) Create(e finance.Expense) (domain.Response, error) {
	if strings.TrimSpace(e.Name) == "" {
		return domain.Response{}, domain.ValidationError{Msg: "el nombre del gasto es obligatorio"}
	}
	if e.Amount <= 0 {
		return domain.Response{}, domain.ValidationError{Msg: "el monto del gasto debe ser mayor que cero"}
	}
	e.Name = strings.ToLower(strings.TrimSpace(e.Name))

	if err := s.ExpensesRepo.Insert(e); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al registrar el gasto", Err: err}
	}

	utils.LogEvent(s.RequestID, "expenses", "create",
		fmt.Sprintf("name=%s amount=%d", e.Name, e.Amount))
	return domain.OK("Gasto registrado con éxito"), nil
}

func (s ExpensesService) FindAll(truckPlate string, date *time.Time, page, limit int) (utils.Paginated[finance.Expense], error) {
	expenses, total, err := s.ExpensesRepo.List(truckPlate, date, page, limit)
	if err != nil {
		return utils.Paginated[finance.Expense]{}, err
	}
	return utils.Paginate(expenses, page, limit, total), nil
}

func (s ExpensesService) FindOne(id int64) (finance.Expense, error) {
	expense, err := s.ExpensesRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return finance.Expense{}, domain.NotFoundError{
			Msg: fmt.Sprintf("No se encontró el gasto con id %d", id),
		}
	}
	return expense, err
}

func (s ExpensesService) Update(id int64, e finance.Expense) (domain.Response, error) {
	if _, err := s.FindOne(id); err != nil {
		return domain.Response{}, err
	}
	e.Name = strings.ToLower(strings.TrimSpace(e.Name))
	if err := s.ExpensesRepo.Update(id, e); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al actualizar el gasto", Err: err}
	}
	return domain.OK("Gasto actualizado con éxito"), nil
}

// ChangeStatus toggles the soft-delete flag. Deleted expenses drop out of
// balances and reports but can be reactivated.
func (s ExpensesService) ChangeStatus(id int64) (domain.Response, error) {
	expense, err := s.FindOne(id)
	if err != nil {
		return domain.Response{}, err
	}

	if err := s.ExpensesRepo.SetDeleted(id, !expense.Deleted); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al cambiar el estado del gasto", Err: err}
	}

	if expense.Deleted {
		return domain.OK("Gasto reactivado con éxito"), nil
	}
	return domain.OK("Gasto eliminado con éxito"), nil
}

// Remove deletes permanently; only soft-deleted expenses qualify.
func (s ExpensesService) Remove(id int64) (domain.Response, error) {
	expense, err := s.FindOne(id)
	if err != nil {
		return domain.Response{}, err
	}
	if !expense.Deleted {
		return domain.Response{}, domain.ConflictError{
			Msg: "No se puede eliminar el gasto porque no ha sido marcado como eliminado",
		}
	}
	if err := s.ExpensesRepo.Delete(id); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al eliminar el gasto", Err: err}
	}
	return domain.OK("Gasto eliminado permanentemente"), nil
}
