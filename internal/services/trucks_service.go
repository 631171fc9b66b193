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

const mysqlErrDuplicateEntry = 1062

type TrucksService struct {
	TrucksRepo   repositories.TrucksRepository
	TravelsRepo  repositories.TravelsRepository
	ExpensesRepo repositories.ExpensesRepository
	RequestID    string
}

func (s TrucksService) GetOne(plate string) (repositories.Truck, error) {
	truck, err := s.TrucksRepo.GetByPlate(plate)
	if errors.Is(err, sql.ErrNoRows) {
		return repositories.Truck{}, domain.NotFoundError{
			Msg: fmt.Sprintf("No se encontró el registro del camión con placa %s", plate),
		}
	}
	return truck, err
}

func (s TrucksService) GetMany(status *bool, page, limit int) (utils.Paginated[repositories.Truck], error) {
	trucks, total, err := s.TrucksRepo.List(status, page, limit)
	if err != nil {
		return utils.Paginated[repositories.Truck]{}, err
	}
	return utils.Paginate(trucks, page, limit, total), nil
}

func (s TrucksService) GetOnlyNames() ([]string, error) {
	return s.TrucksRepo.ListNames()
}

func (s TrucksService) Create(t repositories.Truck) (domain.Response, error) {
	if strings.TrimSpace(t.Plate) == "" || strings.TrimSpace(t.Name) == "" {
		return domain.Response{}, domain.ValidationError{Msg: "placa y nombre son obligatorios"}
	}
	t.Status = true

	if err := s.TrucksRepo.Insert(t); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return domain.Response{}, domain.ConflictError{
				Msg: fmt.Sprintf("Ya existe un camión con la placa %s", t.Plate),
			}
		}
		return domain.Response{}, domain.InternalError{Msg: "Error al crear el camión", Err: err}
	}

	utils.LogEvent(s.RequestID, "trucks", "create", "plate="+t.Plate)
	return domain.OK(fmt.Sprintf("Camión %s creado con éxito", t.Name)), nil
}

func (s TrucksService) Rename(plate, name string) (domain.Response, error) {
	if _, err := s.GetOne(plate); err != nil {
		return domain.Response{}, err
	}
	if err := s.TrucksRepo.UpdateName(plate, name); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al editar el camión", Err: err}
	}
	return domain.OK(fmt.Sprintf("Camión %s editado con éxito", plate)), nil
}

func (s TrucksService) ChangeStatus(plate string, status bool) (domain.Response, error) {
	if _, err := s.GetOne(plate); err != nil {
		return domain.Response{}, err
	}
	if err := s.TrucksRepo.SetStatus(plate, status); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al editar el estado", Err: err}
	}
	return domain.OK(fmt.Sprintf("Camión %s editado con éxito", plate)), nil
}

// Delete removes a truck permanently. Active trucks must be disabled first.
func (s TrucksService) Delete(plate string) (domain.Response, error) {
	truck, err := s.GetOne(plate)
	if err != nil {
		return domain.Response{}, err
	}
	if truck.Status {
		return domain.Response{}, domain.ConflictError{
			Msg: fmt.Sprintf("No se puede eliminar el camión %s porque está activo", plate),
		}
	}
	if err := s.TrucksRepo.Delete(plate); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al eliminar el camión", Err: err}
	}
	return domain.OK(fmt.Sprintf("Camión %s eliminado con éxito", plate)), nil
}

// CalcBalance resolves the Saturday-to-Friday week containing objetiveWeek
// and folds that week's valid travels and live expenses into one balance row
// per truck.
func (s TrucksService) CalcBalance(objetiveWeek string) (finance.Window, []finance.TruckBalance, error) {
	ref, err := finance.ParseDate(objetiveWeek)
	if err != nil {
		return finance.Window{}, nil, finance.InvalidWindowError{Field: "objetiveWeek", Err: err}
	}
	window := finance.WeekOf(ref)

	travels, err := s.TravelsRepo.ListForBalance(window)
	if err != nil {
		return finance.Window{}, nil, err
	}
	expenses, err := s.ExpensesRepo.ListForBalance(window)
	if err != nil {
		return finance.Window{}, nil, err
	}

	rows := finance.BalancePerTruck(travels, expenses)
	utils.LogEvent(s.RequestID, "trucks", "calc_balance",
		fmt.Sprintf("week_start=%s rows=%d", utils.FormatDate(window.Start), len(rows)))
	return window, rows, nil
}
