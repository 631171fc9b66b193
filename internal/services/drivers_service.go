package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"backend/internal/domain"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/go-sql-driver/mysql"
)

type DriversService struct {
	DriversRepo repositories.DriversRepository
	RequestID   string
}

func (s DriversService) FindOne(id int64) (repositories.Driver, error) {
	driver, err := s.DriversRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return repositories.Driver{}, domain.NotFoundError{
			Msg: fmt.Sprintf("No se encontró el chofer con cédula %d", id),
		}
	}
	return driver, err
}

func (s DriversService) FindAll(page, limit int) (utils.Paginated[repositories.Driver], error) {
	drivers, total, err := s.DriversRepo.List(page, limit)
	if err != nil {
		return utils.Paginated[repositories.Driver]{}, err
	}
	return utils.Paginate(drivers, page, limit, total), nil
}

func (s DriversService) FindOnlyNames() ([]repositories.Driver, error) {
	return s.DriversRepo.ListNames()
}

func (s DriversService) Create(d repositories.Driver) (domain.Response, error) {
	if d.ID <= 0 || strings.TrimSpace(d.Name) == "" {
		return domain.Response{}, domain.ValidationError{Msg: "cédula y nombre son obligatorios"}
	}
	d.Status = true

	if err := s.DriversRepo.Insert(d); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return domain.Response{}, domain.ConflictError{
				Msg: fmt.Sprintf("Ya existe un chofer con la cédula %d", d.ID),
			}
		}
		return domain.Response{}, domain.InternalError{Msg: "Error al crear el chofer", Err: err}
	}

	utils.LogEvent(s.RequestID, "drivers", "create", fmt.Sprintf("id=%d", d.ID))
	return domain.OK(fmt.Sprintf("Chofer %s creado con éxito", d.Name)), nil
}

func (s DriversService) Update(d repositories.Driver) (domain.Response, error) {
	if _, err := s.FindOne(d.ID); err != nil {
		return domain.Response{}, err
	}
	if err := s.DriversRepo.Update(d); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al editar el chofer", Err: err}
	}
	return domain.OK(fmt.Sprintf("Chofer %s editado con éxito", d.Name)), nil
}

// ChangeStatus deactivates with an end date, or reactivates clearing it.
func (s DriversService) ChangeStatus(id int64, endDate string) (domain.Response, error) {
	driver, err := s.FindOne(id)
	if err != nil {
		return domain.Response{}, err
	}

	if driver.Status && strings.TrimSpace(endDate) == "" {
		return domain.Response{}, domain.ValidationError{
			Msg: "la fecha de salida es obligatoria para desactivar un chofer",
		}
	}

	if err := s.DriversRepo.SetStatus(id, !driver.Status, endDate); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al cambiar el estado del chofer", Err: err}
	}
	if driver.Status {
		return domain.OK(fmt.Sprintf("Chofer %s desactivado con éxito", driver.Name)), nil
	}
	return domain.OK(fmt.Sprintf("Chofer %s reactivado con éxito", driver.Name)), nil
}

func (s DriversService) Remove(id int64) (domain.Response, error) {
	driver, err := s.FindOne(id)
	if err != nil {
		return domain.Response{}, err
	}
	if driver.Status {
		return domain.Response{}, domain.ConflictError{
			Msg: fmt.Sprintf("No se puede eliminar el chofer %s porque está activo", driver.Name),
		}
	}
	if err := s.DriversRepo.Delete(id); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al eliminar el chofer", Err: err}
	}
	return domain.OK(fmt.Sprintf("Chofer %s eliminado permanentemente", driver.Name)), nil
}
