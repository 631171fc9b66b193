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

type ClientsService struct {
	ClientsRepo repositories.ClientsRepository
	RequestID   string
}

func (s ClientsService) FindOne(id int64) (repositories.Client, error) {
	client, err := s.ClientsRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return repositories.Client{}, domain.NotFoundError{
			Msg: fmt.Sprintf("No se encontró el cliente con id %d", id),
		}
	}
	return client, err
}

func (s ClientsService) FindAll(page, limit int) (utils.Paginated[repositories.Client], error) {
	clients, total, err := s.ClientsRepo.List(page, limit)
	if err != nil {
		return utils.Paginated[repositories.Client]{}, err
	}
	return utils.Paginate(clients, page, limit, total), nil
}

func (s ClientsService) FindOnlyNames() ([]repositories.Client, error) {
	return s.ClientsRepo.ListNames()
}

func (s ClientsService) Create(c repositories.Client) (domain.Response, error) {
	if strings.TrimSpace(c.Name) == "" {
		return domain.Response{}, domain.ValidationError{Msg: "el nombre del cliente es obligatorio"}
	}
	c.Status = true

	if err := s.ClientsRepo.Insert(c); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return domain.Response{}, domain.ConflictError{
				Msg: fmt.Sprintf("Ya existe un cliente con el nombre %s", c.Name),
			}
		}
		return domain.Response{}, domain.InternalError{Msg: "Error al crear el cliente", Err: err}
	}

	utils.LogEvent(s.RequestID, "clients", "create", "name="+c.Name)
	return domain.OK(fmt.Sprintf("Cliente %s creado con éxito", c.Name)), nil
}

func (s ClientsService) Update(c repositories.Client) (domain.Response, error) {
	if _, err := s.FindOne(c.ID); err != nil {
		return domain.Response{}, err
	}
	if err := s.ClientsRepo.Update(c); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al editar el cliente", Err: err}
	}
	return domain.OK(fmt.Sprintf("Cliente %s editado con éxito", c.Name)), nil
}

func (s ClientsService) ChangeStatus(id int64) (domain.Response, error) {
	client, err := s.FindOne(id)
	if err != nil {
		return domain.Response{}, err
	}
	if err := s.ClientsRepo.SetStatus(id, !client.Status); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al cambiar el estado del cliente", Err: err}
	}
	if client.Status {
		return domain.OK(fmt.Sprintf("Cliente %s desactivado con éxito", client.Name)), nil
	}
	return domain.OK(fmt.Sprintf("Cliente %s reactivado con éxito", client.Name)), nil
}

// Remove deletes permanently; active clients are protected.
func (s ClientsService) Remove(id int64) (domain.Response, error) {
	client, err := s.FindOne(id)
	if err != nil {
		return domain.Response{}, err
	}
	if client.Status {
		return domain.Response{}, domain.ConflictError{
			Msg: fmt.Sprintf("No se puede eliminar el cliente %s porque está activo", client.Name),
		}
	}
	if err := s.ClientsRepo.Delete(id); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al eliminar el cliente", Err: err}
	}
	return domain.OK(fmt.Sprintf("Cliente %s eliminado permanentemente", client.Name)), nil
}
