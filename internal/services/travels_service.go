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
)

type TravelsService struct {
	TravelsRepo repositories.TravelsRepository
	RequestID   string
}

// CreateTravelInput is the travel plus the ad-hoc expenses typed alongside
// it. Expenses are merged by normalized name before anything is persisted.
type CreateTravelInput struct {
	repositories.CreateTravel
	Expenses []finance.ExpenseEntry `json:"expenses"`
}

func (s TravelsService) Create(in CreateTravelInput) (domain.Response, error) {
	if strings.TrimSpace(in.TravelCode) == "" || strings.TrimSpace(in.Destination) == "" {
		return domain.Response{}, domain.ValidationError{Msg: "código y destino son obligatorios"}
	}
	if in.NoIVAmount < 0 || in.WithIVAmount < 0 || in.IVAmount < 0 {
		return domain.Response{}, domain.ValidationError{Msg: "los montos no pueden ser negativos"}
	}

	merged := finance.MergeExpenses(in.Expenses, in.TravelDate, in.TruckPlate)

	if err := s.TravelsRepo.Insert(in.CreateTravel, merged); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al registrar el viaje", Err: err}
	}

	utils.LogEvent(s.RequestID, "travels", "create",
		fmt.Sprintf("code=%s expenses=%d", in.TravelCode, len(merged)))
	return domain.OK("Viaje registrado con éxito"), nil
}

func (s TravelsService) FindAll(truckPlate string, driverID, clientID int64, page, limit int) (utils.Paginated[finance.Travel], error) {
	travels, total, err := s.TravelsRepo.List(truckPlate, driverID, clientID, page, limit)
	if err != nil {
		return utils.Paginated[finance.Travel]{}, err
	}
	return utils.Paginate(travels, page, limit, total), nil
}

func (s TravelsService) FindOne(id int64) (finance.Travel, error) {
	travel, err := s.TravelsRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return finance.Travel{}, domain.NotFoundError{
			Msg: fmt.Sprintf("No se encontró el viaje con id %d", id),
		}
	}
	return travel, err
}

func (s TravelsService) Update(id int64, in repositories.CreateTravel) (domain.Response, error) {
	if _, err := s.FindOne(id); err != nil {
		return domain.Response{}, err
	}
	if err := s.TravelsRepo.Update(id, in); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al actualizar el viaje", Err: err}
	}
	return domain.OK("Viaje actualizado con éxito"), nil
}

// ChangeStatus flips the invalid flag. Invalid travels drop out of every
// aggregation but stay queryable.
func (s TravelsService) ChangeStatus(id int64) (domain.Response, error) {
	travel, err := s.FindOne(id)
	if err != nil {
		return domain.Response{}, err
	}

	isReactivating := travel.Invalid
	if err := s.TravelsRepo.SetInvalid(id, !travel.Invalid); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al cambiar el estado del viaje", Err: err}
	}

	verb := "marcado como inválido"
	if isReactivating {
		verb = "reactivado"
	}
	return domain.OK(fmt.Sprintf("Viaje %s %s con éxito", travel.TravelCode, verb)), nil
}

// Remove deletes permanently; only travels already marked invalid qualify.
func (s TravelsService) Remove(id int64) (domain.Response, error) {
	travel, err := s.FindOne(id)
	if err != nil {
		return domain.Response{}, err
	}
	if !travel.Invalid {
		return domain.Response{}, domain.ConflictError{
			Msg: "No se puede eliminar el viaje porque no ha sido marcado como inválido",
		}
	}
	if err := s.TravelsRepo.Delete(id); err != nil {
		return domain.Response{}, domain.InternalError{Msg: "Error al eliminar el viaje", Err: err}
	}
	return domain.OK("Viaje eliminado permanentemente"), nil
}

func (s TravelsService) FindByNumberOrDest(keyword string) ([]finance.Travel, error) {
	return s.TravelsRepo.SearchByCodeOrDest(keyword)
}
