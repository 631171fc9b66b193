package handlers

import (
	"net/http"
	"strings"

	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func trucksService(c *gin.Context) services.TrucksService {
	return services.TrucksService{
		TrucksRepo:   repositories.TrucksRepository{},
		TravelsRepo:  repositories.TravelsRepository{},
		ExpensesRepo: repositories.ExpensesRepository{},
		RequestID:    requestID(c),
	}
}

// GET /api/trucks?status=true&page=1&limit=10
func GetTrucks(c *gin.Context) {
	page, limit := pageParams(c)

	var status *bool
	switch strings.TrimSpace(c.Query("status")) {
	case "true":
		v := true
		status = &v
	case "false":
		v := false
		status = &v
	}

	result, err := trucksService(c).GetMany(status, page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/trucks/names
func GetTruckNames(c *gin.Context) {
	names, err := trucksService(c).GetOnlyNames()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// GET /api/trucks/balance?objetiveWeek=2025-01-08
//
// objetiveWeek is any date inside the wanted week; the week runs Saturday
// through Friday. The param name matches what the frontend already sends.
func GetTruckBalance(c *gin.Context) {
	window, balances, err := trucksService(c).CalcBalance(c.Query("objetiveWeek"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"weekStart": window.Start,
		"weekEnd":   window.End,
		"balances":  balances,
	})
}

// GET /api/trucks/:plate
func GetTruck(c *gin.Context) {
	truck, err := trucksService(c).GetOne(c.Param("plate"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, truck)
}

// POST /api/trucks
func CreateTruck(c *gin.Context) {
	var payload repositories.Truck
	if !BindJSONOrError(c, &payload) {
		return
	}
	resp, err := trucksService(c).Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// PATCH /api/trucks/:plate
func UpdateTruck(c *gin.Context) {
	var payload struct {
		Name string `json:"name" binding:"required"`
	}
	if !BindJSONOrError(c, &payload) {
		return
	}
	resp, err := trucksService(c).Rename(c.Param("plate"), payload.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PATCH /api/trucks/:plate/status
func ChangeTruckStatus(c *gin.Context) {
	var payload struct {
		Status bool `json:"status"`
	}
	if !BindJSONOrError(c, &payload) {
		return
	}
	resp, err := trucksService(c).ChangeStatus(c.Param("plate"), payload.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DELETE /api/trucks/:plate
func DeleteTruck(c *gin.Context) {
	resp, err := trucksService(c).Delete(c.Param("plate"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
