package handlers

import (
	"net/http"

	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func driversService(c *gin.Context) services.DriversService {
	return services.DriversService{
		DriversRepo: repositories.DriversRepository{},
		RequestID:   requestID(c),
	}
}

// GET /api/drivers?page=1&limit=10
func GetDrivers(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := driversService(c).FindAll(page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/drivers/names
func GetDriverNames(c *gin.Context) {
	drivers, err := driversService(c).FindOnlyNames()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// GET /api/drivers/:id
func GetDriver(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	driver, err := driversService(c).FindOne(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

// POST /api/drivers
func CreateDriver(c *gin.Context) {
	var payload repositories.Driver
	if !BindJSONOrError(c, &payload) {
		return
	}
	resp, err := driversService(c).Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// PATCH /api/drivers/:id
func UpdateDriver(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload repositories.Driver
	if !BindJSONOrError(c, &payload) {
		return
	}
	payload.ID = id
	resp, err := driversService(c).Update(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PATCH /api/drivers/:id/status
func ChangeDriverStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload struct {
		EndDate string `json:"endDate"`
	}
	if !BindJSONOrError(c, &payload) {
		return
	}
	resp, err := driversService(c).ChangeStatus(id, payload.EndDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DELETE /api/drivers/:id
func DeleteDriver(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := driversService(c).Remove(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
