package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func travelsService(c *gin.Context) services.TravelsService {
	return services.TravelsService{
		TravelsRepo: repositories.TravelsRepository{},
		RequestID:   requestID(c),
	}
}

// GET /api/travels?truckPlate=ABC123&driverId=1&clientId=2&page=1&limit=10
func GetTravels(c *gin.Context) {
	page, limit := pageParams(c)
	driverID, _ := strconv.ParseInt(c.Query("driverId"), 10, 64)
	clientID, _ := strconv.ParseInt(c.Query("clientId"), 10, 64)

	result, err := travelsService(c).FindAll(c.Query("truckPlate"), driverID, clientID, page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/travels/search?keyword=LIB
func SearchTravels(c *gin.Context) {
	travels, err := travelsService(c).FindByNumberOrDest(strings.TrimSpace(c.Query("keyword")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, travels)
}

// GET /api/travels/:id
func GetTravel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	travel, err := travelsService(c).FindOne(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, travel)
}

// POST /api/travels
func CreateTravel(c *gin.Context) {
	var payload services.CreateTravelInput
	if !BindJSONOrError(c, &payload) {
		return
	}
	resp, err := travelsService(c).Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// PATCH /api/travels/:id
func UpdateTravel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload repositories.CreateTravel
	if !BindJSONOrError(c, &payload) {
		return
	}
	resp, err := travelsService(c).Update(id, payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PATCH /api/travels/:id/status
func ChangeTravelStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := travelsService(c).ChangeStatus(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DELETE /api/travels/:id
func DeleteTravel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := travelsService(c).Remove(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
