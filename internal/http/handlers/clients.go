package handlers

import (
	"net/http"

	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func clientsService(c *gin.Context) services.ClientsService {
	return services.ClientsService{
		ClientsRepo: repositories.ClientsRepository{},
		RequestID:   requestID(c),
	}
}

// GET /api/clients?page=1&limit=10
func GetClients(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := clientsService(c).FindAll(page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/clients/names
func GetClientNames(c *gin.Context) {
	clients, err := clientsService(c).FindOnlyNames()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GET /api/clients/:id
func GetClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	client, err := clientsService(c).FindOne(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// POST /api/clients
func CreateClient(c *gin.Context) {
	var payload repositories.Client
	if !BindJSONOrError(c, &payload) {
		return
	}
	resp, err := clientsService(c).Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// PATCH /api/clients/:id
func UpdateClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload repositories.Client
	if !BindJSONOrError(c, &payload) {
		return
	}
	payload.ID = id
	resp, err := clientsService(c).Update(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PATCH /api/clients/:id/status
func ChangeClientStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := clientsService(c).ChangeStatus(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DELETE /api/clients/:id
func DeleteClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := clientsService(c).Remove(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
