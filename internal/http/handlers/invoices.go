package handlers

import (
	"net/http"
	"strconv"

	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func invoicesService(c *gin.Context) services.InvoicesService {
	return services.InvoicesService{
		InvoicesRepo: repositories.InvoicesRepository{},
		TravelsRepo:  repositories.TravelsRepository{},
		RequestID:    requestID(c),
	}
}

type invoicePayload struct {
	repositories.Invoice
	TravelIDs []int64 `json:"travelIds"`
}

// GET /api/invoices?page=1&limit=10
func GetInvoices(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := invoicesService(c).FindAll(page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/invoices/calc-amount?clientId=3&from=2025-01-01&to=2025-01-31
//
// An empty window is a valid quote of zero, not an error.
func CalcInvoiceAmount(c *gin.Context) {
	clientID, _ := strconv.ParseInt(c.Query("clientId"), 10, 64)
	amount, err := invoicesService(c).CalcAmount(clientID, c.Query("from"), c.Query("to"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, amount)
}

// GET /api/invoices/:id
func GetInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	invoice, err := invoicesService(c).FindOne(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// POST /api/invoices
func CreateInvoice(c *gin.Context) {
	var payload invoicePayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	resp, err := invoicesService(c).Create(payload.Invoice, payload.TravelIDs)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// PATCH /api/invoices/:id
func UpdateInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload invoicePayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	payload.ID = id
	resp, err := invoicesService(c).Update(payload.Invoice, payload.TravelIDs)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PATCH /api/invoices/:id/status
func ChangeInvoiceStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := invoicesService(c).ChangeStatus(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PATCH /api/invoices/:id/paid
func ChangeInvoicePaidStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := invoicesService(c).ChangePaidStatus(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DELETE /api/invoices/:id
func DeleteInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := invoicesService(c).Remove(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
