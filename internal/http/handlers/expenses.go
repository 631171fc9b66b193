package handlers

import (
	"net/http"
	"strings"
	"time"

	"backend/internal/finance"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func expensesService(c *gin.Context) services.ExpensesService {
	return services.ExpensesService{
		ExpensesRepo: repositories.ExpensesRepository{},
		RequestID:    requestID(c),
	}
}

// GET /api/expenses?truckPlate=ABC123&date=2025-01-08&page=1&limit=10
func GetExpenses(c *gin.Context) {
	page, limit := pageParams(c)

	var date *time.Time
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		parsed, err := finance.ParseDate(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid_date", "la fecha no es válida", err)
			return
		}
		date = &parsed
	}

	result, err := expensesService(c).FindAll(c.Query("truckPlate"), date, page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/expenses/:id
func GetExpense(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	expense, err := expensesService(c).FindOne(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// POST /api/expenses
func CreateExpense(c *gin.Context) {
	var payload finance.Expense
	if !BindJSONOrError(c, &payload) {
		return
	}
	resp, err := expensesService(c).Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// PATCH /api/expenses/:id
func UpdateExpense(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload finance.Expense
	if !BindJSONOrError(c, &payload) {
		return
	}
	resp, err := expensesService(c).Update(id, payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PATCH /api/expenses/:id/status
func ChangeExpenseStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := expensesService(c).ChangeStatus(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DELETE /api/expenses/:id
func DeleteExpense(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := expensesService(c).Remove(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
