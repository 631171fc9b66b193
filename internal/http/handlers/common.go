package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "invalid_body", "el cuerpo de la petición está vacío", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", "el cuerpo de la petición no es válido", err)
		return false
	}
	return true
}

// pathID parses a positive numeric :id param, answering 400 on failure.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "el id no es válido", err)
		return 0, false
	}
	return id, true
}

// pageParams reads ?page= and ?limit= with the defaults the frontend uses.
func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(strings.TrimSpace(c.Query("page")))
	limit, _ = strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func requestID(c *gin.Context) string {
	return middleware.GetRequestID(c)
}

func sendPDF(c *gin.Context, pdf []byte, filename string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func sendXLSX(c *gin.Context, book []byte, filename string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", book)
}
