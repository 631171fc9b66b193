package handlers

import (
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/quotation/generate
func DownloadQuotation(c *gin.Context) {
	var payload services.Quotation
	if !BindJSONOrError(c, &payload) {
		return
	}
	svc := services.QuotationService{RequestID: requestID(c)}
	pdf, filename, err := svc.Generate(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, pdf, filename)
}
