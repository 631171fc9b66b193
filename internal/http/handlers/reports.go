package handlers

import (
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func reportsService(c *gin.Context) services.ReportsService {
	return services.ReportsService{
		TravelsRepo:  repositories.TravelsRepository{},
		InvoicesRepo: repositories.InvoicesRepository{},
		RequestID:    requestID(c),
	}
}

// POST /api/reports/generate/internal
func DownloadInternalReport(c *gin.Context) {
	var filter services.InternalReportFilter
	if !BindJSONOrError(c, &filter) {
		return
	}
	pdf, filename, err := reportsService(c).GenerateInternalReport(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, pdf, filename)
}

// POST /api/reports/generate/external
func DownloadExternalReport(c *gin.Context) {
	var filter services.ExternalReportFilter
	if !BindJSONOrError(c, &filter) {
		return
	}
	pdf, filename, err := reportsService(c).GenerateExternalReport(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, pdf, filename)
}

// POST /api/reports/generate/invoices/:id
func DownloadPendingInvoicesPDF(c *gin.Context) {
	clientID, ok := pathID(c)
	if !ok {
		return
	}
	pdf, filename, err := reportsService(c).GeneratePendingInvoicesPDF(clientID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, pdf, filename)
}

// POST /api/reports/generate/excel/:id
func DownloadPendingInvoicesXLSX(c *gin.Context) {
	clientID, ok := pathID(c)
	if !ok {
		return
	}
	book, filename, err := reportsService(c).GeneratePendingInvoicesXLSX(clientID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendXLSX(c, book, filename)
}
