package api

import (
	"log"
	stdhttp "net/http"

	intconfig "backend/internal/config"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "ruta no encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		trucks := api.Group("/trucks")
		trucks.GET("", h.GetTrucks)
		trucks.GET("/names", h.GetTruckNames)
		trucks.GET("/balance", h.GetTruckBalance)
		trucks.GET("/:plate", h.GetTruck)
		trucks.POST("", h.CreateTruck)
		trucks.PATCH("/:plate", h.UpdateTruck)
		trucks.PATCH("/:plate/status", h.ChangeTruckStatus)
		trucks.DELETE("/:plate", h.DeleteTruck)

		drivers := api.Group("/drivers")
		drivers.GET("", h.GetDrivers)
		drivers.GET("/names", h.GetDriverNames)
		drivers.GET("/:id", h.GetDriver)
		drivers.POST("", h.CreateDriver)
		drivers.PATCH("/:id", h.UpdateDriver)
		drivers.PATCH("/:id/status", h.ChangeDriverStatus)
		drivers.DELETE("/:id", h.DeleteDriver)

		clients := api.Group("/clients")
		clients.GET("", h.GetClients)
		clients.GET("/names", h.GetClientNames)
		clients.GET("/:id", h.GetClient)
		clients.POST("", h.CreateClient)
		clients.PATCH("/:id", h.UpdateClient)
		clients.PATCH("/:id/status", h.ChangeClientStatus)
		clients.DELETE("/:id", h.DeleteClient)

		travels := api.Group("/travels")
		travels.GET("", h.GetTravels)
		travels.GET("/search", h.SearchTravels)
		travels.GET("/:id", h.GetTravel)
		travels.POST("", h.CreateTravel)
		travels.PATCH("/:id", h.UpdateTravel)
		travels.PATCH("/:id/status", h.ChangeTravelStatus)
		travels.DELETE("/:id", h.DeleteTravel)

		expenses := api.Group("/expenses")
		expenses.GET("", h.GetExpenses)
		expenses.GET("/:id", h.GetExpense)
		expenses.POST("", h.CreateExpense)
		expenses.PATCH("/:id", h.UpdateExpense)
		expenses.PATCH("/:id/status", h.ChangeExpenseStatus)
		expenses.DELETE("/:id", h.DeleteExpense)

		invoices := api.Group("/invoices")
		invoices.GET("", h.GetInvoices)
		invoices.GET("/calc-amount", h.CalcInvoiceAmount)
		invoices.GET("/:id", h.GetInvoice)
		invoices.POST("", h.CreateInvoice)
		invoices.PATCH("/:id", h.UpdateInvoice)
		invoices.PATCH("/:id/status", h.ChangeInvoiceStatus)
		invoices.PATCH("/:id/paid", h.ChangeInvoicePaidStatus)
		invoices.DELETE("/:id", h.DeleteInvoice)

		reports := api.Group("/reports")
		reports.POST("/generate/internal", h.DownloadInternalReport)
		reports.POST("/generate/external", h.DownloadExternalReport)
		reports.POST("/generate/invoices/:id", h.DownloadPendingInvoicesPDF)
		reports.POST("/generate/excel/:id", h.DownloadPendingInvoicesXLSX)

		api.POST("/quotation/generate", h.DownloadQuotation)
	}

	return r
}
