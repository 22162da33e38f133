package handlers

import (
	"fmt"
	"net/http"

	"backoffice/internal/http/middleware"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		Reservations: reservationService(c),
		Reports:      reportService(c),
		RequestID:    middleware.GetRequestID(c),
	}
}

// GET /api/reservations/:code/invoice
func DownloadInvoice(c *gin.Context) {
	svc := docsService(c)
	pdf, filename, err := svc.GenerateInvoice(c.Param("code"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/reports/settlement/pdf?from=&to=
func DownloadSettlementReport(c *gin.Context) {
	svc := docsService(c)
	pdf, filename, err := svc.GenerateSettlementReport(c.Query("from"), c.Query("to"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
