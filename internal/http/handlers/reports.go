package handlers

import (
	"net/http"

	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func reportService(c *gin.Context) services.ReportService {
	return services.ReportService{
		ReportRepo: repositories.ReportRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
}

// GET /api/reports/settlement?from=2025-01-01&to=2025-01-31
func GetSettlementReport(c *gin.Context) {
	svc := reportService(c)
	report, err := svc.Settlement(c.Query("from"), c.Query("to"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, report)
}
