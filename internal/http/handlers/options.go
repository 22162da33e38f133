package handlers

import (
	"net/http"
	"strconv"

	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func optionService(c *gin.Context) services.OptionService {
	return services.OptionService{
		OptionRepo: repositories.OptionRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
}

// POST /api/options/upsert
//
// Accepts a mixed batch of new and existing options; responds with the merged
// persisted rows the form resets its baseline to.
func UpsertOptions(c *gin.Context) {
	var items []models.Option
	if !BindJSONOrError(c, &items) {
		return
	}

	svc := optionService(c)
	out, err := svc.Upsert(items)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, out)
}

// GET /api/options?product_type=hotel&product_id=7
func ListOptions(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Query("product_id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid product_id", err)
		return
	}

	svc := optionService(c)
	out, err := svc.ListByProduct(c.Query("product_type"), productID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, out)
}
