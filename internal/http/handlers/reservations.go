package handlers

import (
	"net/http"

	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func reservationService(c *gin.Context) services.ReservationService {
	return services.ReservationService{
		ReservationRepo: repositories.ReservationRepository{},
		ClientRepo:      repositories.ClientRepository{},
		ProductRepo:     repositories.ProductRepository{},
		OptionRepo:      repositories.OptionRepository{},
		RequestID:       middleware.GetRequestID(c),
	}
}

func reconcileService(c *gin.Context) services.ReconcileService {
	return services.ReconcileService{
		ReservationRepo: repositories.ReservationRepository{},
		ClientRepo:      repositories.ClientRepository{},
		ProductRepo:     repositories.ProductRepository{},
		RequestID:       middleware.GetRequestID(c),
	}
}

// GET /api/reservations
func ListReservations(c *gin.Context) {
	svc := reservationService(c)
	out, err := svc.List(c.Query("status"), c.Query("from"), c.Query("to"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, out)
}

// GET /api/reservations/:code
func GetReservation(c *gin.Context) {
	svc := reservationService(c)
	detail, err := svc.Get(c.Param("code"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, detail)
}

// POST /api/reservations
func CreateReservation(c *gin.Context) {
	var req services.CreateReservationRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := reservationService(c)
	res, err := svc.Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusCreated, res)
}

// PUT /api/reservations/:code
//
// The aggregate update: reconciles the nested form payload against the
// persisted rows, recomputes the reservation total and returns the refreshed
// reservation so the form can reset its dirty-state baseline.
func UpdateReservation(c *gin.Context) {
	var req services.ReconcileRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := reconcileService(c)
	res, err := svc.Reconcile(c.Param("code"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, res)
}
