package services

import (
	"database/sql"
	"errors"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// ReservationService covers reservation intake and the read side of the edit
// form.
type ReservationService struct {
	ReservationRepo repositories.ReservationRepository
	ClientRepo      repositories.ClientRepository
	ProductRepo     repositories.ProductRepository
	OptionRepo      repositories.OptionRepository
	RequestID       string

	// Now is injectable for sequence tests; defaults to time.Now.
	Now func() time.Time
}

// CreateReservationRequest is the intake payload: reservation-level fields
// plus the initial client and product batches.
type CreateReservationRequest struct {
	Status            string          `json:"status"`
	PrimaryClientName string          `json:"primary_client_name"`
	ExchangeRate      float64         `json:"exchange_rate"`
	Clients           []models.Client `json:"clients"`
	models.ProductSet
}

// Create allocates the next daily code and persists the reservation together
// with its initial nested entities in one transaction.
func (s ReservationService) Create(req CreateReservationRequest) (models.Reservation, error) {
	if req.ExchangeRate < 0 {
		return models.Reservation{}, domain.ValidationError{Field: "exchange_rate", Msg: "must not be negative"}
	}

	status := req.Status
	if status == "" {
		status = string(domain.ReservationPending)
	}

	prepareProductSet(&req.ProductSet, req.ExchangeRate)

	res := models.Reservation{
		Status:            status,
		PrimaryClientName: req.PrimaryClientName,
		ExchangeRate:      req.ExchangeRate,
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	if err := s.ReservationRepo.Create(now(), &res, req.Clients, req.ProductSet); err != nil {
		return models.Reservation{}, err
	}

	utils.LogEvent(s.RequestID, "reservation", "create", "code="+res.Code)
	return res, nil
}

// Get loads the full aggregate the edit form works against: the reservation,
// its clients and every product line item with attached options.
func (s ReservationService) Get(code string) (models.ReservationDetail, error) {
	res, err := s.ReservationRepo.GetByCode(code)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ReservationDetail{}, domain.NotFoundError{Resource: "reservation"}
	}
	if err != nil {
		return models.ReservationDetail{}, err
	}

	detail := models.ReservationDetail{Reservation: res}

	if detail.Clients, err = s.ClientRepo.ListByReservation(res.ID); err != nil {
		return detail, err
	}
	if detail.Flights, err = s.ProductRepo.ListFlights(res.ID); err != nil {
		return detail, err
	}
	if detail.Hotels, err = s.ProductRepo.ListHotels(res.ID); err != nil {
		return detail, err
	}
	if detail.Tours, err = s.ProductRepo.ListTours(res.ID); err != nil {
		return detail, err
	}
	if detail.RentalCars, err = s.ProductRepo.ListRentalCars(res.ID); err != nil {
		return detail, err
	}
	if detail.Insurances, err = s.ProductRepo.ListInsurances(res.ID); err != nil {
		return detail, err
	}

	for i := range detail.Flights {
		if detail.Flights[i].Options, err = s.OptionRepo.ListByProduct(string(domain.TypeFlight), detail.Flights[i].ID); err != nil {
			return detail, err
		}
	}
	for i := range detail.Hotels {
		if detail.Hotels[i].Options, err = s.OptionRepo.ListByProduct(string(domain.TypeHotel), detail.Hotels[i].ID); err != nil {
			return detail, err
		}
	}
	for i := range detail.Tours {
		if detail.Tours[i].Options, err = s.OptionRepo.ListByProduct(string(domain.TypeTour), detail.Tours[i].ID); err != nil {
			return detail, err
		}
	}
	for i := range detail.RentalCars {
		if detail.RentalCars[i].Options, err = s.OptionRepo.ListByProduct(string(domain.TypeRentalCar), detail.RentalCars[i].ID); err != nil {
			return detail, err
		}
	}
	for i := range detail.Insurances {
		if detail.Insurances[i].Options, err = s.OptionRepo.ListByProduct(string(domain.TypeInsurance), detail.Insurances[i].ID); err != nil {
			return detail, err
		}
	}

	return detail, nil
}

// List returns reservations for the board view.
func (s ReservationService) List(status, from, to string) ([]models.Reservation, error) {
	return s.ReservationRepo.List(status, from, to)
}
