package services

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// ReconcileService reconciles a nested reservation form payload against the
// persisted rows: partitions every collection into new/existing, fans the
// batch writes out concurrently, then recomputes the reservation total from
// what actually landed.
type ReconcileService struct {
	ReservationRepo repositories.ReservationRepository
	ClientRepo      repositories.ClientRepository
	ProductRepo     repositories.ProductRepository
	RequestID       string
}

// ReconcileRequest is the flat payload the edit form submits. Collections may
// be absent; an absent collection is left untouched.
type ReconcileRequest struct {
	ExchangeRate      float64         `json:"exchange_rate"`
	Status            string          `json:"status"`
	PrimaryClientName string          `json:"primary_client_name"`
	Clients           []models.Client `json:"clients"`
	models.ProductSet
}

// Reconcile applies the request to the reservation identified by code.
//
// All collection writes are issued concurrently and awaited together; the
// first error is raised after the whole batch settles. There is no
// compensating transaction: writes that already landed stay (the store's
// per-statement atomicity is the only cross-call guarantee). The totals
// recomputation runs strictly after the fan-in because it reads the rows the
// batch just wrote.
func (s ReconcileService) Reconcile(code string, req ReconcileRequest) (models.Reservation, error) {
	res, err := s.ReservationRepo.GetByCode(code)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Reservation{}, domain.NotFoundError{Resource: "reservation"}
	}
	if err != nil {
		return models.Reservation{}, err
	}

	rate := res.ExchangeRate
	if req.ExchangeRate > 0 {
		rate = req.ExchangeRate
	}
	prepareProductSet(&req.ProductSet, rate)

	jobs := []func() error{}

	if req.ExchangeRate > 0 {
		jobs = append(jobs, func() error {
			return s.ReservationRepo.UpdateRate(res.ID, req.ExchangeRate)
		})
	}

	clients := domain.Partition(req.Clients, func(c models.Client) int64 { return c.ID })
	if len(clients.Insert) > 0 {
		jobs = append(jobs, func() error { return s.ClientRepo.InsertBatch(res.ID, clients.Insert) })
	}
	if len(clients.Update) > 0 {
		jobs = append(jobs, func() error { return s.ClientRepo.UpsertBatch(res.ID, clients.Update) })
	}

	flights := domain.Partition(req.Flights, func(f models.Flight) int64 { return f.ID })
	if len(flights.Insert) > 0 {
		jobs = append(jobs, func() error { return s.ProductRepo.InsertFlights(res.ID, rate, flights.Insert) })
	}
	if len(flights.Update) > 0 {
		jobs = append(jobs, func() error { return s.ProductRepo.UpsertFlights(res.ID, rate, flights.Update) })
	}

	hotels := domain.Partition(req.Hotels, func(h models.Hotel) int64 { return h.ID })
	if len(hotels.Insert) > 0 {
		jobs = append(jobs, func() error { return s.ProductRepo.InsertHotels(res.ID, rate, hotels.Insert) })
	}
	if len(hotels.Update) > 0 {
		jobs = append(jobs, func() error { return s.ProductRepo.UpsertHotels(res.ID, rate, hotels.Update) })
	}

	tours := domain.Partition(req.Tours, func(t models.Tour) int64 { return t.ID })
	if len(tours.Insert) > 0 {
		jobs = append(jobs, func() error { return s.ProductRepo.InsertTours(res.ID, rate, tours.Insert) })
	}
	if len(tours.Update) > 0 {
		jobs = append(jobs, func() error { return s.ProductRepo.UpsertTours(res.ID, rate, tours.Update) })
	}

	rentals := domain.Partition(req.RentalCars, func(rc models.RentalCar) int64 { return rc.ID })
	if len(rentals.Insert) > 0 {
		jobs = append(jobs, func() error { return s.ProductRepo.InsertRentalCars(res.ID, rate, rentals.Insert) })
	}
	if len(rentals.Update) > 0 {
		jobs = append(jobs, func() error { return s.ProductRepo.UpsertRentalCars(res.ID, rate, rentals.Update) })
	}

	insurances := domain.Partition(req.Insurances, func(ins models.Insurance) int64 { return ins.ID })
	if len(insurances.Insert) > 0 {
		jobs = append(jobs, func() error { return s.ProductRepo.InsertInsurances(res.ID, rate, insurances.Insert) })
	}
	if len(insurances.Update) > 0 {
		jobs = append(jobs, func() error { return s.ProductRepo.UpsertInsurances(res.ID, rate, insurances.Update) })
	}

	utils.LogEvent(s.RequestID, "reconcile", "fanout", fmt.Sprintf("reservation=%s writes=%d", res.Code, len(jobs)))

	if err := runAll(jobs); err != nil {
		return res, err
	}

	total, err := s.ReservationRepo.RecomputeTotal(res.ID)
	if err != nil {
		return res, err
	}
	if err := s.ReservationRepo.SaveSummary(res.ID, total, req.Status, req.PrimaryClientName); err != nil {
		return res, err
	}

	res.TotalAmount = total
	if req.ExchangeRate > 0 {
		res.ExchangeRate = req.ExchangeRate
	}
	if req.Status != "" {
		res.Status = req.Status
	}
	if req.PrimaryClientName != "" {
		res.PrimaryClientName = req.PrimaryClientName
	}
	return res, nil
}

// runAll fans the jobs out on goroutines, waits for every one to settle and
// returns the first error. Siblings of a failing job are never cancelled.
func runAll(jobs []func() error) error {
	if len(jobs) == 0 {
		return nil
	}
	var wg sync.WaitGroup
	errs := make([]error, len(jobs))
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job func() error) {
			defer wg.Done()
			errs[i] = job()
		}(i, job)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
