package services

import (
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// applyCoreTotals recomputes a line item's derived monetary fields on the
// server; client-supplied totals are never trusted. A RateEdited marker swaps
// the item onto the reservation's current exchange rate before converting.
func applyCoreTotals(c *models.ProductCore, days int, reservationRate float64) {
	if c.RateEdited {
		c.ExchangeRate = reservationRate
	}
	if c.Status == "" {
		c.Status = string(domain.ProductPending)
	}
	t := domain.ComputeTotals(domain.AmountInput{
		AdultCount: c.AdultCount, ChildCount: c.ChildCount, KidCount: c.KidCount,
		AdultPrice: c.AdultPrice, ChildPrice: c.ChildPrice, KidPrice: c.KidPrice,
		AdultCost: c.AdultCost, ChildCost: c.ChildCost, KidCost: c.KidCost,
		ExchangeRate:  c.ExchangeRate,
		DayMultiplier: days,
	})
	c.TotalAmount = t.TotalAmount
	c.TotalCost = t.TotalCost
	c.TotalAmountKRW = t.TotalAmountKRW
	c.TotalCostKRW = t.TotalCostKRW
}

// prepareProductSet derives totals for every line item in the set. Hotels and
// rental cars are day-rate products; their night/day counts multiply all
// traveler classes.
func prepareProductSet(set *models.ProductSet, reservationRate float64) {
	for i := range set.Flights {
		applyCoreTotals(&set.Flights[i].ProductCore, 1, reservationRate)
	}
	for i := range set.Hotels {
		applyCoreTotals(&set.Hotels[i].ProductCore, set.Hotels[i].Nights, reservationRate)
	}
	for i := range set.Tours {
		applyCoreTotals(&set.Tours[i].ProductCore, set.Tours[i].Days, reservationRate)
	}
	for i := range set.RentalCars {
		applyCoreTotals(&set.RentalCars[i].ProductCore, set.RentalCars[i].Days, reservationRate)
	}
	for i := range set.Insurances {
		applyCoreTotals(&set.Insurances[i].ProductCore, 1, reservationRate)
	}
}

func applyOptionTotals(o *models.Option) {
	if o.Status == "" {
		o.Status = string(domain.ProductPending)
	}
	t := domain.ComputeTotals(domain.AmountInput{
		AdultCount: o.AdultCount, ChildCount: o.ChildCount, KidCount: o.KidCount,
		AdultPrice: o.AdultPrice, ChildPrice: o.ChildPrice, KidPrice: o.KidPrice,
		AdultCost: o.AdultCost, ChildCost: o.ChildCost, KidCost: o.KidCost,
		ExchangeRate: o.ExchangeRate,
	})
	o.TotalAmount = t.TotalAmount
	o.TotalCost = t.TotalCost
	o.TotalAmountKRW = t.TotalAmountKRW
	o.TotalCostKRW = t.TotalCostKRW
}
