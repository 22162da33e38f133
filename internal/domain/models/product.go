package models

// ProductCore is the pricing shape shared by every product line item.
//
// RateEdited marks that the user just changed the exchange rate on the form
// for this item; the reconciler then attaches the reservation's current rate
// to the persisted row. The marker itself is never stored.
type ProductCore struct {
	ID            int64  `json:"id"`
	ReservationID int64  `json:"reservation_id"`
	Status        string `json:"status"`

	AdultCount int `json:"adult_count"`
	ChildCount int `json:"child_count"`
	KidCount   int `json:"kid_count"`

	AdultPrice float64 `json:"adult_price"`
	ChildPrice float64 `json:"child_price"`
	KidPrice   float64 `json:"kid_price"`

	AdultCost float64 `json:"adult_cost"`
	ChildCost float64 `json:"child_cost"`
	KidCost   float64 `json:"kid_cost"`

	ExchangeRate float64 `json:"exchange_rate"`
	RateEdited   bool    `json:"exchange_rate_updated,omitempty"`

	TotalAmount    float64 `json:"total_amount"`
	TotalCost      float64 `json:"total_cost"`
	TotalAmountKRW int64   `json:"total_amount_krw"`
	TotalCostKRW   int64   `json:"total_cost_krw"`

	Notes string `json:"notes"`

	Options []Option `json:"options,omitempty"`
}

type Flight struct {
	ProductCore
	FlightNo      string `json:"flight_no"`
	DepartureCity string `json:"departure_city"`
	ArrivalCity   string `json:"arrival_city"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}

type Hotel struct {
	ProductCore
	Region    string `json:"region"`
	HotelName string `json:"hotel_name"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Nights    int    `json:"nights"`
}

type Tour struct {
	ProductCore
	TourName string `json:"tour_name"`
	TourDate string `json:"tour_date"`
	Days     int    `json:"days"`
}

type RentalCar struct {
	ProductCore
	CarType    string `json:"car_type"`
	PickupDate string `json:"pickup_date"`
	ReturnDate string `json:"return_date"`
	Days       int    `json:"days"`
}

type Insurance struct {
	ProductCore
	Insurer   string `json:"insurer"`
	PlanName  string `json:"plan_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ProductSet groups the per-type collections of a reservation payload.
// Absent collections unmarshal to nil and are skipped by the reconciler.
type ProductSet struct {
	Flights    []Flight    `json:"flights"`
	Hotels     []Hotel     `json:"hotels"`
	Tours      []Tour      `json:"tours"`
	RentalCars []RentalCar `json:"rental_cars"`
	Insurances []Insurance `json:"insurances"`
}

// SumTotalAmount adds up the sale totals of every line item in the set.
func (p ProductSet) SumTotalAmount() float64 {
	var sum float64
	for i := range p.Flights {
		sum += p.Flights[i].TotalAmount
	}
	for i := range p.Hotels {
		sum += p.Hotels[i].TotalAmount
	}
	for i := range p.Tours {
		sum += p.Tours[i].TotalAmount
	}
	for i := range p.RentalCars {
		sum += p.RentalCars[i].TotalAmount
	}
	for i := range p.Insurances {
		sum += p.Insurances[i].TotalAmount
	}
	return sum
}
