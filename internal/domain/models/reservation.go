package models

// Reservation is the top-level booking aggregate. Code is the human-readable
// identifier ("YYYYMMDD-JH###"); TotalAmount is always server-recomputed from
// the product tables, never trusted from client input.
type Reservation struct {
	ID                int64   `json:"id"`
	Code              string  `json:"code"`
	Status            string  `json:"status"`
	PrimaryClientName string  `json:"primary_client_name"`
	ExchangeRate      float64 `json:"exchange_rate"`
	TotalAmount       float64 `json:"total_amount"`
	CreatedAt         string  `json:"created_at,omitempty"`
	UpdatedAt         string  `json:"updated_at,omitempty"`
}

// Client is a traveler attached to a reservation. A zero ID means the row has
// not been persisted yet.
type Client struct {
	ID            int64  `json:"id"`
	ReservationID int64  `json:"reservation_id"`
	Name          string `json:"name"`
	NameEN        string `json:"name_en"`
	Gender        string `json:"gender"`
	NationalID    string `json:"national_id"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Notes         string `json:"notes"`
}

// ReservationDetail is the full aggregate the edit form works against.
type ReservationDetail struct {
	Reservation
	Clients []Client `json:"clients"`
	ProductSet
}
