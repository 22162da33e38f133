package domain

// ID is used across domain entities. Zero means "not yet persisted".
type ID int64

// ReservationStatus is the reservation-level lifecycle label.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationSettled   ReservationStatus = "Settled"
	ReservationCancelled ReservationStatus = "Cancelled"
)

// ProductStatus is the per-line-item lifecycle. Eight states, matching the
// back-office board columns.
type ProductStatus string

const (
	ProductPending         ProductStatus = "Pending"
	ProductInProgress      ProductStatus = "InProgress"
	ProductConfirmed       ProductStatus = "Confirmed"
	ProductChangeRequested ProductStatus = "ChangeRequested"
	ProductCancelRequested ProductStatus = "CancelRequested"
	ProductCancelled       ProductStatus = "Cancelled"
	ProductRefundRequested ProductStatus = "RefundRequested"
	ProductRefunded        ProductStatus = "Refunded"
)

// ProductType tags which product table an additional option belongs to.
type ProductType string

const (
	TypeFlight    ProductType = "flight"
	TypeHotel     ProductType = "hotel"
	TypeTour      ProductType = "tour"
	TypeRentalCar ProductType = "rental_car"
	TypeInsurance ProductType = "insurance"
)

// ValidProductType reports whether t names one of the five product tables.
func ValidProductType(t ProductType) bool {
	switch t {
	case TypeFlight, TypeHotel, TypeTour, TypeRentalCar, TypeInsurance:
		return true
	}
	return false
}
