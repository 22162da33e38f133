package repositories

import (
	"database/sql"

	"backoffice/internal/config"
	"backoffice/internal/domain/models"
)

// ProductRepository wraps DB access for the five product line-item tables.
// Each collection write is one batch statement: a multi-row INSERT for new
// rows, a multi-row INSERT ... ON DUPLICATE KEY UPDATE for identified rows.
type ProductRepository struct {
	DB *sql.DB
}

func (r ProductRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

var productCoreCols = []string{
	"reservation_id", "status",
	"adult_count", "child_count", "kid_count",
	"adult_price", "child_price", "kid_price",
	"adult_cost", "child_cost", "kid_cost",
	"exchange_rate",
	"total_amount", "total_cost", "total_amount_krw", "total_cost_krw",
	"notes",
}

// coreValues renders the shared pricing columns of one line item.
//
// Exchange-rate propagation: a row whose RateEdited marker is set carries the
// reservation's current rate. For updates, unmarked rows carry a zero sentinel
// which the upsert clause turns into "keep the stored rate". The marker itself
// is stripped here and never persisted.
func coreValues(resID int64, resRate float64, c *models.ProductCore, forUpdate bool) []any {
	rate := c.ExchangeRate
	if c.RateEdited {
		rate = resRate
	} else if forUpdate {
		rate = 0
	}
	return []any{
		resID, c.Status,
		c.AdultCount, c.ChildCount, c.KidCount,
		c.AdultPrice, c.ChildPrice, c.KidPrice,
		c.AdultCost, c.ChildCost, c.KidCost,
		rate,
		c.TotalAmount, c.TotalCost, c.TotalAmountKRW, c.TotalCostKRW,
		c.Notes,
	}
}

// upsertClause assigns every column from VALUES except exchange_rate, which
// only moves when a non-zero rate was attached to the row.
func upsertClause(cols []string) []string {
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		if col == "exchange_rate" {
			out = append(out, "exchange_rate=IF(VALUES(exchange_rate)>0, VALUES(exchange_rate), exchange_rate)")
			continue
		}
		out = append(out, col+"=VALUES("+col+")")
	}
	return out
}

const coreSelect = `
		id,
		reservation_id,
		COALESCE(status,''),
		COALESCE(adult_count,0), COALESCE(child_count,0), COALESCE(kid_count,0),
		COALESCE(adult_price,0), COALESCE(child_price,0), COALESCE(kid_price,0),
		COALESCE(adult_cost,0), COALESCE(child_cost,0), COALESCE(kid_cost,0),
		COALESCE(exchange_rate,0),
		COALESCE(total_amount,0), COALESCE(total_cost,0),
		COALESCE(total_amount_krw,0), COALESCE(total_cost_krw,0),
		COALESCE(notes,'')`

func coreScanDest(c *models.ProductCore) []any {
	return []any{
		&c.ID, &c.ReservationID, &c.Status,
		&c.AdultCount, &c.ChildCount, &c.KidCount,
		&c.AdultPrice, &c.ChildPrice, &c.KidPrice,
		&c.AdultCost, &c.ChildCost, &c.KidCost,
		&c.ExchangeRate,
		&c.TotalAmount, &c.TotalCost,
		&c.TotalAmountKRW, &c.TotalCostKRW,
		&c.Notes,
	}
}

func withID(cols []string) []string {
	return append([]string{"id"}, cols...)
}

// insertProducts writes every collection of the set; used by the reservation
// creation transaction.
func insertProducts(ex execer, resID int64, rate float64, set models.ProductSet) error {
	if err := insertFlights(ex, resID, rate, set.Flights); err != nil {
		return err
	}
	if err := insertHotels(ex, resID, rate, set.Hotels); err != nil {
		return err
	}
	if err := insertTours(ex, resID, rate, set.Tours); err != nil {
		return err
	}
	if err := insertRentalCars(ex, resID, rate, set.RentalCars); err != nil {
		return err
	}
	return insertInsurances(ex, resID, rate, set.Insurances)
}

// ---- flights ----

var flightCols = append(append([]string{}, productCoreCols...),
	"flight_no", "departure_city", "arrival_city", "departure_time", "arrival_time")

func flightValues(resID int64, rate float64, f *models.Flight, forUpdate bool) []any {
	return append(coreValues(resID, rate, &f.ProductCore, forUpdate),
		f.FlightNo, f.DepartureCity, f.ArrivalCity, f.DepartureTime, f.ArrivalTime)
}

func insertFlights(ex execer, resID int64, rate float64, items []models.Flight) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(items))
	for i := range items {
		rows = append(rows, flightValues(resID, rate, &items[i], false))
	}
	_, err := bulkInsert(ex, "flights", flightCols, rows)
	return err
}

func (r ProductRepository) InsertFlights(resID int64, rate float64, items []models.Flight) error {
	return insertFlights(r.db(), resID, rate, items)
}

func (r ProductRepository) UpsertFlights(resID int64, rate float64, items []models.Flight) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(items))
	for i := range items {
		rows = append(rows, append([]any{items[i].ID}, flightValues(resID, rate, &items[i], true)...))
	}
	return bulkUpsert(r.db(), "flights", withID(flightCols), rows, upsertClause(flightCols))
}

func (r ProductRepository) ListFlights(resID int64) ([]models.Flight, error) {
	rows, err := r.db().Query(`SELECT`+coreSelect+`,
		COALESCE(flight_no,''), COALESCE(departure_city,''), COALESCE(arrival_city,''),
		COALESCE(departure_time,''), COALESCE(arrival_time,'')
		FROM flights WHERE reservation_id=? ORDER BY id ASC`, resID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Flight{}
	for rows.Next() {
		var f models.Flight
		dest := append(coreScanDest(&f.ProductCore),
			&f.FlightNo, &f.DepartureCity, &f.ArrivalCity, &f.DepartureTime, &f.ArrivalTime)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// ---- hotels ----

var hotelCols = append(append([]string{}, productCoreCols...),
	"region", "hotel_name", "check_in", "check_out", "nights")

func hotelValues(resID int64, rate float64, h *models.Hotel, forUpdate bool) []any {
	return append(coreValues(resID, rate, &h.ProductCore, forUpdate),
		h.Region, h.HotelName, h.CheckIn, h.CheckOut, h.Nights)
}

func insertHotels(ex execer, resID int64, rate float64, items []models.Hotel) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(items))
	for i := range items {
		rows = append(rows, hotelValues(resID, rate, &items[i], false))
	}
	_, err := bulkInsert(ex, "hotels", hotelCols, rows)
	return err
}

func (r ProductRepository) InsertHotels(resID int64, rate float64, items []models.Hotel) error {
	return insertHotels(r.db(), resID, rate, items)
}

func (r ProductRepository) UpsertHotels(resID int64, rate float64, items []models.Hotel) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(items))
	for i := range items {
		rows = append(rows, append([]any{items[i].ID}, hotelValues(resID, rate, &items[i], true)...))
	}
	return bulkUpsert(r.db(), "hotels", withID(hotelCols), rows, upsertClause(hotelCols))
}

func (r ProductRepository) ListHotels(resID int64) ([]models.Hotel, error) {
	rows, err := r.db().Query(`SELECT`+coreSelect+`,
		COALESCE(region,''), COALESCE(hotel_name,''), COALESCE(check_in,''),
		COALESCE(check_out,''), COALESCE(nights,0)
		FROM hotels WHERE reservation_id=? ORDER BY id ASC`, resID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Hotel{}
	for rows.Next() {
		var h models.Hotel
		dest := append(coreScanDest(&h.ProductCore),
			&h.Region, &h.HotelName, &h.CheckIn, &h.CheckOut, &h.Nights)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// ---- tours ----

var tourCols = append(append([]string{}, productCoreCols...),
	"tour_name", "tour_date", "days")

func tourValues(resID int64, rate float64, t *models.Tour, forUpdate bool) []any {
	return append(coreValues(resID, rate, &t.ProductCore, forUpdate),
		t.TourName, t.TourDate, t.Days)
}

func insertTours(ex execer, resID int64, rate float64, items []models.Tour) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(items))
	for i := range items {
		rows = append(rows, tourValues(resID, rate, &items[i], false))
	}
	_, err := bulkInsert(ex, "tours", tourCols, rows)
	return err
}

func (r ProductRepository) InsertTours(resID int64, rate float64, items []models.Tour) error {
	return insertTours(r.db(), resID, rate, items)
}

func (r ProductRepository) UpsertTours(resID int64, rate float64, items []models.Tour) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(items))
	for i := range items {
		rows = append(rows, append([]any{items[i].ID}, tourValues(resID, rate, &items[i], true)...))
	}
	return bulkUpsert(r.db(), "tours", withID(tourCols), rows, upsertClause(tourCols))
}

func (r ProductRepository) ListTours(resID int64) ([]models.Tour, error) {
	rows, err := r.db().Query(`SELECT`+coreSelect+`,
		COALESCE(tour_name,''), COALESCE(tour_date,''), COALESCE(days,0)
		FROM tours WHERE reservation_id=? ORDER BY id ASC`, resID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Tour{}
	for rows.Next() {
		var t models.Tour
		dest := append(coreScanDest(&t.ProductCore), &t.TourName, &t.TourDate, &t.Days)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ---- rental cars ----

var rentalCarCols = append(append([]string{}, productCoreCols...),
	"car_type", "pickup_date", "return_date", "days")

func rentalCarValues(resID int64, rate float64, rc *models.RentalCar, forUpdate bool) []any {
	return append(coreValues(resID, rate, &rc.ProductCore, forUpdate),
		rc.CarType, rc.PickupDate, rc.ReturnDate, rc.Days)
}

func insertRentalCars(ex execer, resID int64, rate float64, items []models.RentalCar) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(items))
	for i := range items {
		rows = append(rows, rentalCarValues(resID, rate, &items[i], false))
	}
	_, err := bulkInsert(ex, "rental_cars", rentalCarCols, rows)
	return err
}

func (r ProductRepository) InsertRentalCars(resID int64, rate float64, items []models.RentalCar) error {
	return insertRentalCars(r.db(), resID, rate, items)
}

func (r ProductRepository) UpsertRentalCars(resID int64, rate float64, items []models.RentalCar) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(items))
	for i := range items {
		rows = append(rows, append([]any{items[i].ID}, rentalCarValues(resID, rate, &items[i], true)...))
	}
	return bulkUpsert(r.db(), "rental_cars", withID(rentalCarCols), rows, upsertClause(rentalCarCols))
}

func (r ProductRepository) ListRentalCars(resID int64) ([]models.RentalCar, error) {
	rows, err := r.db().Query(`SELECT`+coreSelect+`,
		COALESCE(car_type,''), COALESCE(pickup_date,''), COALESCE(return_date,''), COALESCE(days,0)
		FROM rental_cars WHERE reservation_id=? ORDER BY id ASC`, resID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.RentalCar{}
	for rows.Next() {
		var rc models.RentalCar
		dest := append(coreScanDest(&rc.ProductCore),
			&rc.CarType, &rc.PickupDate, &rc.ReturnDate, &rc.Days)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

// ---- insurances ----

var insuranceCols = append(append([]string{}, productCoreCols...),
	"insurer", "plan_name", "start_date", "end_date")

func insuranceValues(resID int64, rate float64, ins *models.Insurance, forUpdate bool) []any {
	return append(coreValues(resID, rate, &ins.ProductCore, forUpdate),
		ins.Insurer, ins.PlanName, ins.StartDate, ins.EndDate)
}

func insertInsurances(ex execer, resID int64, rate float64, items []models.Insurance) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(items))
	for i := range items {
		rows = append(rows, insuranceValues(resID, rate, &items[i], false))
	}
	_, err := bulkInsert(ex, "insurances", insuranceCols, rows)
	return err
}

func (r ProductRepository) InsertInsurances(resID int64, rate float64, items []models.Insurance) error {
	return insertInsurances(r.db(), resID, rate, items)
}

func (r ProductRepository) UpsertInsurances(resID int64, rate float64, items []models.Insurance) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(items))
	for i := range items {
		rows = append(rows, append([]any{items[i].ID}, insuranceValues(resID, rate, &items[i], true)...))
	}
	return bulkUpsert(r.db(), "insurances", withID(insuranceCols), rows, upsertClause(insuranceCols))
}

func (r ProductRepository) ListInsurances(resID int64) ([]models.Insurance, error) {
	rows, err := r.db().Query(`SELECT`+coreSelect+`,
		COALESCE(insurer,''), COALESCE(plan_name,''), COALESCE(start_date,''), COALESCE(end_date,'')
		FROM insurances WHERE reservation_id=? ORDER BY id ASC`, resID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Insurance{}
	for rows.Next() {
		var ins models.Insurance
		dest := append(coreScanDest(&ins.ProductCore),
			&ins.Insurer, &ins.PlanName, &ins.StartDate, &ins.EndDate)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		out = append(out, ins)
	}
	return out, rows.Err()
}
