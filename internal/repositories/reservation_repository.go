package repositories

import (
	"database/sql"
	"strings"
	"time"

	"backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// productTables are the five line-item tables a reservation's total is
// aggregated from.
var productTables = []string{"flights", "hotels", "tours", "rental_cars", "insurances"}

// ReservationRepository wraps DB access for the reservations table and the
// two aggregate operations (transactional create, total recomputation).
type ReservationRepository struct {
	DB *sql.DB
}

func (r ReservationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

const reservationSelect = `
	SELECT
		id,
		code,
		COALESCE(status,''),
		COALESCE(primary_client_name,''),
		COALESCE(exchange_rate,0),
		COALESCE(total_amount,0),
		COALESCE(created_at,''),
		COALESCE(updated_at,'')
	FROM reservations`

func scanReservation(row *sql.Row) (models.Reservation, error) {
	var res models.Reservation
	err := row.Scan(
		&res.ID,
		&res.Code,
		&res.Status,
		&res.PrimaryClientName,
		&res.ExchangeRate,
		&res.TotalAmount,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	return res, err
}

// GetByCode resolves a reservation by its human-readable code.
func (r ReservationRepository) GetByCode(code string) (models.Reservation, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return models.Reservation{}, sql.ErrNoRows
	}
	return scanReservation(r.db().QueryRow(reservationSelect+` WHERE code=? LIMIT 1`, code))
}

// List returns reservations newest-first, optionally filtered by status and
// creation-date range (YYYY-MM-DD).
func (r ReservationRepository) List(status, from, to string) ([]models.Reservation, error) {
	where := []string{}
	args := []any{}
	if status = strings.TrimSpace(status); status != "" {
		where = append(where, "status=?")
		args = append(args, status)
	}
	if from = strings.TrimSpace(from); from != "" {
		where = append(where, "DATE(created_at)>=?")
		args = append(args, from)
	}
	if to = strings.TrimSpace(to); to != "" {
		where = append(where, "DATE(created_at)<=?")
		args = append(args, to)
	}

	q := reservationSelect
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id DESC"

	rows, err := r.db().Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Reservation{}
	for rows.Next() {
		var res models.Reservation
		if err := rows.Scan(
			&res.ID,
			&res.Code,
			&res.Status,
			&res.PrimaryClientName,
			&res.ExchangeRate,
			&res.TotalAmount,
			&res.CreatedAt,
			&res.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// Create allocates the next same-day code and persists the reservation with
// its initial clients and product line items in one transaction. The last-code
// lookup is locked (FOR UPDATE) so concurrent intake serializes on the day's
// sequence instead of racing it.
func (r ReservationRepository) Create(today time.Time, res *models.Reservation, clients []models.Client, products models.ProductSet) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	prefix := today.Format("20060102")
	var last string
	err = tx.QueryRow(
		`SELECT code FROM reservations WHERE code LIKE ? ORDER BY code DESC LIMIT 1 FOR UPDATE`,
		prefix+"-%",
	).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	res.Code = domain.NextReservationCode(today, last)

	result, err := tx.Exec(
		`INSERT INTO reservations (code, status, primary_client_name, exchange_rate, total_amount, created_at, updated_at)
		 VALUES (?,?,?,?,?,NOW(),NOW())`,
		res.Code, res.Status, res.PrimaryClientName, res.ExchangeRate, 0,
	)
	if err != nil {
		return err
	}
	res.ID, _ = result.LastInsertId()

	if len(clients) > 0 {
		if err := insertClients(tx, res.ID, clients); err != nil {
			return err
		}
	}
	if err := insertProducts(tx, res.ID, res.ExchangeRate, products); err != nil {
		return err
	}

	res.TotalAmount = products.SumTotalAmount()
	if _, err := tx.Exec(`UPDATE reservations SET total_amount=? WHERE id=?`, res.TotalAmount, res.ID); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateRate writes the reservation-level exchange rate.
func (r ReservationRepository) UpdateRate(id int64, rate float64) error {
	_, err := r.db().Exec(`UPDATE reservations SET exchange_rate=?, updated_at=NOW() WHERE id=?`, rate, id)
	return err
}

// RecomputeTotal sums total_amount across every product table of the
// reservation. It reads the just-written rows, so callers must only invoke it
// after all line-item writes have settled.
func (r ReservationRepository) RecomputeTotal(id int64) (float64, error) {
	parts := make([]string, len(productTables))
	args := make([]any, len(productTables))
	for i, t := range productTables {
		parts[i] = "SELECT total_amount FROM " + t + " WHERE reservation_id=?"
		args[i] = id
	}
	q := "SELECT COALESCE(SUM(total_amount),0) FROM (" + strings.Join(parts, " UNION ALL ") + ") line_items"

	var total float64
	err := r.db().QueryRow(q, args...).Scan(&total)
	return total, err
}

// SaveSummary persists the recomputed total together with any reservation-level
// field updates requested in the same request. Empty status / primary name mean
// "leave untouched".
func (r ReservationRepository) SaveSummary(id int64, total float64, status, primaryClientName string) error {
	sets := []string{"total_amount=?"}
	args := []any{total}
	if status = strings.TrimSpace(status); status != "" {
		sets = append(sets, "status=?")
		args = append(args, status)
	}
	if primaryClientName = strings.TrimSpace(primaryClientName); primaryClientName != "" {
		sets = append(sets, "primary_client_name=?")
		args = append(args, primaryClientName)
	}
	sets = append(sets, "updated_at=NOW()")
	args = append(args, id)

	_, err := r.db().Exec(`UPDATE reservations SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	return err
}
