package repositories

import (
	"database/sql"

	"backoffice/internal/config"
	"backoffice/internal/domain/models"
)

// ClientRepository wraps DB access for the clients table.
type ClientRepository struct {
	DB *sql.DB
}

func (r ClientRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

var clientCols = []string{
	"reservation_id", "name", "name_en", "gender", "national_id", "phone", "email", "notes",
}

func clientValues(resID int64, c *models.Client) []any {
	return []any{resID, c.Name, c.NameEN, c.Gender, c.NationalID, c.Phone, c.Email, c.Notes}
}

// InsertBatch writes all new clients of one request in a single multi-row
// insert, each row augmented with the owning reservation id.
func (r ClientRepository) InsertBatch(resID int64, items []models.Client) error {
	return insertClients(r.db(), resID, items)
}

func insertClients(ex execer, resID int64, items []models.Client) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(items))
	for i := range items {
		rows = append(rows, clientValues(resID, &items[i]))
	}
	_, err := bulkInsert(ex, "clients", clientCols, rows)
	return err
}

// UpsertBatch writes all already-identified clients of one request in a single
// multi-row upsert keyed by primary key.
func (r ClientRepository) UpsertBatch(resID int64, items []models.Client) error {
	if len(items) == 0 {
		return nil
	}
	cols := append([]string{"id"}, clientCols...)
	rows := make([][]any, 0, len(items))
	for i := range items {
		rows = append(rows, append([]any{items[i].ID}, clientValues(resID, &items[i])...))
	}
	updates := make([]string, 0, len(clientCols))
	for _, col := range clientCols {
		updates = append(updates, col+"=VALUES("+col+")")
	}
	return bulkUpsert(r.db(), "clients", cols, rows, updates)
}

// ListByReservation returns a reservation's clients in insertion order.
func (r ClientRepository) ListByReservation(resID int64) ([]models.Client, error) {
	rows, err := r.db().Query(`
		SELECT
			id,
			reservation_id,
			COALESCE(name,''),
			COALESCE(name_en,''),
			COALESCE(gender,''),
			COALESCE(national_id,''),
			COALESCE(phone,''),
			COALESCE(email,''),
			COALESCE(notes,'')
		FROM clients WHERE reservation_id=? ORDER BY id ASC`, resID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Client{}
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(
			&c.ID, &c.ReservationID, &c.Name, &c.NameEN, &c.Gender,
			&c.NationalID, &c.Phone, &c.Email, &c.Notes,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
