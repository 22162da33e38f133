package repositories

import (
	"database/sql"
	"strings"

	"backoffice/internal/config"
)

// SettlementRow is one reservation's settlement figures in home currency.
type SettlementRow struct {
	ReservationID     int64  `json:"reservation_id"`
	Code              string `json:"code"`
	Status            string `json:"status"`
	PrimaryClientName string `json:"primary_client_name"`
	SaleKRW           int64  `json:"sale_krw"`
	CostKRW           int64  `json:"cost_krw"`
}

// ReportRepository aggregates settlement figures across the product tables.
type ReportRepository struct {
	DB *sql.DB
}

func (r ReportRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// SettlementRows returns per-reservation KRW sale and cost sums over all
// product tables, filtered by creation-date range (YYYY-MM-DD, inclusive).
func (r ReportRepository) SettlementRows(from, to string) ([]SettlementRow, error) {
	parts := make([]string, len(productTables))
	for i, t := range productTables {
		parts[i] = "SELECT reservation_id, total_amount_krw, total_cost_krw FROM " + t
	}

	q := `
		SELECT
			r.id,
			r.code,
			COALESCE(r.status,''),
			COALESCE(r.primary_client_name,''),
			COALESCE(SUM(p.total_amount_krw),0),
			COALESCE(SUM(p.total_cost_krw),0)
		FROM reservations r
		LEFT JOIN (` + strings.Join(parts, " UNION ALL ") + `) p ON p.reservation_id = r.id
		WHERE 1=1`
	args := []any{}
	if from = strings.TrimSpace(from); from != "" {
		q += " AND DATE(r.created_at)>=?"
		args = append(args, from)
	}
	if to = strings.TrimSpace(to); to != "" {
		q += " AND DATE(r.created_at)<=?"
		args = append(args, to)
	}
	q += `
		GROUP BY r.id, r.code, r.status, r.primary_client_name
		ORDER BY r.code ASC`

	rows, err := r.db().Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SettlementRow{}
	for rows.Next() {
		var row SettlementRow
		if err := rows.Scan(
			&row.ReservationID, &row.Code, &row.Status, &row.PrimaryClientName,
			&row.SaleKRW, &row.CostKRW,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
