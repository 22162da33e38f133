package repositories

import (
	"database/sql"

	"backoffice/internal/config"
	"backoffice/internal/domain/models"
)

// OptionRepository wraps DB access for the options table.
type OptionRepository struct {
	DB *sql.DB
}

func (r OptionRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

var optionCols = []string{
	"product_type", "product_id", "title", "status",
	"adult_count", "child_count", "kid_count",
	"adult_price", "child_price", "kid_price",
	"adult_cost", "child_cost", "kid_cost",
	"exchange_rate",
	"total_amount", "total_cost", "total_amount_krw", "total_cost_krw",
	"notes",
}

func optionValues(o *models.Option) []any {
	return []any{
		o.ProductType, o.ProductID, o.Title, o.Status,
		o.AdultCount, o.ChildCount, o.KidCount,
		o.AdultPrice, o.ChildPrice, o.KidPrice,
		o.AdultCost, o.ChildCost, o.KidCost,
		o.ExchangeRate,
		o.TotalAmount, o.TotalCost, o.TotalAmountKRW, o.TotalCostKRW,
		o.Notes,
	}
}

// BulkInsert writes all identifier-less options in one multi-row insert and
// returns them with their assigned ids. MySQL hands back the first id of the
// batch; the remainder follow sequentially under the default auto-inc lock
// mode.
func (r OptionRepository) BulkInsert(items []models.Option) ([]models.Option, error) {
	if len(items) == 0 {
		return nil, nil
	}
	rows := make([][]any, 0, len(items))
	for i := range items {
		rows = append(rows, optionValues(&items[i]))
	}
	res, err := bulkInsert(r.db(), "options", optionCols, rows)
	if err != nil {
		return nil, err
	}
	first, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := make([]models.Option, len(items))
	copy(out, items)
	for i := range out {
		out[i].ID = first + int64(i)
	}
	return out, nil
}

// UpdateByID rewrites one identified option row.
func (r OptionRepository) UpdateByID(o models.Option) (models.Option, error) {
	_, err := r.db().Exec(`
		UPDATE options SET
			product_type=?, product_id=?, title=?, status=?,
			adult_count=?, child_count=?, kid_count=?,
			adult_price=?, child_price=?, kid_price=?,
			adult_cost=?, child_cost=?, kid_cost=?,
			exchange_rate=?,
			total_amount=?, total_cost=?, total_amount_krw=?, total_cost_krw=?,
			notes=?
		WHERE id=?`,
		append(optionValues(&o), o.ID)...,
	)
	return o, err
}

// ListByProduct returns the options attached to one product line item.
func (r OptionRepository) ListByProduct(productType string, productID int64) ([]models.Option, error) {
	rows, err := r.db().Query(`
		SELECT
			id,
			COALESCE(product_type,''),
			COALESCE(product_id,0),
			COALESCE(title,''),
			COALESCE(status,''),
			COALESCE(adult_count,0), COALESCE(child_count,0), COALESCE(kid_count,0),
			COALESCE(adult_price,0), COALESCE(child_price,0), COALESCE(kid_price,0),
			COALESCE(adult_cost,0), COALESCE(child_cost,0), COALESCE(kid_cost,0),
			COALESCE(exchange_rate,0),
			COALESCE(total_amount,0), COALESCE(total_cost,0),
			COALESCE(total_amount_krw,0), COALESCE(total_cost_krw,0),
			COALESCE(notes,'')
		FROM options WHERE product_type=? AND product_id=? ORDER BY id ASC`,
		productType, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Option{}
	for rows.Next() {
		var o models.Option
		if err := rows.Scan(
			&o.ID, &o.ProductType, &o.ProductID, &o.Title, &o.Status,
			&o.AdultCount, &o.ChildCount, &o.KidCount,
			&o.AdultPrice, &o.ChildPrice, &o.KidPrice,
			&o.AdultCost, &o.ChildCost, &o.KidCost,
			&o.ExchangeRate,
			&o.TotalAmount, &o.TotalCost, &o.TotalAmountKRW, &o.TotalCostKRW,
			&o.Notes,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
