package models

// Option is a supplementary purchasable attached to one product line item,
// addressed by product-type tag plus the parent row id. Its pricing shape
// mirrors ProductCore.
type Option struct {
	ID          int64  `json:"id"`
	ProductType string `json:"product_type"`
	ProductID   int64  `json:"product_id"`
	Title       string `json:"title"`
	Status      string `json:"status"`

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

	TotalAmount    float64 `json:"total_amount"`
	TotalCost      float64 `json:"total_cost"`
	TotalAmountKRW int64   `json:"total_amount_krw"`
	TotalCostKRW   int64   `json:"total_cost_krw"`

	Notes string `json:"notes"`
}
