package domain

import "math"

// AmountInput carries per-traveler counts, unit prices and unit costs for a
// product line item or an additional option. DayMultiplier covers day-rate
// products (hotel nights, rental days); zero means a single day.
type AmountInput struct {
	AdultCount int
	ChildCount int
	KidCount   int

	AdultPrice float64
	ChildPrice float64
	KidPrice   float64

	AdultCost float64
	ChildCost float64
	KidCost   float64

	ExchangeRate  float64
	DayMultiplier int
}

// AmountTotals are the derived monetary figures. KRW fields are the
// home-currency equivalents, rounded to whole won.
type AmountTotals struct {
	TotalAmount    float64 `json:"total_amount"`
	TotalCost      float64 `json:"total_cost"`
	TotalAmountKRW int64   `json:"total_amount_krw"`
	TotalCostKRW   int64   `json:"total_cost_krw"`
}

// ComputeTotals derives sale and cost totals from an AmountInput. It is pure
// and idempotent; all-zero input yields all-zero output. The day multiplier
// applies to every traveler class of a day-rate product.
func ComputeTotals(in AmountInput) AmountTotals {
	days := in.DayMultiplier
	if days <= 0 {
		days = 1
	}
	mult := float64(days)

	amount := (float64(in.AdultCount)*in.AdultPrice +
		float64(in.ChildCount)*in.ChildPrice +
		float64(in.KidCount)*in.KidPrice) * mult
	cost := (float64(in.AdultCount)*in.AdultCost +
		float64(in.ChildCount)*in.ChildCost +
		float64(in.KidCount)*in.KidCost) * mult

	return AmountTotals{
		TotalAmount:    amount,
		TotalCost:      cost,
		TotalAmountKRW: toHomeCurrency(amount, in.ExchangeRate),
		TotalCostKRW:   toHomeCurrency(cost, in.ExchangeRate),
	}
}

// toHomeCurrency rounds amount*rate to whole won, returning 0 when the
// product is not a finite number.
func toHomeCurrency(amount, rate float64) int64 {
	v := amount * rate
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Round(v))
}
