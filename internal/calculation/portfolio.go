package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

// NormalizeWeights rescales holding weights so they sum to 100. The input
// slice is not modified. A non-positive total weight is an input error.
func NormalizeWeights(holdings []domain.Holding) ([]domain.Holding, error) {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(h.WeightPct)
	}
	if total.LessThanOrEqual(decimal.Zero) {
		return nil, invalidInputf("total portfolio weight must be greater than 0")
	}
	normalized := make([]domain.Holding, len(holdings))
	for k, h := range holdings {
		h.WeightPct = h.WeightPct.Div(total).Mul(hundred)
		normalized[k] = h
	}
	return normalized, nil
}

// WeightedAverages returns the weight-blended annual return and yield
// percentages of already-normalized holdings (weights summing to 100).
func WeightedAverages(holdings []domain.Holding) (returnPct, yieldPct decimal.Decimal) {
	for _, h := range holdings {
		w := h.WeightPct.Div(hundred)
		returnPct = returnPct.Add(w.Mul(h.AnnualReturnPct))
		yieldPct = yieldPct.Add(w.Mul(h.AnnualYieldPct))
	}
	return returnPct, yieldPct
}
