package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// AnnualToMonthlyRate converts an annual CAGR percentage to the effective
// monthly rate i = (1+r)^(1/12) - 1. A zero annual rate maps to an exactly
// zero monthly rate so the zero-rate fast paths downstream stay exact.
func AnnualToMonthlyRate(annualPct decimal.Decimal) decimal.Decimal {
	if annualPct.IsZero() {
		return decimal.Zero
	}
	r := annualPct.Div(hundred).InexactFloat64()
	return decimal.NewFromFloat(math.Pow(1+r, 1.0/12.0) - 1)
}
