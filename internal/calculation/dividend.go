package calculation

import (
	"github.com/shopspring/decimal"
)

// MonthlyDividendIncome returns the monthly income a principal produces at
// an annual dividend yield percentage: principal * yield / 12.
func MonthlyDividendIncome(principal, annualYieldPct decimal.Decimal) decimal.Decimal {
	return principal.Mul(annualYieldPct.Div(hundred)).Div(twelve)
}

// RequiredPrincipalForDividend is the exact inverse of MonthlyDividendIncome:
// the principal needed so the yield throws off the target monthly income.
// The inversion is undefined for non-positive yields.
func RequiredPrincipalForDividend(targetMonthly, annualYieldPct decimal.Decimal) (decimal.Decimal, error) {
	y := annualYieldPct.Div(hundred)
	if y.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, invalidInputf("dividend yield must be greater than 0")
	}
	return targetMonthly.Mul(twelve).Div(y), nil
}
