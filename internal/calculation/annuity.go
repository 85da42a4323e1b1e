package calculation

import (
	"github.com/shopspring/decimal"
)

// degenerateFactor is the threshold below which the goal-seek divisor is
// treated as numerically unusable (e.g. zero months at zero rate).
var degenerateFactor = decimal.New(1, -12)

// FutureValueAnnuity returns the future value of a level monthly payment
// stream after the given number of months at monthly rate i. due=true
// shifts deposits to the start of each month (annuity-due), which multiplies
// the ordinary result by (1+i).
func FutureValueAnnuity(payment, monthlyRate decimal.Decimal, months int, due bool) decimal.Decimal {
	var fv decimal.Decimal
	if monthlyRate.IsZero() {
		fv = payment.Mul(decimal.NewFromInt(int64(months)))
	} else {
		onePlus := one.Add(monthlyRate)
		fv = payment.Mul(onePlus.Pow(decimal.NewFromInt(int64(months))).Sub(one)).Div(monthlyRate)
	}
	if due {
		fv = fv.Mul(one.Add(monthlyRate))
	}
	return fv
}

// FutureValueWithPrincipal combines compounded principal growth with the
// annuity future value of the payment stream.
func FutureValueWithPrincipal(principal, payment, monthlyRate decimal.Decimal, months int, due bool) decimal.Decimal {
	compounded := principal.Mul(one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(months))))
	return compounded.Add(FutureValueAnnuity(payment, monthlyRate, months, due))
}

// annuityFactor is the divisor of the goal-seek inversion:
// ((1+i)^n - 1)/i, times (1+i) for annuity-due, or n at zero rate.
func annuityFactor(monthlyRate decimal.Decimal, months int, due bool) decimal.Decimal {
	if monthlyRate.IsZero() {
		return decimal.NewFromInt(int64(months))
	}
	onePlus := one.Add(monthlyRate)
	factor := onePlus.Pow(decimal.NewFromInt(int64(months))).Sub(one).Div(monthlyRate)
	if due {
		factor = factor.Mul(onePlus)
	}
	return factor
}

// SolvePaymentForTarget inverts FutureValueWithPrincipal algebraically and
// returns the monthly payment required to reach the target future value.
// The result can be negative when the compounded principal alone exceeds
// the target. A degenerate factor is an input error, never an Inf/NaN.
func SolvePaymentForTarget(target, principal, monthlyRate decimal.Decimal, months int, due bool) (decimal.Decimal, error) {
	factor := annuityFactor(monthlyRate, months, due)
	if factor.Abs().LessThan(degenerateFactor) {
		return decimal.Zero, invalidInputf("annuity factor is degenerate; extend the horizon or adjust the rate")
	}
	compounded := principal.Mul(one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(months))))
	return target.Sub(compounded).Div(factor), nil
}
