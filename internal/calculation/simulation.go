package calculation

import (
	"github.com/shopspring/decimal"
)

// SimulateGrowth produces the month-by-month balance path of an
// accumulation phase, starting balance included (length months+1).
// due=true deposits at the start of the month and then compounds; the
// default compounds first and deposits at month end.
func SimulateGrowth(principal, payment, monthlyRate decimal.Decimal, months int, due bool) []decimal.Decimal {
	balances := make([]decimal.Decimal, 0, months+1)
	bal := principal
	balances = append(balances, bal)
	onePlus := one.Add(monthlyRate)
	for t := 0; t < months; t++ {
		if due {
			bal = bal.Add(payment).Mul(onePlus)
		} else {
			bal = bal.Mul(onePlus).Add(payment)
		}
		balances = append(balances, bal)
	}
	return balances
}

// SimulateDrawdown produces the retirement balance path: the balance
// compounds for the month, the withdrawal comes out at month end, and the
// floor is zero. The loop stops as soon as the corpus is exhausted, so the
// path can be shorter than months+1.
func SimulateDrawdown(corpus, monthlyWithdrawal, annualReturnPct decimal.Decimal, months int) []decimal.Decimal {
	j := AnnualToMonthlyRate(annualReturnPct)
	onePlus := one.Add(j)
	balances := make([]decimal.Decimal, 0, months+1)
	bal := corpus
	balances = append(balances, bal)
	for t := 0; t < months; t++ {
		bal = bal.Mul(onePlus).Sub(monthlyWithdrawal)
		if bal.LessThanOrEqual(decimal.Zero) {
			balances = append(balances, decimal.Zero)
			break
		}
		balances = append(balances, bal)
	}
	return balances
}
