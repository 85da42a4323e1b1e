package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GrowthProjection is the result of an accumulation simulation: the full
// monthly balance path (length Months+1, including month 0) and the derived
// totals shown in summaries.
type GrowthProjection struct {
	Balances           []decimal.Decimal `json:"balances"`
	Months             int               `json:"months"`
	FinalBalance       decimal.Decimal   `json:"final_balance"`
	TotalContributions decimal.Decimal   `json:"total_contributions"`
	TotalGain          decimal.Decimal   `json:"total_gain"`
}

// GoalResult is the goal-seek answer plus the accumulation path that the
// solved contribution would produce.
type GoalResult struct {
	RequiredMonthlyPayment decimal.Decimal  `json:"required_monthly_payment"`
	Projection             GrowthProjection `json:"projection"`
}

// DividendResult carries one or both sides of the dividend sizing pair.
type DividendResult struct {
	MonthlyIncome     decimal.Decimal  `json:"monthly_income"`
	RequiredPrincipal *decimal.Decimal `json:"required_principal,omitempty"`
	AnnualYieldPct    decimal.Decimal  `json:"annual_yield_pct"`
}

// DrawdownProjection is the balance path of the retirement phase. The path
// truncates once the corpus is exhausted, so Balances can be shorter than
// the requested horizon+1; Depleted marks that case.
type DrawdownProjection struct {
	Balances        []decimal.Decimal `json:"balances"`
	MonthsSustained int               `json:"months_sustained"`
	Depleted        bool              `json:"depleted"`
}

// LifecycleSummary is the two-phase lifecycle result: the corpus at
// retirement, the monthly withdrawal under the selected policy, and both
// balance paths.
type LifecycleSummary struct {
	Corpus            decimal.Decimal    `json:"corpus"`
	MonthlyWithdrawal decimal.Decimal    `json:"monthly_withdrawal"`
	Policy            string             `json:"policy"`
	Accumulation      GrowthProjection   `json:"accumulation"`
	Drawdown          DrawdownProjection `json:"drawdown"`
}

// PortfolioSummary aggregates a weighted basket: normalized holdings, the
// blended rates, the projected growth under the blended return, and the
// estimated monthly dividend the final balance would produce.
type PortfolioSummary struct {
	Name                 string           `json:"name"`
	Holdings             []Holding        `json:"holdings"`
	WeightedReturnPct    decimal.Decimal  `json:"weighted_return_pct"`
	WeightedYieldPct     decimal.Decimal  `json:"weighted_yield_pct"`
	Projection           GrowthProjection `json:"projection"`
	MonthlyDividendAtEnd decimal.Decimal  `json:"monthly_dividend_at_end"`
}

// ProjectionReport is the top-level structure consumed by output formatters.
// Exactly the sections that were calculated are non-nil.
type ProjectionReport struct {
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
	Scenario    string    `json:"scenario,omitempty"`

	Growth    *GrowthProjection `json:"growth,omitempty"`
	Goal      *GoalResult       `json:"goal,omitempty"`
	Dividend  *DividendResult   `json:"dividend,omitempty"`
	Lifecycle *LifecycleSummary `json:"lifecycle,omitempty"`
	Portfolio *PortfolioSummary `json:"portfolio,omitempty"`

	Notes []string `json:"notes,omitempty"`
}

// BalancePath returns the primary monthly balance path of the report, in
// section priority order. The lifecycle section contributes its
// accumulation path; the drawdown path stays reachable via
// Lifecycle.Drawdown.
func (r *ProjectionReport) BalancePath() []decimal.Decimal {
	switch {
	case r.Growth != nil:
		return r.Growth.Balances
	case r.Goal != nil:
		return r.Goal.Projection.Balances
	case r.Portfolio != nil:
		return r.Portfolio.Projection.Balances
	case r.Lifecycle != nil:
		return r.Lifecycle.Accumulation.Balances
	}
	return nil
}
