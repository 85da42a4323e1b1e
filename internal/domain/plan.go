package domain

import (
	"github.com/shopspring/decimal"
)

// Withdrawal policies for the lifecycle drawdown phase.
const (
	WithdrawalPolicyAnnuity = "annuity" // amortize the corpus over a fixed term
	WithdrawalPolicySWR     = "swr"     // flat safe-withdrawal-rate fraction
)

// GrowthPlan describes a dollar-cost-averaging accumulation projection: a
// lump-sum principal plus a level monthly contribution compounded at an
// assumed annual return.
type GrowthPlan struct {
	Principal       decimal.Decimal `yaml:"principal" json:"principal"`
	MonthlyPayment  decimal.Decimal `yaml:"monthly_payment" json:"monthly_payment"`
	AnnualReturnPct decimal.Decimal `yaml:"annual_return_pct" json:"annual_return_pct"`
	Years           int             `yaml:"years" json:"years"`
	// DepositAtStart switches contributions to the start of each month
	// (annuity-due); the default is end-of-month.
	DepositAtStart bool `yaml:"deposit_at_start" json:"deposit_at_start"`
}

// Months returns the simulation horizon in months, clamped at zero.
func (p GrowthPlan) Months() int {
	if p.Years < 0 {
		return 0
	}
	return p.Years * 12
}

// GoalPlan asks for the monthly contribution required to reach a target
// future value over a fixed horizon.
type GoalPlan struct {
	TargetAmount    decimal.Decimal `yaml:"target_amount" json:"target_amount"`
	Principal       decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualReturnPct decimal.Decimal `yaml:"annual_return_pct" json:"annual_return_pct"`
	Years           int             `yaml:"years" json:"years"`
	DepositAtStart  bool            `yaml:"deposit_at_start" json:"deposit_at_start"`
}

// Months returns the goal horizon in months, clamped at zero.
func (p GoalPlan) Months() int {
	if p.Years < 0 {
		return 0
	}
	return p.Years * 12
}

// DividendPlan sizes dividend income: the monthly income a principal throws
// off at an annual yield and, when TargetMonthlyIncome is set, the principal
// required to produce that income.
type DividendPlan struct {
	Principal           decimal.Decimal  `yaml:"principal" json:"principal"`
	AnnualYieldPct      decimal.Decimal  `yaml:"annual_yield_pct" json:"annual_yield_pct"`
	TargetMonthlyIncome *decimal.Decimal `yaml:"target_monthly_income,omitempty" json:"target_monthly_income,omitempty"`
}

// LifecyclePlan models the two-phase lifecycle: accumulate from the current
// age to the retirement age, then draw the corpus down under the selected
// withdrawal policy. Drawdown withdrawals always happen at end of month
// regardless of DepositAtStart.
type LifecyclePlan struct {
	CurrentAge      int             `yaml:"current_age" json:"current_age"`
	RetirementAge   int             `yaml:"retirement_age" json:"retirement_age"`
	Principal       decimal.Decimal `yaml:"principal" json:"principal"`
	MonthlyPayment  decimal.Decimal `yaml:"monthly_payment" json:"monthly_payment"`
	AnnualReturnPct decimal.Decimal `yaml:"annual_return_pct" json:"annual_return_pct"`
	DepositAtStart  bool            `yaml:"deposit_at_start" json:"deposit_at_start"`

	RetirementYears       int             `yaml:"retirement_years" json:"retirement_years"`
	RetirementReturnPct   decimal.Decimal `yaml:"retirement_return_pct" json:"retirement_return_pct"`
	WithdrawalPolicy      string          `yaml:"withdrawal_policy" json:"withdrawal_policy"`
	SafeWithdrawalRatePct decimal.Decimal `yaml:"safe_withdrawal_rate_pct" json:"safe_withdrawal_rate_pct"`
}

// AccumulationMonths is the length of the accumulation phase. A retirement
// age at or below the current age yields an empty accumulation phase.
func (p LifecyclePlan) AccumulationMonths() int {
	years := p.RetirementAge - p.CurrentAge
	if years < 0 {
		years = 0
	}
	return years * 12
}

// Holding is one row of a portfolio: a name, a weight and the expected
// annual return/yield. Rows are independent; weights are normalized to sum
// to 100 before any aggregation.
type Holding struct {
	Name            string          `yaml:"name" json:"name"`
	WeightPct       decimal.Decimal `yaml:"weight_pct" json:"weight_pct"`
	AnnualReturnPct decimal.Decimal `yaml:"annual_return_pct" json:"annual_return_pct"`
	AnnualYieldPct  decimal.Decimal `yaml:"annual_yield_pct" json:"annual_yield_pct"`
}

// PortfolioPlan projects a weighted basket of holdings using the blended
// return for growth and the blended yield for income.
type PortfolioPlan struct {
	Name           string          `yaml:"name" json:"name"`
	Principal      decimal.Decimal `yaml:"principal" json:"principal"`
	MonthlyPayment decimal.Decimal `yaml:"monthly_payment" json:"monthly_payment"`
	Years          int             `yaml:"years" json:"years"`
	Holdings       []Holding       `yaml:"holdings" json:"holdings"`
}

// Months returns the projection horizon in months, clamped at zero.
func (p PortfolioPlan) Months() int {
	if p.Years < 0 {
		return 0
	}
	return p.Years * 12
}

// Scenario is a named (annual return, annual yield) preset that can be
// broadcast into every plan block of a configuration.
type Scenario struct {
	Name            string          `yaml:"name" json:"name"`
	AnnualReturnPct decimal.Decimal `yaml:"annual_return_pct" json:"annual_return_pct"`
	AnnualYieldPct  decimal.Decimal `yaml:"annual_yield_pct" json:"annual_yield_pct"`
}

// Configuration binds scenario presets and the per-command plan blocks.
// Every block is optional; commands fall back to built-in defaults when the
// block (or the whole file) is absent.
type Configuration struct {
	Scenarios []Scenario     `yaml:"scenarios" json:"scenarios"`
	Growth    *GrowthPlan    `yaml:"growth,omitempty" json:"growth,omitempty"`
	Goal      *GoalPlan      `yaml:"goal,omitempty" json:"goal,omitempty"`
	Dividend  *DividendPlan  `yaml:"dividend,omitempty" json:"dividend,omitempty"`
	Lifecycle *LifecyclePlan `yaml:"lifecycle,omitempty" json:"lifecycle,omitempty"`
	Portfolio *PortfolioPlan `yaml:"portfolio,omitempty" json:"portfolio,omitempty"`
}
