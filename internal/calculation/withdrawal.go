package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

// WithdrawalStrategy sizes the level monthly withdrawal taken from a
// retirement corpus.
type WithdrawalStrategy interface {
	MonthlyWithdrawal(corpus decimal.Decimal) (decimal.Decimal, error)
	Name() string
}

// FixedTermAnnuity amortizes the corpus over a fixed number of years as an
// ordinary annuity: withdrawal = corpus * j / (1 - (1+j)^(-m)).
type FixedTermAnnuity struct {
	AnnualReturnPct decimal.Decimal
	Years           int
}

// NewFixedTermAnnuity creates a fixed-term amortization strategy.
func NewFixedTermAnnuity(annualReturnPct decimal.Decimal, years int) *FixedTermAnnuity {
	return &FixedTermAnnuity{AnnualReturnPct: annualReturnPct, Years: years}
}

// MonthlyWithdrawal returns the level withdrawal that exhausts the corpus
// exactly at the end of the term. Zero-return amortization degenerates to
// corpus / months.
func (s *FixedTermAnnuity) MonthlyWithdrawal(corpus decimal.Decimal) (decimal.Decimal, error) {
	months := s.Years * 12
	if months <= 0 {
		return decimal.Zero, invalidInputf("retirement term must be greater than 0 years")
	}
	m := decimal.NewFromInt(int64(months))
	j := AnnualToMonthlyRate(s.AnnualReturnPct)
	if j.IsZero() {
		return corpus.Div(m), nil
	}
	// (1+j)^(-m) as the reciprocal of the integer power
	recip := one.Div(one.Add(j).Pow(m))
	return corpus.Mul(j).Div(one.Sub(recip)), nil
}

func (s *FixedTermAnnuity) Name() string { return domain.WithdrawalPolicyAnnuity }

// SafeWithdrawalRate withdraws a flat annual fraction of the corpus,
// corpus * rate / 12 per month. Sustainability is not modeled.
type SafeWithdrawalRate struct {
	RatePct decimal.Decimal
}

// NewSafeWithdrawalRate creates a safe-withdrawal-rate strategy.
func NewSafeWithdrawalRate(ratePct decimal.Decimal) *SafeWithdrawalRate {
	return &SafeWithdrawalRate{RatePct: ratePct}
}

func (s *SafeWithdrawalRate) MonthlyWithdrawal(corpus decimal.Decimal) (decimal.Decimal, error) {
	return corpus.Mul(s.RatePct.Div(hundred)).Div(twelve), nil
}

func (s *SafeWithdrawalRate) Name() string { return domain.WithdrawalPolicySWR }

// NewWithdrawalStrategy builds the strategy a lifecycle plan names. An empty
// policy defaults to fixed-term amortization.
func NewWithdrawalStrategy(plan domain.LifecyclePlan) (WithdrawalStrategy, error) {
	switch plan.WithdrawalPolicy {
	case domain.WithdrawalPolicyAnnuity, "":
		return NewFixedTermAnnuity(plan.RetirementReturnPct, plan.RetirementYears), nil
	case domain.WithdrawalPolicySWR:
		return NewSafeWithdrawalRate(plan.SafeWithdrawalRatePct), nil
	default:
		return nil, invalidInputf("unknown withdrawal policy %q (want %q or %q)",
			plan.WithdrawalPolicy, domain.WithdrawalPolicyAnnuity, domain.WithdrawalPolicySWR)
	}
}
