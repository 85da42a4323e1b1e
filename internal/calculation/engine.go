package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

// ProjectionEngine orchestrates the plan-level calculations. All Run
// methods are synchronous and pure apart from logging; errors of kind
// ErrInvalidInput carry a user-facing message.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates an engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger restores the no-op default.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// RunGrowth simulates a dollar-cost-averaging accumulation plan.
func (pe *ProjectionEngine) RunGrowth(ctx context.Context, plan domain.GrowthPlan) (*domain.GrowthProjection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i := AnnualToMonthlyRate(plan.AnnualReturnPct)
	months := plan.Months()
	balances := SimulateGrowth(plan.Principal, plan.MonthlyPayment, i, months, plan.DepositAtStart)
	proj := buildGrowthProjection(plan.Principal, plan.MonthlyPayment, balances)
	pe.Logger.Debugf("growth: %d months at %s%% annual, final balance %s",
		months, plan.AnnualReturnPct, proj.FinalBalance.StringFixed(2))
	return &proj, nil
}

// RunGoalSeek solves the contribution required to reach the plan target and
// simulates the matching accumulation path.
func (pe *ProjectionEngine) RunGoalSeek(ctx context.Context, plan domain.GoalPlan) (*domain.GoalResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i := AnnualToMonthlyRate(plan.AnnualReturnPct)
	months := plan.Months()
	payment, err := SolvePaymentForTarget(plan.TargetAmount, plan.Principal, i, months, plan.DepositAtStart)
	if err != nil {
		return nil, err
	}
	balances := SimulateGrowth(plan.Principal, payment, i, months, plan.DepositAtStart)
	pe.Logger.Debugf("goal: target %s needs %s per month over %d months",
		plan.TargetAmount.StringFixed(2), payment.StringFixed(2), months)
	return &domain.GoalResult{
		RequiredMonthlyPayment: payment,
		Projection:             buildGrowthProjection(plan.Principal, payment, balances),
	}, nil
}

// RunDividend computes the monthly income the plan principal produces and,
// when a target income is set, the principal required to produce it.
func (pe *ProjectionEngine) RunDividend(ctx context.Context, plan domain.DividendPlan) (*domain.DividendResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := &domain.DividendResult{
		MonthlyIncome:  MonthlyDividendIncome(plan.Principal, plan.AnnualYieldPct),
		AnnualYieldPct: plan.AnnualYieldPct,
	}
	if plan.TargetMonthlyIncome != nil {
		required, err := RequiredPrincipalForDividend(*plan.TargetMonthlyIncome, plan.AnnualYieldPct)
		if err != nil {
			return nil, err
		}
		result.RequiredPrincipal = &required
	}
	return result, nil
}

// RunLifecycle simulates the accumulation phase, sizes the withdrawal under
// the plan's policy, and simulates the drawdown of the resulting corpus.
func (pe *ProjectionEngine) RunLifecycle(ctx context.Context, plan domain.LifecyclePlan) (*domain.LifecycleSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i := AnnualToMonthlyRate(plan.AnnualReturnPct)
	accMonths := plan.AccumulationMonths()
	accBalances := SimulateGrowth(plan.Principal, plan.MonthlyPayment, i, accMonths, plan.DepositAtStart)
	corpus := accBalances[len(accBalances)-1]

	strategy, err := NewWithdrawalStrategy(plan)
	if err != nil {
		return nil, err
	}
	withdrawal, err := strategy.MonthlyWithdrawal(corpus)
	if err != nil {
		return nil, err
	}

	drawMonths := plan.RetirementYears * 12
	drawBalances := SimulateDrawdown(corpus, withdrawal, plan.RetirementReturnPct, drawMonths)
	depleted := len(drawBalances) < drawMonths+1
	pe.Logger.Debugf("lifecycle: corpus %s, %s withdrawal %s/month, sustained %d of %d months",
		corpus.StringFixed(2), strategy.Name(), withdrawal.StringFixed(2), len(drawBalances)-1, drawMonths)

	return &domain.LifecycleSummary{
		Corpus:            corpus,
		MonthlyWithdrawal: withdrawal,
		Policy:            strategy.Name(),
		Accumulation:      buildGrowthProjection(plan.Principal, plan.MonthlyPayment, accBalances),
		Drawdown: domain.DrawdownProjection{
			Balances:        drawBalances,
			MonthsSustained: len(drawBalances) - 1,
			Depleted:        depleted,
		},
	}, nil
}

// RunPortfolio normalizes the plan holdings, blends their rates and feeds
// the blend through the growth and dividend math. Unnamed holdings get
// positional names.
func (pe *ProjectionEngine) RunPortfolio(ctx context.Context, plan domain.PortfolioPlan) (*domain.PortfolioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	holdings, err := NormalizeWeights(plan.Holdings)
	if err != nil {
		return nil, err
	}
	for k := range holdings {
		if holdings[k].Name == "" {
			holdings[k].Name = fmt.Sprintf("Asset %d", k+1)
		}
	}
	returnPct, yieldPct := WeightedAverages(holdings)

	i := AnnualToMonthlyRate(returnPct)
	months := plan.Months()
	balances := SimulateGrowth(plan.Principal, plan.MonthlyPayment, i, months, false)
	proj := buildGrowthProjection(plan.Principal, plan.MonthlyPayment, balances)
	pe.Logger.Debugf("portfolio %q: blended return %s%%, yield %s%%",
		plan.Name, returnPct.StringFixed(2), yieldPct.StringFixed(2))

	return &domain.PortfolioSummary{
		Name:                 plan.Name,
		Holdings:             holdings,
		WeightedReturnPct:    returnPct,
		WeightedYieldPct:     yieldPct,
		Projection:           proj,
		MonthlyDividendAtEnd: MonthlyDividendIncome(proj.FinalBalance, yieldPct),
	}, nil
}

func buildGrowthProjection(principal, payment decimal.Decimal, balances []decimal.Decimal) domain.GrowthProjection {
	months := len(balances) - 1
	final := balances[len(balances)-1]
	contributions := principal.Add(payment.Mul(decimal.NewFromInt(int64(months))))
	return domain.GrowthProjection{
		Balances:           balances,
		Months:             months,
		FinalBalance:       final,
		TotalContributions: contributions,
		TotalGain:          final.Sub(contributions),
	}
}
