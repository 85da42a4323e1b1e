package cli

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

func newLifecycleCmd(opts *rootOptions) *cobra.Command {
	var (
		currentAge  int
		retireAge   int
		principal   float64
		monthly     float64
		annualPct   float64
		due         bool
		retireYears int
		retirePct   float64
		policy      string
		swrPct      float64
	)

	cmd := &cobra.Command{
		Use:   "lifecycle",
		Short: "Model accumulation to retirement plus the drawdown phase",
		Long: "Accumulates from the current age to the retirement age, sizes the " +
			"monthly withdrawal under the chosen policy (fixed-term annuity or " +
			"safe withdrawal rate), and simulates drawing the corpus down. " +
			"Withdrawals always happen at end of month.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			var plan domain.LifecyclePlan
			if cfg.Lifecycle != nil {
				plan = *cfg.Lifecycle
			}
			fl := cmd.Flags()
			if fl.Changed("age") {
				plan.CurrentAge = currentAge
			}
			if fl.Changed("retire-age") {
				plan.RetirementAge = retireAge
			}
			if fl.Changed("principal") {
				plan.Principal = decimal.NewFromFloat(principal)
			}
			if fl.Changed("monthly") {
				plan.MonthlyPayment = decimal.NewFromFloat(monthly)
			}
			if fl.Changed("return") {
				plan.AnnualReturnPct = decimal.NewFromFloat(annualPct)
			}
			if fl.Changed("due") {
				plan.DepositAtStart = due
			}
			if fl.Changed("retire-years") {
				plan.RetirementYears = retireYears
			}
			if fl.Changed("retire-return") {
				plan.RetirementReturnPct = decimal.NewFromFloat(retirePct)
			}
			if fl.Changed("policy") {
				plan.WithdrawalPolicy = policy
			}
			if fl.Changed("swr") {
				plan.SafeWithdrawalRatePct = decimal.NewFromFloat(swrPct)
			}

			summary, err := opts.engine.RunLifecycle(cmd.Context(), plan)
			if err != nil {
				return err
			}
			return opts.emit(cmd, &domain.ProjectionReport{
				Title:     "Retirement Lifecycle",
				Lifecycle: summary,
			})
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&currentAge, "age", 30, "current age")
	fl.IntVar(&retireAge, "retire-age", 60, "retirement age")
	fl.Float64Var(&principal, "principal", 0, "initial principal")
	fl.Float64Var(&monthly, "monthly", 15000, "monthly contribution during accumulation")
	fl.Float64Var(&annualPct, "return", 7.0, "annual return during accumulation (percent)")
	fl.BoolVar(&due, "due", false, "contribute at the start of each month instead of the end")
	fl.IntVar(&retireYears, "retire-years", 30, "drawdown horizon in years")
	fl.Float64Var(&retirePct, "retire-return", 4.0, "annual return during retirement (percent)")
	fl.StringVar(&policy, "policy", domain.WithdrawalPolicyAnnuity, "withdrawal policy: annuity or swr")
	fl.Float64Var(&swrPct, "swr", 4.0, "safe withdrawal rate (percent, swr policy only)")
	return cmd
}
