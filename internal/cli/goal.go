package cli

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

func newGoalCmd(opts *rootOptions) *cobra.Command {
	var (
		target    float64
		principal float64
		annualPct float64
		years     int
		due       bool
	)

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Solve the monthly contribution required to reach a target",
		Long: "Inverts the annuity future-value formula to find the monthly " +
			"contribution that reaches the target amount, and simulates the " +
			"matching balance path.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			var plan domain.GoalPlan
			if cfg.Goal != nil {
				plan = *cfg.Goal
			}
			fl := cmd.Flags()
			if fl.Changed("target") {
				plan.TargetAmount = decimal.NewFromFloat(target)
			}
			if fl.Changed("principal") {
				plan.Principal = decimal.NewFromFloat(principal)
			}
			if fl.Changed("return") {
				plan.AnnualReturnPct = decimal.NewFromFloat(annualPct)
			}
			if fl.Changed("years") {
				plan.Years = years
			}
			if fl.Changed("due") {
				plan.DepositAtStart = due
			}

			result, err := opts.engine.RunGoalSeek(cmd.Context(), plan)
			if err != nil {
				return err
			}
			return opts.emit(cmd, &domain.ProjectionReport{
				Title: "Goal Seek",
				Goal:  result,
			})
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&target, "target", 5000000, "target future value")
	fl.Float64Var(&principal, "principal", 0, "initial principal")
	fl.Float64Var(&annualPct, "return", 7.0, "annual return (percent)")
	fl.IntVar(&years, "years", 20, "investment horizon in years")
	fl.BoolVar(&due, "due", false, "contribute at the start of each month instead of the end")
	return cmd
}
