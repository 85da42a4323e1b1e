package cli

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

func newDividendCmd(opts *rootOptions) *cobra.Command {
	var (
		principal     float64
		yieldPct      float64
		targetMonthly float64
	)

	cmd := &cobra.Command{
		Use:   "dividend",
		Short: "Size dividend income from a principal, or the principal for a target income",
		Long: "Computes the monthly dividend income a principal produces at an " +
			"annual yield. With --target-monthly it also inverts the formula to " +
			"the principal required for that income.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			var plan domain.DividendPlan
			if cfg.Dividend != nil {
				plan = *cfg.Dividend
			}
			fl := cmd.Flags()
			if fl.Changed("principal") {
				plan.Principal = decimal.NewFromFloat(principal)
			}
			if fl.Changed("yield") {
				plan.AnnualYieldPct = decimal.NewFromFloat(yieldPct)
			}
			if fl.Changed("target-monthly") {
				t := decimal.NewFromFloat(targetMonthly)
				plan.TargetMonthlyIncome = &t
			}

			result, err := opts.engine.RunDividend(cmd.Context(), plan)
			if err != nil {
				return err
			}
			return opts.emit(cmd, &domain.ProjectionReport{
				Title:    "Dividend Income",
				Dividend: result,
			})
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&principal, "principal", 1000000, "invested principal")
	fl.Float64Var(&yieldPct, "yield", 3.0, "annual dividend yield (percent)")
	fl.Float64Var(&targetMonthly, "target-monthly", 0, "target monthly income to invert for")
	return cmd
}
