package cli

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

func newGrowCmd(opts *rootOptions) *cobra.Command {
	var (
		principal float64
		monthly   float64
		annualPct float64
		years     int
		due       bool
	)

	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Project a dollar-cost-averaging accumulation plan",
		Long: "Simulates monthly contributions compounding at an assumed annual " +
			"return and reports the balance path, final balance, total " +
			"contributions and gain.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			var plan domain.GrowthPlan
			if cfg.Growth != nil {
				plan = *cfg.Growth
			}
			fl := cmd.Flags()
			if fl.Changed("principal") {
				plan.Principal = decimal.NewFromFloat(principal)
			}
			if fl.Changed("monthly") {
				plan.MonthlyPayment = decimal.NewFromFloat(monthly)
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

			proj, err := opts.engine.RunGrowth(cmd.Context(), plan)
			if err != nil {
				return err
			}
			return opts.emit(cmd, &domain.ProjectionReport{
				Title:  "DCA Accumulation",
				Growth: proj,
			})
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&principal, "principal", 0, "initial principal")
	fl.Float64Var(&monthly, "monthly", 10000, "monthly contribution")
	fl.Float64Var(&annualPct, "return", 7.0, "annual return (percent)")
	fl.IntVar(&years, "years", 20, "investment horizon in years")
	fl.BoolVar(&due, "due", false, "contribute at the start of each month instead of the end")
	return cmd
}
