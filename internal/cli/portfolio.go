package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

func newPortfolioCmd(opts *rootOptions) *cobra.Command {
	var (
		name      string
		principal float64
		monthly   float64
		years     int
		holdings  []string
	)

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Project a weighted basket of holdings",
		Long: "Normalizes holding weights to 100, blends the expected returns and " +
			"yields, and projects growth plus the estimated monthly dividend at " +
			"the horizon. Holdings come from the configuration file or from " +
			"repeated --holding name:weight:return:yield flags.",
		Example: `  etfcalc portfolio --holding "Broad Market:50:7:3" --holding "Bond:50:4:2.5"
  etfcalc portfolio --config plans.yaml --scenario historical`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			var plan domain.PortfolioPlan
			if cfg.Portfolio != nil {
				plan = *cfg.Portfolio
			}
			fl := cmd.Flags()
			if fl.Changed("name") {
				plan.Name = name
			}
			if fl.Changed("principal") {
				plan.Principal = decimal.NewFromFloat(principal)
			}
			if fl.Changed("monthly") {
				plan.MonthlyPayment = decimal.NewFromFloat(monthly)
			}
			if fl.Changed("years") {
				plan.Years = years
			}
			if fl.Changed("holding") {
				parsed, err := parseHoldingSpecs(holdings)
				if err != nil {
					return err
				}
				plan.Holdings = parsed
			}

			summary, err := opts.engine.RunPortfolio(cmd.Context(), plan)
			if err != nil {
				return err
			}
			return opts.emit(cmd, &domain.ProjectionReport{
				Title:     "Portfolio Projection",
				Portfolio: summary,
			})
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&name, "name", "", "portfolio name")
	fl.Float64Var(&principal, "principal", 0, "initial principal")
	fl.Float64Var(&monthly, "monthly", 15000, "monthly contribution")
	fl.IntVar(&years, "years", 20, "projection horizon in years")
	fl.StringArrayVar(&holdings, "holding", nil, "holding as name:weight:return:yield (repeatable)")
	return cmd
}

// parseHoldingSpecs parses repeated name:weight:return:yield flag values.
// The name may be empty; the engine assigns positional names.
func parseHoldingSpecs(specs []string) ([]domain.Holding, error) {
	holdings := make([]domain.Holding, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("holding %q: want name:weight:return:yield", spec)
		}
		weight, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("holding %q: bad weight: %w", spec, err)
		}
		ret, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("holding %q: bad return: %w", spec, err)
		}
		yield, err := decimal.NewFromString(strings.TrimSpace(parts[3]))
		if err != nil {
			return nil, fmt.Errorf("holding %q: bad yield: %w", spec, err)
		}
		holdings = append(holdings, domain.Holding{
			Name:            strings.TrimSpace(parts[0]),
			WeightPct:       weight,
			AnnualReturnPct: ret,
			AnnualYieldPct:  yield,
		})
	}
	return holdings, nil
}
