package output

import (
	"bytes"
	"fmt"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

// ConsoleFormatter provides a concise plain-text summary of the report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }
func (c ConsoleFormatter) Ext() string  { return "txt" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	title := report.Title
	if title == "" {
		title = "ETF PROJECTION SUMMARY"
	}
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, "================================")
	if report.Scenario != "" {
		fmt.Fprintf(&buf, "Scenario: %s\n", report.Scenario)
	}

	if g := report.Growth; g != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Accumulation")
		fmt.Fprintf(&buf, "  Final balance:       %s after %d months\n", FormatCurrency(g.FinalBalance), g.Months)
		fmt.Fprintf(&buf, "  Total contributions: %s\n", FormatCurrency(g.TotalContributions))
		fmt.Fprintf(&buf, "  Total gain:          %s\n", FormatCurrency(g.TotalGain))
	}

	if g := report.Goal; g != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Goal seek")
		fmt.Fprintf(&buf, "  Required monthly contribution: %s\n", FormatCurrency(g.RequiredMonthlyPayment))
		fmt.Fprintf(&buf, "  Reaches %s after %d months\n",
			FormatCurrency(g.Projection.FinalBalance), g.Projection.Months)
		if g.RequiredMonthlyPayment.IsNegative() {
			fmt.Fprintln(&buf, "  Note: the compounded principal alone already exceeds the target.")
		}
	}

	if d := report.Dividend; d != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Dividend income")
		fmt.Fprintf(&buf, "  Monthly income at %s yield: %s\n",
			FormatPercentage(d.AnnualYieldPct), FormatCurrency(d.MonthlyIncome))
		if d.RequiredPrincipal != nil {
			fmt.Fprintf(&buf, "  Principal required for target income: %s\n", FormatCurrency(*d.RequiredPrincipal))
		}
	}

	if l := report.Lifecycle; l != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Lifecycle")
		fmt.Fprintf(&buf, "  Corpus at retirement: %s after %d months\n",
			FormatCurrency(l.Corpus), l.Accumulation.Months)
		fmt.Fprintf(&buf, "  Withdrawal (%s): %s per month\n", l.Policy, FormatCurrency(l.MonthlyWithdrawal))
		if l.Drawdown.Depleted {
			fmt.Fprintf(&buf, "  Corpus depleted after %d months\n", l.Drawdown.MonthsSustained)
		} else {
			fmt.Fprintf(&buf, "  Corpus lasts the full %d months, ending at %s\n",
				l.Drawdown.MonthsSustained, FormatCurrency(l.Drawdown.Balances[len(l.Drawdown.Balances)-1]))
		}
	}

	if p := report.Portfolio; p != nil {
		fmt.Fprintln(&buf)
		if p.Name != "" {
			fmt.Fprintf(&buf, "Portfolio %q\n", p.Name)
		} else {
			fmt.Fprintln(&buf, "Portfolio")
		}
		for _, h := range p.Holdings {
			fmt.Fprintf(&buf, "  %-16s weight %s, return %s, yield %s\n",
				h.Name, FormatPercentage(h.WeightPct), FormatPercentage(h.AnnualReturnPct), FormatPercentage(h.AnnualYieldPct))
		}
		fmt.Fprintf(&buf, "  Weighted return: %s, weighted yield: %s\n",
			FormatPercentage(p.WeightedReturnPct), FormatPercentage(p.WeightedYieldPct))
		fmt.Fprintf(&buf, "  Final balance: %s after %d months\n",
			FormatCurrency(p.Projection.FinalBalance), p.Projection.Months)
		fmt.Fprintf(&buf, "  Estimated monthly dividend at horizon: %s\n", FormatCurrency(p.MonthlyDividendAtEnd))
	}

	for _, note := range report.Notes {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Note: %s\n", note)
	}
	return buf.Bytes(), nil
}
