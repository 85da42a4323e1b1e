package output

import (
	"bytes"
	"fmt"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

// MarkdownFormatter renders the report as Markdown. The CLI pipes this
// through a terminal renderer; the raw bytes are also valid as a saved .md
// report.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }
func (m MarkdownFormatter) Ext() string  { return "md" }

func (m MarkdownFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	title := report.Title
	if title == "" {
		title = "ETF Projection Summary"
	}
	fmt.Fprintf(&buf, "# %s\n\n", title)
	if report.Scenario != "" {
		fmt.Fprintf(&buf, "Scenario: **%s**\n\n", report.Scenario)
	}

	if g := report.Growth; g != nil {
		fmt.Fprintf(&buf, "## Accumulation\n\n")
		fmt.Fprintf(&buf, "| | |\n|---|---|\n")
		fmt.Fprintf(&buf, "| Final balance | %s |\n", FormatCurrency(g.FinalBalance))
		fmt.Fprintf(&buf, "| Horizon | %d months |\n", g.Months)
		fmt.Fprintf(&buf, "| Total contributions | %s |\n", FormatCurrency(g.TotalContributions))
		fmt.Fprintf(&buf, "| Total gain | %s |\n\n", FormatCurrency(g.TotalGain))
	}

	if g := report.Goal; g != nil {
		fmt.Fprintf(&buf, "## Goal seek\n\n")
		fmt.Fprintf(&buf, "Required monthly contribution: **%s** over %d months to reach %s.\n\n",
			FormatCurrency(g.RequiredMonthlyPayment), g.Projection.Months, FormatCurrency(g.Projection.FinalBalance))
	}

	if d := report.Dividend; d != nil {
		fmt.Fprintf(&buf, "## Dividend income\n\n")
		fmt.Fprintf(&buf, "Monthly income at %s yield: **%s**.\n\n",
			FormatPercentage(d.AnnualYieldPct), FormatCurrency(d.MonthlyIncome))
		if d.RequiredPrincipal != nil {
			fmt.Fprintf(&buf, "Principal required for the target income: **%s**.\n\n",
				FormatCurrency(*d.RequiredPrincipal))
		}
	}

	if l := report.Lifecycle; l != nil {
		fmt.Fprintf(&buf, "## Lifecycle\n\n")
		fmt.Fprintf(&buf, "Corpus at retirement: **%s** after %d months of accumulation.\n\n",
			FormatCurrency(l.Corpus), l.Accumulation.Months)
		fmt.Fprintf(&buf, "Withdrawal policy `%s`: **%s** per month.\n\n",
			l.Policy, FormatCurrency(l.MonthlyWithdrawal))
		if l.Drawdown.Depleted {
			fmt.Fprintf(&buf, "The corpus is depleted after %d months.\n\n", l.Drawdown.MonthsSustained)
		} else {
			fmt.Fprintf(&buf, "The corpus lasts the full %d months.\n\n", l.Drawdown.MonthsSustained)
		}
	}

	if p := report.Portfolio; p != nil {
		fmt.Fprintf(&buf, "## Portfolio")
		if p.Name != "" {
			fmt.Fprintf(&buf, ": %s", p.Name)
		}
		fmt.Fprintf(&buf, "\n\n| Holding | Weight | Return | Yield |\n|---|---|---|---|\n")
		for _, h := range p.Holdings {
			fmt.Fprintf(&buf, "| %s | %s | %s | %s |\n",
				h.Name, FormatPercentage(h.WeightPct), FormatPercentage(h.AnnualReturnPct), FormatPercentage(h.AnnualYieldPct))
		}
		fmt.Fprintf(&buf, "\nWeighted return **%s**, weighted yield **%s**. ",
			FormatPercentage(p.WeightedReturnPct), FormatPercentage(p.WeightedYieldPct))
		fmt.Fprintf(&buf, "Final balance **%s** after %d months, estimated monthly dividend **%s**.\n\n",
			FormatCurrency(p.Projection.FinalBalance), p.Projection.Months, FormatCurrency(p.MonthlyDividendAtEnd))
	}

	for _, note := range report.Notes {
		fmt.Fprintf(&buf, "> %s\n\n", note)
	}
	return buf.Bytes(), nil
}
