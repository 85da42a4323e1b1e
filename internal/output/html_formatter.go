package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report with inline SVG
// charts for the balance path(s) and portfolio weights.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }
func (h HTMLFormatter) Ext() string  { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"currPtr": func(d *decimal.Decimal) string {
		if d == nil {
			return ""
		}
		return FormatCurrency(*d)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	data := struct {
		*domain.ProjectionReport
		PrimaryChart  *LineChart
		DrawdownChart *LineChart
		Pie           []PieSlice
	}{ProjectionReport: report}

	switch {
	case report.Growth != nil:
		data.PrimaryChart = buildLineChart("Accumulation balance", report.Growth.Balances)
	case report.Goal != nil:
		data.PrimaryChart = buildLineChart("Balance path at the required contribution", report.Goal.Projection.Balances)
	case report.Portfolio != nil:
		data.PrimaryChart = buildLineChart("Portfolio growth at the blended return", report.Portfolio.Projection.Balances)
	case report.Lifecycle != nil:
		data.PrimaryChart = buildLineChart("Accumulation balance", report.Lifecycle.Accumulation.Balances)
	}
	if report.Lifecycle != nil {
		data.DrawdownChart = buildLineChart("Retirement drawdown balance", report.Lifecycle.Drawdown.Balances)
	}
	if report.Portfolio != nil {
		data.Pie = buildPieChart(report.Portfolio.Holdings)
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
