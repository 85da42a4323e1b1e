package output

import (
	"bytes"
	"os"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

const (
	pdfMarginLeft  = 15.0
	pdfMarginTop   = 15.0
	pdfMarginRight = 15.0
	pdfPageWidth   = 210.0
	pdfLineHeight  = 7.0
)

// PDFFormatter renders the report as a one-page A4 PDF summary. When the
// ETFCALC_FONT environment variable points at a TTF file, that font is used
// instead of the built-in Arial so non-Latin holding names render.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }
func (p PDFFormatter) Ext() string  { return "pdf" }

func (p PDFFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	doc.SetAutoPageBreak(true, 20)

	family := "Arial"
	if fontPath := os.Getenv("ETFCALC_FONT"); fontPath != "" {
		if _, err := os.Stat(fontPath); err == nil {
			family = "custom"
			doc.AddUTF8Font(family, "", fontPath)
			doc.AddUTF8Font(family, "B", fontPath)
		}
	}
	doc.AddPage()

	contentWidth := pdfPageWidth - pdfMarginLeft - pdfMarginRight
	title := report.Title
	if title == "" {
		title = "ETF Projection Report"
	}
	doc.SetFont(family, "B", 20)
	doc.SetTextColor(0, 51, 102)
	doc.CellFormat(contentWidth, 12, title, "", 1, "C", false, 0, "")
	doc.SetFont(family, "", 10)
	doc.SetTextColor(80, 80, 80)
	subtitle := "Generated " + report.GeneratedAt.Format("2006-01-02 15:04")
	if report.Scenario != "" {
		subtitle += "  /  scenario: " + report.Scenario
	}
	doc.CellFormat(contentWidth, 6, subtitle, "", 1, "C", false, 0, "")
	doc.Ln(4)
	doc.SetTextColor(0, 0, 0)

	section := func(heading string, rows [][2]string) {
		doc.SetFont(family, "B", 13)
		doc.CellFormat(contentWidth, 9, heading, "", 1, "L", false, 0, "")
		doc.SetFont(family, "", 11)
		for _, row := range rows {
			doc.CellFormat(contentWidth*0.55, pdfLineHeight, row[0], "B", 0, "L", false, 0, "")
			doc.CellFormat(contentWidth*0.45, pdfLineHeight, row[1], "B", 1, "R", false, 0, "")
		}
		doc.Ln(3)
	}

	if g := report.Growth; g != nil {
		section("Accumulation", [][2]string{
			{"Final balance", FormatCurrency(g.FinalBalance)},
			{"Horizon (months)", strconv.Itoa(g.Months)},
			{"Total contributions", FormatCurrency(g.TotalContributions)},
			{"Total gain", FormatCurrency(g.TotalGain)},
		})
	}
	if g := report.Goal; g != nil {
		section("Goal seek", [][2]string{
			{"Required monthly contribution", FormatCurrency(g.RequiredMonthlyPayment)},
			{"Final balance", FormatCurrency(g.Projection.FinalBalance)},
			{"Horizon (months)", strconv.Itoa(g.Projection.Months)},
		})
	}
	if d := report.Dividend; d != nil {
		rows := [][2]string{
			{"Monthly income at " + FormatPercentage(d.AnnualYieldPct) + " yield", FormatCurrency(d.MonthlyIncome)},
		}
		if d.RequiredPrincipal != nil {
			rows = append(rows, [2]string{"Principal for target income", FormatCurrency(*d.RequiredPrincipal)})
		}
		section("Dividend income", rows)
	}
	if l := report.Lifecycle; l != nil {
		sustained := strconv.Itoa(l.Drawdown.MonthsSustained)
		if l.Drawdown.Depleted {
			sustained += " (depleted)"
		}
		section("Lifecycle", [][2]string{
			{"Corpus at retirement", FormatCurrency(l.Corpus)},
			{"Withdrawal policy", l.Policy},
			{"Monthly withdrawal", FormatCurrency(l.MonthlyWithdrawal)},
			{"Months sustained", sustained},
		})
	}
	if pf := report.Portfolio; pf != nil {
		heading := "Portfolio"
		if pf.Name != "" {
			heading += ": " + pf.Name
		}
		rows := make([][2]string, 0, len(pf.Holdings)+4)
		for _, h := range pf.Holdings {
			rows = append(rows, [2]string{
				h.Name + "  (" + FormatPercentage(h.WeightPct) + ")",
				"return " + FormatPercentage(h.AnnualReturnPct) + ", yield " + FormatPercentage(h.AnnualYieldPct),
			})
		}
		rows = append(rows,
			[2]string{"Weighted return / yield", FormatPercentage(pf.WeightedReturnPct) + " / " + FormatPercentage(pf.WeightedYieldPct)},
			[2]string{"Final balance", FormatCurrency(pf.Projection.FinalBalance)},
			[2]string{"Monthly dividend at horizon", FormatCurrency(pf.MonthlyDividendAtEnd)},
		)
		section(heading, rows)
	}

	if len(report.Notes) > 0 {
		doc.SetFont(family, "", 9)
		doc.SetTextColor(80, 80, 80)
		for _, note := range report.Notes {
			doc.MultiCell(contentWidth, 5, note, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
