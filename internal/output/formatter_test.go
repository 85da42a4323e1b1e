package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

func growthReport() *domain.ProjectionReport {
	balances := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromFloat(100.5),
		decimal.NewFromFloat(201.756),
	}
	return &domain.ProjectionReport{
		Title: "Test Growth",
		Growth: &domain.GrowthProjection{
			Balances:           balances,
			Months:             2,
			FinalBalance:       balances[2],
			TotalContributions: decimal.NewFromInt(200),
			TotalGain:          balances[2].Sub(decimal.NewFromInt(200)),
		},
	}
}

func portfolioReport() *domain.ProjectionReport {
	return &domain.ProjectionReport{
		Title: "Test Portfolio",
		Portfolio: &domain.PortfolioSummary{
			Name: "Core",
			Holdings: []domain.Holding{
				{Name: "Broad Market", WeightPct: decimal.NewFromInt(60), AnnualReturnPct: decimal.NewFromInt(7), AnnualYieldPct: decimal.NewFromInt(3)},
				{Name: "Bond", WeightPct: decimal.NewFromInt(40), AnnualReturnPct: decimal.NewFromInt(3), AnnualYieldPct: decimal.NewFromInt(2)},
			},
			WeightedReturnPct: decimal.NewFromFloat(5.4),
			WeightedYieldPct:  decimal.NewFromFloat(2.6),
			Projection: domain.GrowthProjection{
				Balances:     []decimal.Decimal{decimal.Zero, decimal.NewFromInt(1000)},
				Months:       1,
				FinalBalance: decimal.NewFromInt(1000),
			},
			MonthlyDividendAtEnd: decimal.NewFromFloat(2.17),
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "console", want: "console"},
		{in: "TEXT", want: "console"},
		{in: " txt ", want: "console"},
		{in: "csv", want: "csv"},
		{in: "balance-csv", want: "csv"},
		{in: "md", want: "markdown"},
		{in: "json-pretty", want: "json"},
		{in: "html-report", want: "html"},
		{in: "pdf", want: "pdf"},
	}
	for _, tc := range cases {
		f := GetFormatterByName(tc.in)
		if f == nil {
			t.Fatalf("%q: expected a formatter, got nil", tc.in)
		}
		if f.Name() != tc.want {
			t.Fatalf("%q: expected formatter %q, got %q", tc.in, tc.want, f.Name())
		}
	}
	if f := GetFormatterByName("xml"); f != nil {
		t.Fatalf("expected nil for an unknown format, got %q", f.Name())
	}
}

func TestRender_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, growthReport(), "xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	// The error lists what would have worked.
	assert.Contains(t, err.Error(), "console")
	assert.Contains(t, err.Error(), "markdown")
}

func TestCSVPathExporter_ExactOutput(t *testing.T) {
	data, err := CSVPathExporter{}.Format(growthReport())
	require.NoError(t, err)

	want := "month,balance\n0,0.00\n1,100.50\n2,201.76\n"
	if string(data) != want {
		t.Fatalf("expected %q, got %q", want, string(data))
	}
}

func TestCSVPathExporter_NoPath(t *testing.T) {
	report := &domain.ProjectionReport{
		Dividend: &domain.DividendResult{MonthlyIncome: decimal.NewFromInt(100)},
	}
	_, err := CSVPathExporter{}.Format(report)
	if err == nil {
		t.Fatalf("expected an error for a report with no balance path")
	}
}

func TestJSONFormatter_RoundTrip(t *testing.T) {
	data, err := JSONFormatter{}.Format(growthReport())
	require.NoError(t, err)

	var decoded domain.ProjectionReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Test Growth", decoded.Title)
	require.NotNil(t, decoded.Growth)
	assert.Equal(t, 2, decoded.Growth.Months)
	assert.True(t, decoded.Growth.FinalBalance.Equal(decimal.NewFromFloat(201.756)))
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(growthReport())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "Test Growth")
	assert.Contains(t, out, "Final balance:")
	assert.Contains(t, out, "$201.76")
	assert.Contains(t, out, "Total contributions: $200.00")
}

func TestConsoleFormatter_PortfolioSection(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(portfolioReport())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `Portfolio "Core"`)
	assert.Contains(t, out, "Broad Market")
	assert.Contains(t, out, "Weighted return: 5.40%")
}

func TestMarkdownFormatter(t *testing.T) {
	data, err := MarkdownFormatter{}.Format(growthReport())
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "# Test Growth\n"))
	assert.Contains(t, out, "## Accumulation")
	assert.Contains(t, out, "| Final balance | $201.76 |")
}

func TestHTMLFormatter(t *testing.T) {
	data, err := HTMLFormatter{}.Format(growthReport())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "<polyline")
	assert.Contains(t, out, "Test Growth")
}

func TestHTMLFormatter_PortfolioPie(t *testing.T) {
	data, err := HTMLFormatter{}.Format(portfolioReport())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "Broad Market")
	// Two holdings render two pie slices.
	assert.Equal(t, 2, strings.Count(out, "<path"))
}

func TestPDFFormatter(t *testing.T) {
	data, err := PDFFormatter{}.Format(growthReport())
	require.NoError(t, err)
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected a PDF header, got %q", data[:min(16, len(data))])
	}
}

func TestWriteFormatted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	written, err := WriteFormatted(growthReport(), "csv", path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "month,balance\n"))
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()
	assert.Equal(t, []string{"console", "csv", "html", "json", "markdown", "pdf"}, names)
}
