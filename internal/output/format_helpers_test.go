package output

import (
	"testing"

	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{in: decimal.Zero, want: "$0.00"},
		{in: decimal.NewFromFloat(1234.5), want: "$1,234.50"},
		{in: decimal.NewFromFloat(201.756), want: "$201.76"},
		{in: decimal.NewFromInt(5000000), want: "$5,000,000.00"},
		{in: decimal.NewFromFloat(-42.5), want: "-$42.50"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Fatalf("FormatCurrency(%s): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestFormatCurrency_OtherCurrency(t *testing.T) {
	old := ReportCurrency
	ReportCurrency = money.JPY
	defer func() { ReportCurrency = old }()

	// JPY has no minor unit, so the amount rounds to whole yen.
	if got := FormatCurrency(decimal.NewFromFloat(1234.5)); got != "¥1,235" {
		t.Fatalf("expected ¥1,235, got %q", got)
	}
}

func TestFormatPercentage(t *testing.T) {
	if got := FormatPercentage(decimal.NewFromInt(7)); got != "7.00%" {
		t.Fatalf("expected 7.00%%, got %q", got)
	}
	if got := FormatPercentage(decimal.NewFromFloat(2.555)); got != "2.56%" {
		t.Fatalf("expected 2.56%%, got %q", got)
	}
}
