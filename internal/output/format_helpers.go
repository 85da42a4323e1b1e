package output

import (
	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ReportCurrency is the ISO 4217 code used for all money rendering.
// Overridable via the CLI --currency flag.
var ReportCurrency = money.USD

// FormatCurrency renders an amount in the report currency with its locale
// grouping and symbol. Kept here so it can be reused by every formatter and
// unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	cur := money.GetCurrency(ReportCurrency)
	if cur == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// FormatPercentage formats a decimal percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }
