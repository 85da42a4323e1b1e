package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

// CSVPathExporter writes the report's primary balance path as CSV with a
// `month,balance` header, one row per simulated month, and two-decimal
// fixed-point balances.
type CSVPathExporter struct{}

func (c CSVPathExporter) Name() string { return "csv" }
func (c CSVPathExporter) Ext() string  { return "csv" }

func (c CSVPathExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	path := report.BalancePath()
	if path == nil {
		return nil, fmt.Errorf("report has no balance path to export")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"month", "balance"}); err != nil {
		return nil, err
	}
	for m, bal := range path {
		if err := w.Write([]string{strconv.Itoa(m), bal.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
