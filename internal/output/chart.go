package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

// SVG chart geometry, precomputed in Go so the HTML template stays dumb.
const (
	chartWidth   = 640.0
	chartHeight  = 320.0
	chartPadding = 48.0
	pieRadius    = 130.0
)

var piePalette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2",
	"#59a14f", "#edc948", "#b07aa1", "#ff9da7",
}

// LineChart is a single balance-path series rendered as an SVG polyline.
type LineChart struct {
	Title  string
	Points string
	Width  float64
	Height float64
	YMax   string
	XMax   int
}

// PieSlice is one wedge of the portfolio weight pie.
type PieSlice struct {
	Path  string
	Color string
	Label string
}

func buildLineChart(title string, balances []decimal.Decimal) *LineChart {
	if len(balances) == 0 {
		return nil
	}
	maxVal := 0.0
	vals := make([]float64, len(balances))
	for k, b := range balances {
		v := b.InexactFloat64()
		vals[k] = v
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal <= 0 {
		maxVal = 1
	}
	span := float64(len(vals) - 1)
	if span <= 0 {
		span = 1
	}
	innerW := chartWidth - 2*chartPadding
	innerH := chartHeight - 2*chartPadding

	var sb strings.Builder
	for k, v := range vals {
		x := chartPadding + innerW*float64(k)/span
		y := chartHeight - chartPadding - innerH*v/maxVal
		if k > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
	}
	return &LineChart{
		Title:  title,
		Points: sb.String(),
		Width:  chartWidth,
		Height: chartHeight,
		YMax:   FormatCurrency(decimal.NewFromFloat(maxVal)),
		XMax:   len(vals) - 1,
	}
}

func buildPieChart(holdings []domain.Holding) []PieSlice {
	total := 0.0
	for _, h := range holdings {
		total += h.WeightPct.InexactFloat64()
	}
	if total <= 0 {
		return nil
	}
	cx, cy := chartWidth/2, chartHeight/2
	r := math.Min(pieRadius, chartHeight/2-10)

	slices := make([]PieSlice, 0, len(holdings))
	// start at 12 o'clock, sweep clockwise
	angle := -math.Pi / 2
	for k, h := range holdings {
		frac := h.WeightPct.InexactFloat64() / total
		end := angle + 2*math.Pi*frac
		x1, y1 := cx+r*math.Cos(angle), cy+r*math.Sin(angle)
		x2, y2 := cx+r*math.Cos(end), cy+r*math.Sin(end)
		largeArc := 0
		if frac > 0.5 {
			largeArc = 1
		}
		path := fmt.Sprintf("M%.1f,%.1f L%.1f,%.1f A%.1f,%.1f 0 %d 1 %.1f,%.1f Z",
			cx, cy, x1, y1, r, r, largeArc, x2, y2)
		slices = append(slices, PieSlice{
			Path:  path,
			Color: piePalette[k%len(piePalette)],
			Label: fmt.Sprintf("%s (%s)", h.Name, FormatPercentage(h.WeightPct)),
		})
		angle = end
	}
	return slices
}
