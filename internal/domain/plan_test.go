package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMonths_ClampsNegativeYears(t *testing.T) {
	if got := (GrowthPlan{Years: -3}).Months(); got != 0 {
		t.Fatalf("expected 0 months for negative years, got %d", got)
	}
	if got := (GrowthPlan{Years: 20}).Months(); got != 240 {
		t.Fatalf("expected 240 months, got %d", got)
	}
}

func TestAccumulationMonths(t *testing.T) {
	cases := []struct {
		current, retire, want int
	}{
		{current: 30, retire: 60, want: 360},
		{current: 60, retire: 60, want: 0},
		{current: 65, retire: 60, want: 0},
	}
	for _, tc := range cases {
		plan := LifecyclePlan{CurrentAge: tc.current, RetirementAge: tc.retire}
		if got := plan.AccumulationMonths(); got != tc.want {
			t.Fatalf("ages %d->%d: expected %d months, got %d", tc.current, tc.retire, tc.want, got)
		}
	}
}

func TestBalancePath_SectionPriority(t *testing.T) {
	growthPath := []decimal.Decimal{decimal.Zero, decimal.NewFromInt(1)}
	goalPath := []decimal.Decimal{decimal.Zero, decimal.NewFromInt(2)}

	report := &ProjectionReport{
		Growth: &GrowthProjection{Balances: growthPath},
		Goal:   &GoalResult{Projection: GrowthProjection{Balances: goalPath}},
	}
	if got := report.BalancePath(); !got[1].Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected the growth path to win, got %s", got[1])
	}

	report.Growth = nil
	if got := report.BalancePath(); !got[1].Equal(decimal.NewFromInt(2)) {
		t.Fatalf("expected the goal path next, got %s", got[1])
	}

	if (&ProjectionReport{}).BalancePath() != nil {
		t.Fatalf("expected nil for an empty report")
	}
}
