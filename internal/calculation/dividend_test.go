package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMonthlyDividendIncome(t *testing.T) {
	income := MonthlyDividendIncome(decimal.NewFromInt(1000000), decimal.NewFromInt(3))
	if !income.Equal(decimal.NewFromInt(2500)) {
		t.Fatalf("expected exactly 2500/month from 1,000,000 at 3%%, got %s", income)
	}
}

func TestMonthlyDividendIncome_ZeroYield(t *testing.T) {
	income := MonthlyDividendIncome(decimal.NewFromInt(1000000), decimal.Zero)
	if !income.IsZero() {
		t.Fatalf("expected zero income at zero yield, got %s", income)
	}
}

func TestRequiredPrincipalForDividend(t *testing.T) {
	principal, err := RequiredPrincipalForDividend(decimal.NewFromInt(20000), decimal.NewFromInt(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !principal.Equal(decimal.NewFromInt(8000000)) {
		t.Fatalf("expected exactly 8,000,000 for 20,000/month at 3%%, got %s", principal)
	}
}

func TestRequiredPrincipalForDividend_RejectsNonPositiveYield(t *testing.T) {
	for _, yield := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-2)} {
		_, err := RequiredPrincipalForDividend(decimal.NewFromInt(1000), yield)
		if err == nil {
			t.Fatalf("expected an error for yield %s", yield)
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for yield %s, got %v", yield, err)
		}
	}
}

// The two directions are exact inverses of each other.
func TestDividend_MutualInverse(t *testing.T) {
	principal := decimal.NewFromInt(1000000)
	yield := decimal.NewFromInt(3)

	income := MonthlyDividendIncome(principal, yield)
	back, err := RequiredPrincipalForDividend(income, yield)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !back.Equal(principal) {
		t.Fatalf("expected the original principal %s back, got %s", principal, back)
	}
}
