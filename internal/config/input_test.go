package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

func TestCreateExampleConfiguration_Validates(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	if err := parser.ValidateConfiguration(config); err != nil {
		t.Fatalf("example configuration failed validation: %v", err)
	}
	if len(config.Scenarios) != 4 {
		t.Fatalf("expected 4 scenario presets, got %d", len(config.Scenarios))
	}
	require.NotNil(t, config.Growth)
	require.NotNil(t, config.Goal)
	require.NotNil(t, config.Dividend)
	require.NotNil(t, config.Lifecycle)
	require.NotNil(t, config.Portfolio)
}

func TestLoadFromFile(t *testing.T) {
	content := `
scenarios:
  - name: steady
    annual_return_pct: 5
    annual_yield_pct: 2.5
growth:
  principal: 10000
  monthly_payment: 500
  annual_return_pct: 7
  years: 20
  deposit_at_start: true
lifecycle:
  current_age: 30
  retirement_age: 60
  monthly_payment: 15000
  annual_return_pct: 7
  retirement_years: 30
  retirement_return_pct: 4
  withdrawal_policy: swr
  safe_withdrawal_rate_pct: 4
`
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	parser := NewInputParser()
	config, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	require.NotNil(t, config.Growth)
	assert.True(t, config.Growth.Principal.Equal(decimal.NewFromInt(10000)))
	assert.True(t, config.Growth.DepositAtStart)
	assert.Equal(t, 20, config.Growth.Years)

	require.NotNil(t, config.Lifecycle)
	assert.Equal(t, domain.WithdrawalPolicySWR, config.Lifecycle.WithdrawalPolicy)
	assert.Nil(t, config.Dividend)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestValidateConfiguration_Rejections(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	cases := []struct {
		name    string
		config  *domain.Configuration
		wantMsg string
	}{
		{
			name:    "negative principal",
			config:  &domain.Configuration{Growth: &domain.GrowthPlan{Principal: negative}},
			wantMsg: "principal cannot be negative",
		},
		{
			name:    "years out of range",
			config:  &domain.Configuration{Growth: &domain.GrowthPlan{Years: 101}},
			wantMsg: "years must be between 0 and 100",
		},
		{
			name:    "return at the -100% bound",
			config:  &domain.Configuration{Goal: &domain.GoalPlan{AnnualReturnPct: decimal.NewFromInt(-100)}},
			wantMsg: "annual return must be greater than -100%",
		},
		{
			name:    "bad withdrawal policy",
			config:  &domain.Configuration{Lifecycle: &domain.LifecyclePlan{WithdrawalPolicy: "yolo"}},
			wantMsg: "withdrawal policy",
		},
		{
			name:    "portfolio without holdings",
			config:  &domain.Configuration{Portfolio: &domain.PortfolioPlan{}},
			wantMsg: "at least one holding is required",
		},
		{
			name: "negative holding weight",
			config: &domain.Configuration{Portfolio: &domain.PortfolioPlan{
				Holdings: []domain.Holding{{WeightPct: negative}},
			}},
			wantMsg: "weight cannot be negative",
		},
		{
			name:    "unnamed scenario",
			config:  &domain.Configuration{Scenarios: []domain.Scenario{{}}},
			wantMsg: "scenario name is required",
		},
	}

	parser := NewInputParser()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := parser.ValidateConfiguration(tc.config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestApplyScenario_Broadcasts(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	// Case-insensitive lookup.
	require.NoError(t, ApplyScenario(config, "Optimistic"))

	nine := decimal.NewFromFloat(9.0)
	threeFive := decimal.NewFromFloat(3.5)

	assert.True(t, config.Growth.AnnualReturnPct.Equal(nine))
	assert.True(t, config.Goal.AnnualReturnPct.Equal(nine))
	assert.True(t, config.Dividend.AnnualYieldPct.Equal(threeFive))
	assert.True(t, config.Lifecycle.AnnualReturnPct.Equal(nine))
	assert.True(t, config.Lifecycle.RetirementReturnPct.Equal(nine))
	for k, h := range config.Portfolio.Holdings {
		assert.True(t, h.AnnualReturnPct.Equal(nine), "holding %d return not broadcast", k)
		assert.True(t, h.AnnualYieldPct.Equal(threeFive), "holding %d yield not broadcast", k)
		// Weights and names stay untouched.
		assert.True(t, h.WeightPct.Equal(decimal.NewFromInt(25)))
	}
}

func TestApplyScenario_Unknown(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	err := ApplyScenario(config, "lunar")
	require.Error(t, err)
	if !strings.Contains(err.Error(), "unknown scenario") {
		t.Fatalf("expected an unknown-scenario error, got %v", err)
	}
	// The known preset names are listed for the user.
	assert.Contains(t, err.Error(), "historical")
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, SaveConfiguration(config, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.Len(t, loaded.Scenarios, 4)
	require.NotNil(t, loaded.Lifecycle)
	assert.Equal(t, config.Lifecycle.RetirementAge, loaded.Lifecycle.RetirementAge)
	assert.True(t, loaded.Goal.TargetAmount.Equal(config.Goal.TargetAmount))
	require.NotNil(t, loaded.Dividend.TargetMonthlyIncome)
	assert.True(t, loaded.Dividend.TargetMonthlyIncome.Equal(decimal.NewFromInt(20000)))
}
