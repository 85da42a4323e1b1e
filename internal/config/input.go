package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/etfcalc/etf-calculator/internal/domain"
)

// minAnnualPct is the domain bound of the rate conversion: anything at or
// below -100% has no twelfth root.
var minAnnualPct = decimal.NewFromInt(-100)

// InputParser handles parsing of plan configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a YAML configuration file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates every plan block that is present.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}
	if config.Growth != nil {
		if err := ip.validateGrowth(config.Growth); err != nil {
			return fmt.Errorf("growth plan validation failed: %w", err)
		}
	}
	if config.Goal != nil {
		if err := ip.validateGoal(config.Goal); err != nil {
			return fmt.Errorf("goal plan validation failed: %w", err)
		}
	}
	if config.Dividend != nil {
		if err := ip.validateDividend(config.Dividend); err != nil {
			return fmt.Errorf("dividend plan validation failed: %w", err)
		}
	}
	if config.Lifecycle != nil {
		if err := ip.validateLifecycle(config.Lifecycle); err != nil {
			return fmt.Errorf("lifecycle plan validation failed: %w", err)
		}
	}
	if config.Portfolio != nil {
		if err := ip.validatePortfolio(config.Portfolio); err != nil {
			return fmt.Errorf("portfolio plan validation failed: %w", err)
		}
	}
	return nil
}

func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.AnnualReturnPct.LessThanOrEqual(minAnnualPct) {
		return fmt.Errorf("annual return must be greater than -100%%")
	}
	if scenario.AnnualYieldPct.IsNegative() {
		return fmt.Errorf("annual yield cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateGrowth(plan *domain.GrowthPlan) error {
	if plan.Principal.IsNegative() {
		return fmt.Errorf("principal cannot be negative")
	}
	if plan.MonthlyPayment.IsNegative() {
		return fmt.Errorf("monthly payment cannot be negative")
	}
	if plan.AnnualReturnPct.LessThanOrEqual(minAnnualPct) {
		return fmt.Errorf("annual return must be greater than -100%%")
	}
	if plan.Years < 0 || plan.Years > 100 {
		return fmt.Errorf("years must be between 0 and 100")
	}
	return nil
}

func (ip *InputParser) validateGoal(plan *domain.GoalPlan) error {
	if plan.TargetAmount.IsNegative() {
		return fmt.Errorf("target amount cannot be negative")
	}
	if plan.Principal.IsNegative() {
		return fmt.Errorf("principal cannot be negative")
	}
	if plan.AnnualReturnPct.LessThanOrEqual(minAnnualPct) {
		return fmt.Errorf("annual return must be greater than -100%%")
	}
	if plan.Years < 0 || plan.Years > 100 {
		return fmt.Errorf("years must be between 0 and 100")
	}
	return nil
}

func (ip *InputParser) validateDividend(plan *domain.DividendPlan) error {
	if plan.Principal.IsNegative() {
		return fmt.Errorf("principal cannot be negative")
	}
	if plan.AnnualYieldPct.IsNegative() {
		return fmt.Errorf("annual yield cannot be negative")
	}
	if plan.TargetMonthlyIncome != nil && plan.TargetMonthlyIncome.IsNegative() {
		return fmt.Errorf("target monthly income cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateLifecycle(plan *domain.LifecyclePlan) error {
	if plan.CurrentAge < 0 || plan.CurrentAge > 120 {
		return fmt.Errorf("current age must be between 0 and 120")
	}
	if plan.RetirementAge < 0 || plan.RetirementAge > 120 {
		return fmt.Errorf("retirement age must be between 0 and 120")
	}
	if plan.Principal.IsNegative() {
		return fmt.Errorf("principal cannot be negative")
	}
	if plan.MonthlyPayment.IsNegative() {
		return fmt.Errorf("monthly payment cannot be negative")
	}
	if plan.AnnualReturnPct.LessThanOrEqual(minAnnualPct) {
		return fmt.Errorf("annual return must be greater than -100%%")
	}
	if plan.RetirementReturnPct.LessThanOrEqual(minAnnualPct) {
		return fmt.Errorf("retirement return must be greater than -100%%")
	}
	if plan.RetirementYears < 0 || plan.RetirementYears > 100 {
		return fmt.Errorf("retirement years must be between 0 and 100")
	}
	switch plan.WithdrawalPolicy {
	case "", domain.WithdrawalPolicyAnnuity, domain.WithdrawalPolicySWR:
	default:
		return fmt.Errorf("withdrawal policy must be %q or %q",
			domain.WithdrawalPolicyAnnuity, domain.WithdrawalPolicySWR)
	}
	if plan.SafeWithdrawalRatePct.IsNegative() {
		return fmt.Errorf("safe withdrawal rate cannot be negative")
	}
	return nil
}

func (ip *InputParser) validatePortfolio(plan *domain.PortfolioPlan) error {
	if plan.Principal.IsNegative() {
		return fmt.Errorf("principal cannot be negative")
	}
	if plan.MonthlyPayment.IsNegative() {
		return fmt.Errorf("monthly payment cannot be negative")
	}
	if plan.Years < 0 || plan.Years > 100 {
		return fmt.Errorf("years must be between 0 and 100")
	}
	if len(plan.Holdings) == 0 {
		return fmt.Errorf("at least one holding is required")
	}
	for i, h := range plan.Holdings {
		if h.WeightPct.IsNegative() {
			return fmt.Errorf("holding %d: weight cannot be negative", i)
		}
		if h.AnnualReturnPct.LessThanOrEqual(minAnnualPct) {
			return fmt.Errorf("holding %d: annual return must be greater than -100%%", i)
		}
		if h.AnnualYieldPct.IsNegative() {
			return fmt.Errorf("holding %d: annual yield cannot be negative", i)
		}
	}
	return nil
}

// ApplyScenario broadcasts the named preset's annual return and yield into
// every plan block that is present: growth/goal/lifecycle returns, dividend
// yield, and each portfolio holding's return and yield. Weights and names
// are left untouched. Matching is case-insensitive.
func ApplyScenario(config *domain.Configuration, name string) error {
	var preset *domain.Scenario
	for i := range config.Scenarios {
		if strings.EqualFold(config.Scenarios[i].Name, name) {
			preset = &config.Scenarios[i]
			break
		}
	}
	if preset == nil {
		known := make([]string, 0, len(config.Scenarios))
		for _, s := range config.Scenarios {
			known = append(known, s.Name)
		}
		return fmt.Errorf("unknown scenario %q (have: %s)", name, strings.Join(known, ", "))
	}

	if config.Growth != nil {
		config.Growth.AnnualReturnPct = preset.AnnualReturnPct
	}
	if config.Goal != nil {
		config.Goal.AnnualReturnPct = preset.AnnualReturnPct
	}
	if config.Dividend != nil {
		config.Dividend.AnnualYieldPct = preset.AnnualYieldPct
	}
	if config.Lifecycle != nil {
		config.Lifecycle.AnnualReturnPct = preset.AnnualReturnPct
		config.Lifecycle.RetirementReturnPct = preset.AnnualReturnPct
	}
	if config.Portfolio != nil {
		for i := range config.Portfolio.Holdings {
			config.Portfolio.Holdings[i].AnnualReturnPct = preset.AnnualReturnPct
			config.Portfolio.Holdings[i].AnnualYieldPct = preset.AnnualYieldPct
		}
	}
	return nil
}

// SaveConfiguration writes a configuration back out as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// CreateExampleConfiguration returns a complete configuration mirroring the
// calculator's built-in defaults, including the four scenario presets.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	targetIncome := decimal.NewFromInt(20000)
	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "pessimistic", AnnualReturnPct: decimal.NewFromFloat(3.0), AnnualYieldPct: decimal.NewFromFloat(2.0)},
			{Name: "steady", AnnualReturnPct: decimal.NewFromFloat(5.0), AnnualYieldPct: decimal.NewFromFloat(2.5)},
			{Name: "historical", AnnualReturnPct: decimal.NewFromFloat(7.0), AnnualYieldPct: decimal.NewFromFloat(3.0)},
			{Name: "optimistic", AnnualReturnPct: decimal.NewFromFloat(9.0), AnnualYieldPct: decimal.NewFromFloat(3.5)},
		},
		Growth: &domain.GrowthPlan{
			Principal:       decimal.Zero,
			MonthlyPayment:  decimal.NewFromInt(10000),
			AnnualReturnPct: decimal.NewFromFloat(7.0),
			Years:           20,
		},
		Goal: &domain.GoalPlan{
			TargetAmount:    decimal.NewFromInt(5000000),
			Principal:       decimal.Zero,
			AnnualReturnPct: decimal.NewFromFloat(7.0),
			Years:           20,
		},
		Dividend: &domain.DividendPlan{
			Principal:           decimal.NewFromInt(1000000),
			AnnualYieldPct:      decimal.NewFromFloat(3.0),
			TargetMonthlyIncome: &targetIncome,
		},
		Lifecycle: &domain.LifecyclePlan{
			CurrentAge:            30,
			RetirementAge:         60,
			Principal:             decimal.Zero,
			MonthlyPayment:        decimal.NewFromInt(15000),
			AnnualReturnPct:       decimal.NewFromFloat(7.0),
			RetirementYears:       30,
			RetirementReturnPct:   decimal.NewFromFloat(4.0),
			WithdrawalPolicy:      domain.WithdrawalPolicyAnnuity,
			SafeWithdrawalRatePct: decimal.NewFromFloat(4.0),
		},
		Portfolio: &domain.PortfolioPlan{
			Name:           "My ETF Portfolio",
			Principal:      decimal.Zero,
			MonthlyPayment: decimal.NewFromInt(15000),
			Years:          20,
			Holdings: []domain.Holding{
				{Name: "Broad Market", WeightPct: decimal.NewFromInt(25), AnnualReturnPct: decimal.NewFromFloat(7.0), AnnualYieldPct: decimal.NewFromFloat(3.0)},
				{Name: "Dividend", WeightPct: decimal.NewFromInt(25), AnnualReturnPct: decimal.NewFromFloat(7.0), AnnualYieldPct: decimal.NewFromFloat(3.0)},
				{Name: "Global", WeightPct: decimal.NewFromInt(25), AnnualReturnPct: decimal.NewFromFloat(7.0), AnnualYieldPct: decimal.NewFromFloat(3.0)},
				{Name: "Bond", WeightPct: decimal.NewFromInt(25), AnnualReturnPct: decimal.NewFromFloat(7.0), AnnualYieldPct: decimal.NewFromFloat(3.0)},
			},
		},
	}
}
