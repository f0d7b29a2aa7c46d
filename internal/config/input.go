package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

// InputParser handles parsing of simulation parameter files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads simulation parameters from a YAML file and validates
// them. The engine itself performs no validation (it is total on numeric
// input), so everything user-facing is checked here.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationParams, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var params domain.SimulationParams
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateParams(&params); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}

	return &params, nil
}

// ValidateParams validates a parameter record before it reaches the engine.
func (ip *InputParser) ValidateParams(params *domain.SimulationParams) error {
	if params.Years < 0 {
		return fmt.Errorf("years cannot be negative")
	}
	if params.Years > 100 {
		return fmt.Errorf("years must be at most 100")
	}

	switch params.BudgetStrategy {
	case domain.BudgetSalaryPercent, domain.BudgetAutoMatch:
	case "":
		return fmt.Errorf("budget strategy is required ('%s' or '%s')",
			domain.BudgetSalaryPercent, domain.BudgetAutoMatch)
	default:
		return fmt.Errorf("budget strategy must be '%s' or '%s', got %q",
			domain.BudgetSalaryPercent, domain.BudgetAutoMatch, params.BudgetStrategy)
	}

	if params.BudgetStrategy == domain.BudgetSalaryPercent {
		if params.MonthlyNetSalary.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("monthly net salary must be positive for the %s strategy", domain.BudgetSalaryPercent)
		}
		if err := validatePercent("housing allocation percent", params.HousingAllocationPercent); err != nil {
			return err
		}
		if params.AllocationAnnualIncrement.IsNegative() {
			return fmt.Errorf("allocation annual increment cannot be negative")
		}
	}

	if params.HomePrice.LessThan(decimal.Zero) {
		return fmt.Errorf("home price cannot be negative")
	}
	for _, check := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"down payment percent", params.DownPaymentPercent},
		{"buying cost percent", params.BuyingCostPercent},
		{"selling cost percent", params.SellingCostPercent},
		{"marginal tax rate", params.MarginalTaxRate},
		{"capital gains tax rate", params.CapitalGainsTaxRate},
	} {
		if err := validatePercent(check.name, check.value); err != nil {
			return err
		}
	}

	for _, check := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"property tax rate", params.PropertyTaxRate},
		{"maintenance percent", params.MaintenancePercentYearly},
		{"home insurance", params.HomeInsuranceYearly},
		{"loan insurance", params.LoanInsuranceMonthly},
		{"monthly rent", params.MonthlyRent},
		{"rent insurance", params.RentInsuranceMonthly},
		{"sub-let income", params.SubLetMonthlyIncome},
	} {
		if check.value.IsNegative() {
			return fmt.Errorf("%s cannot be negative", check.name)
		}
	}

	if err := ip.validateLoan("subsidized loan", params.SubsidizedLoan.Enabled,
		params.SubsidizedLoan.Amount, decimal.Zero, params.SubsidizedLoan.TermYears); err != nil {
		return err
	}
	if err := ip.validateLoan("secondary mortgage", params.SecondaryMortgage.Enabled,
		params.SecondaryMortgage.Amount, params.SecondaryMortgage.AnnualRate, params.SecondaryMortgage.TermYears); err != nil {
		return err
	}
	if params.Mortgage.AnnualRate.IsNegative() {
		return fmt.Errorf("mortgage rate cannot be negative")
	}
	if params.Mortgage.TermYears < 0 {
		return fmt.Errorf("mortgage term cannot be negative")
	}
	if params.FinancedAmount().GreaterThan(decimal.Zero) && params.Mortgage.TermYears == 0 &&
		!params.SubsidizedLoan.Enabled && !params.SecondaryMortgage.Enabled {
		return fmt.Errorf("financed amount is positive but no loan instrument has a term")
	}

	return nil
}

func (ip *InputParser) validateLoan(name string, enabled bool, amount, rate decimal.Decimal, termYears int) error {
	if !enabled {
		return nil
	}
	if amount.IsNegative() {
		return fmt.Errorf("%s amount cannot be negative", name)
	}
	if rate.IsNegative() {
		return fmt.Errorf("%s rate cannot be negative", name)
	}
	if termYears <= 0 {
		return fmt.Errorf("%s term must be positive", name)
	}
	return nil
}

func validatePercent(name string, value decimal.Decimal) error {
	if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%s must be between 0 and 100, got %s", name, value.StringFixed(2))
	}
	return nil
}

// SaveParams writes a parameter record to a YAML file.
func SaveParams(params *domain.SimulationParams, filename string) error {
	b, err := yaml.Marshal(params)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// CreateExampleParams returns a fully populated parameter record that
// exercises every instrument: a capped subsidized loan, a short secondary
// mortgage and a residual primary mortgage, with the salary-based budget
// policy and early paydown enabled.
func (ip *InputParser) CreateExampleParams() *domain.SimulationParams {
	return &domain.SimulationParams{
		Years:                25,
		InvestmentReturnRate: decimal.NewFromFloat(5.5),
		InflationRate:        decimal.NewFromFloat(2.0),
		CapitalGainsTaxRate:  decimal.NewFromInt(30),

		BudgetStrategy:            domain.BudgetSalaryPercent,
		MonthlyNetSalary:          decimal.NewFromInt(4200),
		SalaryGrowthRate:          decimal.NewFromFloat(1.5),
		HousingAllocationPercent:  decimal.NewFromInt(33),
		AllocationAnnualIncrement: decimal.NewFromFloat(0.5),
		PayDownMortgageEarly:      true,

		HomePrice:                decimal.NewFromInt(320000),
		DownPaymentPercent:       decimal.NewFromInt(15),
		BuyingCostPercent:        decimal.NewFromFloat(7.5),
		SellingCostPercent:       decimal.NewFromInt(6),
		AppreciationRate:         decimal.NewFromFloat(1.8),
		PropertyTaxRate:          decimal.NewFromFloat(0.9),
		HomeInsuranceYearly:      decimal.NewFromInt(480),
		MaintenancePercentYearly: decimal.NewFromInt(1),
		MarginalTaxRate:          decimal.NewFromInt(30),

		SubsidizedLoan: domain.SubsidizedLoanConfig{
			Enabled:   true,
			Amount:    decimal.NewFromInt(40000),
			TermYears: 20,
		},
		SecondaryMortgage: domain.MortgageConfig{
			Enabled:    true,
			Amount:     decimal.NewFromInt(30000),
			AnnualRate: decimal.NewFromFloat(4.1),
			TermYears:  10,
		},
		Mortgage: domain.MortgageConfig{
			AnnualRate: decimal.NewFromFloat(3.5),
			TermYears:  25,
		},
		LoanInsuranceMonthly: decimal.NewFromInt(35),

		MonthlyRent:          decimal.NewFromInt(1150),
		RentInsuranceMonthly: decimal.NewFromInt(18),
	}
}
